package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"edc-transfer/internal/models"
)

// ErrMetadataUnavailable is returned when the receiver never produced pull credentials
var ErrMetadataUnavailable = errors.New("pull transfer metadata unavailable")

// PullDownloader retrieves the data of pull-style transfers. Only the
// metadata lookup is retried; the payload fetch and the save run once.
type PullDownloader struct {
	gateway    PullGateway
	saver      Saver
	logger     *zap.Logger
	retryDelay time.Duration
}

// NewPullDownloader creates a new pull downloader
func NewPullDownloader(gateway PullGateway, saver Saver, logger *zap.Logger) *PullDownloader {
	return &PullDownloader{
		gateway:    gateway,
		saver:      saver,
		logger:     logger.Named("puller"),
		retryDelay: MetadataRetryDelay,
	}
}

// Download fetches the credentials of a pull transfer, retrieves the payload
// with them and saves it locally. It returns the saved location.
func (d *PullDownloader) Download(ctx context.Context, transferID string) (string, error) {
	meta, err := d.fetchMetadata(ctx, transferID)
	if err != nil {
		return "", err
	}

	d.logger.Debug("Pull metadata received",
		zap.String("transfer_id", transferID),
		zap.String("endpoint", meta.Endpoint))

	body, err := d.gateway.FetchPayload(ctx, meta)
	if err != nil {
		return "", fmt.Errorf("failed to fetch payload of transfer %s: %w", transferID, err)
	}
	defer body.Close()

	path, err := d.saver.Save(transferID, body)
	if err != nil {
		return "", fmt.Errorf("failed to save payload of transfer %s: %w", transferID, err)
	}

	d.logger.Info("Pull transfer downloaded",
		zap.String("transfer_id", transferID),
		zap.String("path", path))

	return path, nil
}

// fetchMetadata polls the receiver until the credentials exist, up to
// MaxMetadataAttempts attempts spaced by the retry delay
func (d *PullDownloader) fetchMetadata(ctx context.Context, transferID string) (models.PullTransferMetadata, error) {
	var errs error

	for attempt := 1; attempt <= MaxMetadataAttempts; attempt++ {
		meta, err := d.gateway.FetchMetadata(ctx, transferID)
		if err == nil {
			return meta, nil
		}
		errs = multierr.Append(errs, fmt.Errorf("attempt %d: %w", attempt, err))

		d.logger.Debug("Pull metadata not ready",
			zap.String("transfer_id", transferID),
			zap.Int("attempt", attempt),
			zap.Error(err))

		if attempt == MaxMetadataAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return models.PullTransferMetadata{}, fmt.Errorf("pull metadata for transfer %s: %w", transferID, ctx.Err())
		case <-time.After(d.retryDelay):
		}
	}

	return models.PullTransferMetadata{}, fmt.Errorf("%w for transfer %s after %d attempts: %w",
		ErrMetadataUnavailable, transferID, MaxMetadataAttempts, errs)
}
