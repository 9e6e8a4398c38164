package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"edc-transfer/internal/connector"
	"edc-transfer/internal/models"
	"edc-transfer/internal/notify"
	"edc-transfer/internal/transfer"
)

// Notification messages
const (
	MsgInitiateFailed = "Error initiating transfer"
)

// ErrAgreementNotNegotiated is returned for agreements without a finalized negotiation
var ErrAgreementNotNegotiated = errors.New("contract agreement has no finalized negotiation")

// TransferService drives a transfer from request to completion. Pull
// transfers are downloaded in the background; every other destination is
// handed to the tracker.
type TransferService struct {
	gateway          Gateway
	tracker          Tracker
	downloader       Downloader
	transferLog      TransferLog
	notifier         notify.Notifier
	receiverEndpoint string
	logger           *zap.Logger
	now              func() time.Time

	downloads sync.WaitGroup
}

// NewTransferService creates a new transfer service
func NewTransferService(
	gateway Gateway,
	tracker Tracker,
	downloader Downloader,
	transferLog TransferLog,
	notifier notify.Notifier,
	receiverEndpoint string,
	logger *zap.Logger,
) *TransferService {
	return &TransferService{
		gateway:          gateway,
		tracker:          tracker,
		downloader:       downloader,
		transferLog:      transferLog,
		notifier:         notifier,
		receiverEndpoint: receiverEndpoint,
		logger:           logger.Named("transfer"),
		now:              time.Now,
	}
}

// InitiateTransfer starts a transfer of the agreement's asset to destination
// and returns the connector's transfer id
func (s *TransferService) InitiateTransfer(
	ctx context.Context,
	agreement models.ContractAgreement,
	destination models.Destination,
) (string, error) {
	request := transfer.BuildRequest(agreement, destination, s.receiverEndpoint)

	transferID, err := s.gateway.Initiate(ctx, request)
	if err != nil {
		s.logger.Error("Failed to initiate transfer",
			zap.String("contract_id", agreement.ID),
			zap.Error(err))
		s.notifier.Error(ctx, MsgInitiateFailed)
		return "", fmt.Errorf("failed to initiate transfer: %w", err)
	}

	destType := models.DestinationType("")
	if dest := models.Unwrap(destination); dest != nil {
		destType = dest.Type()
	}

	s.logger.Info("Transfer initiated",
		zap.String("transfer_id", transferID),
		zap.String("contract_id", agreement.ID),
		zap.String("destination_type", string(destType)))

	s.record(ctx, transferID, agreement, destType)

	if models.IsPull(destination) {
		s.startDownload(ctx, transferID)
	} else {
		s.tracker.Start(transferID, agreement.ID)
	}

	return transferID, nil
}

// record adds the transfer to the local log. The transfer already exists on
// the connector, so a failure here is only logged.
func (s *TransferService) record(ctx context.Context, transferID string, agreement models.ContractAgreement, destType models.DestinationType) {
	if s.transferLog == nil {
		return
	}

	err := s.transferLog.RecordTransfer(ctx, &models.TransferRecord{
		TransferID:      transferID,
		ContractID:      agreement.ID,
		AssetID:         agreement.AssetID,
		DestinationType: destType,
		InitiatedAt:     s.now(),
	})
	if err != nil {
		s.logger.Warn("Failed to record transfer",
			zap.String("transfer_id", transferID),
			zap.Error(err))
	}
}

func (s *TransferService) startDownload(ctx context.Context, transferID string) {
	// the download outlives the request that started it
	ctx = context.WithoutCancel(ctx)

	s.downloads.Add(1)
	go func() {
		defer s.downloads.Done()

		path, err := s.downloader.Download(ctx, transferID)
		if err != nil {
			s.logger.Error("Pull download failed",
				zap.String("transfer_id", transferID),
				zap.Error(err))
			s.notifier.Error(ctx, fmt.Sprintf("Error downloading transfer [%s]: %v", transferID, err))
			return
		}

		s.notifier.Info(ctx, fmt.Sprintf("Transfer [%s] downloaded", transferID), notify.TransferHistoryAction)
		s.logger.Debug("Pull payload stored",
			zap.String("transfer_id", transferID),
			zap.String("path", path))
	}()
}

// IsTransferInProgress reports whether a polled transfer for contractID is
// still running. Pull downloads are not considered.
func (s *TransferService) IsTransferInProgress(contractID string) bool {
	return s.tracker.InProgress(contractID)
}

// ResolveAgreement loads an agreement together with the provider connector
// address recorded on its finalized negotiation
func (s *TransferService) ResolveAgreement(ctx context.Context, contractID string) (*models.ContractAgreement, error) {
	agreement, err := s.gateway.GetAgreement(ctx, contractID)
	if err != nil {
		return nil, err
	}

	negotiations, err := s.gateway.QueryFinalizedNegotiations(ctx)
	if err != nil {
		return nil, err
	}

	negotiation, ok := lo.Find(negotiations, func(n connector.Negotiation) bool {
		return n.ContractAgreementID == agreement.ID
	})
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAgreementNotNegotiated, contractID)
	}

	agreement.ConnectorAddress = negotiation.CounterPartyAddress
	return agreement, nil
}

// ListTransferProcesses returns the connector's transfer history
func (s *TransferService) ListTransferProcesses(ctx context.Context, offset, limit int) ([]models.TransferProcess, error) {
	return s.gateway.QueryTransferProcesses(ctx, offset, limit)
}

// GetTransferProcess returns the connector's view of a single transfer
func (s *TransferService) GetTransferProcess(ctx context.Context, transferID string) (*models.TransferProcess, error) {
	return s.gateway.GetTransferProcess(ctx, transferID)
}

// TerminateTransfer asks the connector to terminate a transfer
func (s *TransferService) TerminateTransfer(ctx context.Context, transferID, reason string) error {
	if err := s.gateway.Terminate(ctx, transferID, reason); err != nil {
		return err
	}

	s.logger.Info("Transfer terminated",
		zap.String("transfer_id", transferID),
		zap.String("reason", reason))
	return nil
}

// DeprovisionTransfer releases the resources held by a transfer
func (s *TransferService) DeprovisionTransfer(ctx context.Context, transferID string) error {
	if err := s.gateway.Deprovision(ctx, transferID); err != nil {
		return err
	}

	s.logger.Info("Transfer deprovisioned", zap.String("transfer_id", transferID))
	return nil
}

// Wait blocks until running pull downloads return
func (s *TransferService) Wait() {
	s.downloads.Wait()
}
