package worker

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"edc-transfer/internal/config"
	"edc-transfer/internal/notify"
)

// Constants for worker configuration
const (
	DefaultPollInterval   = time.Second
	DefaultPollingTimeout = 60 * time.Second
	TickTimeout           = 10 * time.Second
	MaxMetadataAttempts   = 10
	MetadataRetryDelay    = time.Second
)

// WorkerManager owns the background transfer workers
type WorkerManager struct {
	logger *zap.Logger

	poller     *Poller
	downloader *PullDownloader
}

// NewWorkerManager creates the poller and the pull downloader
func NewWorkerManager(
	cfg *config.Config,
	connector Connector,
	saver Saver,
	notifier notify.Notifier,
	logger *zap.Logger,
) *WorkerManager {
	logger = logger.Named("worker")

	return &WorkerManager{
		logger: logger,
		poller: NewPoller(
			connector,
			notifier,
			cfg.Transfer.PollingInterval,
			cfg.Transfer.PollingTimeout,
			logger,
		),
		downloader: NewPullDownloader(connector, saver, logger),
	}
}

// Poller returns the transfer polling engine
func (wm *WorkerManager) Poller() *Poller {
	return wm.poller
}

// Downloader returns the pull download orchestrator
func (wm *WorkerManager) Downloader() *PullDownloader {
	return wm.downloader
}

// Shutdown gracefully stops all workers
func (wm *WorkerManager) Shutdown(timeout time.Duration) error {
	wm.logger.Info("Shutting down worker manager",
		zap.Int("in_flight", wm.poller.Len()))

	done := make(chan struct{})
	go func() {
		wm.poller.Shutdown()
		close(done)
	}()

	select {
	case <-done:
		wm.logger.Info("Workers stopped gracefully")
		return nil
	case <-time.After(timeout):
		wm.logger.Warn("Worker shutdown timed out")
		return fmt.Errorf("worker shutdown timed out after %s", timeout)
	}
}
