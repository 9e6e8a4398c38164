package worker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"edc-transfer/internal/config"
	"edc-transfer/internal/mocks"
)

func TestNewWorkerManager(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)

	cfg := &config.Config{
		Transfer: config.TransferConfig{
			PollingInterval: 250 * time.Millisecond,
			PollingTimeout:  5 * time.Second,
		},
	}

	wm := NewWorkerManager(cfg, mocks.NewMockConnector(ctrl), mocks.NewMockSaver(ctrl), mocks.NewMockNotifier(ctrl), zap.NewNop())

	req.Equal(250*time.Millisecond, wm.Poller().interval)
	req.Equal(5*time.Second, wm.Poller().timeout)
	req.Equal(MetadataRetryDelay, wm.Downloader().retryDelay)
	req.NoError(wm.Shutdown(time.Second))
}

func TestNewWorkerManager_Defaults(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)

	wm := NewWorkerManager(&config.Config{}, mocks.NewMockConnector(ctrl), mocks.NewMockSaver(ctrl), mocks.NewMockNotifier(ctrl), zap.NewNop())

	req.Equal(DefaultPollInterval, wm.Poller().interval)
	req.Equal(DefaultPollingTimeout, wm.Poller().timeout)
}

func TestWorkerManager_ShutdownStopsPolling(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)

	cfg := &config.Config{Transfer: config.TransferConfig{PollingInterval: time.Hour, PollingTimeout: time.Minute}}
	wm := NewWorkerManager(cfg, mocks.NewMockConnector(ctrl), mocks.NewMockSaver(ctrl), mocks.NewMockNotifier(ctrl), zap.NewNop())

	wm.Poller().Start("t1", "c1")
	req.True(wm.Poller().Running())

	req.NoError(wm.Shutdown(time.Second))
}
