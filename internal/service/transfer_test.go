package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"edc-transfer/internal/connector"
	"edc-transfer/internal/mocks"
	"edc-transfer/internal/models"
	"edc-transfer/internal/notify"
)

const testReceiver = "http://consumer/receiver"

type serviceMocks struct {
	gateway     *mocks.MockGateway
	tracker     *mocks.MockTracker
	downloader  *mocks.MockDownloader
	transferLog *mocks.MockTransferLog
	notifier    *mocks.MockNotifier
}

func newTestService(t *testing.T) (*TransferService, *serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		gateway:     mocks.NewMockGateway(ctrl),
		tracker:     mocks.NewMockTracker(ctrl),
		downloader:  mocks.NewMockDownloader(ctrl),
		transferLog: mocks.NewMockTransferLog(ctrl),
		notifier:    mocks.NewMockNotifier(ctrl),
	}

	s := NewTransferService(m.gateway, m.tracker, m.downloader, m.transferLog, m.notifier, testReceiver, zap.NewNop())
	s.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	return s, m
}

func testAgreement() models.ContractAgreement {
	return models.ContractAgreement{
		ID:               "c1",
		AssetID:          "asset-1",
		ProviderID:       "provider-bpn",
		ConnectorAddress: "http://provider/protocol",
	}
}

func TestInitiateTransfer_PushDestinationIsTracked(t *testing.T) {
	req := require.New(t)
	s, m := newTestService(t)

	destination := models.HTTPDataDestination{Method: "POST", BaseURL: "http://sink"}

	m.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r models.TransferRequest) (string, error) {
			req.Equal("asset-1", r.AssetID)
			req.Equal("c1", r.ContractID)
			req.Equal("provider-bpn", r.ConnectorID)
			req.Equal(testReceiver, r.PrivateProperties.ReceiverHTTPEndpoint)
			req.Equal(destination, r.Destination)
			return "t1", nil
		})
	m.transferLog.EXPECT().RecordTransfer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *models.TransferRecord) error {
			req.Equal("t1", rec.TransferID)
			req.Equal(models.DestinationTypeHTTPData, rec.DestinationType)
			return nil
		})
	m.tracker.EXPECT().Start("t1", "c1").Times(1)
	m.downloader.EXPECT().Download(gomock.Any(), gomock.Any()).Times(0)

	id, err := s.InitiateTransfer(context.Background(), testAgreement(), destination)
	req.NoError(err)
	req.Equal("t1", id)
}

func TestInitiateTransfer_ProxyDestinationIsDownloaded(t *testing.T) {
	req := require.New(t)
	s, m := newTestService(t)

	m.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).Return("t1", nil)
	m.transferLog.EXPECT().RecordTransfer(gomock.Any(), gomock.Any()).Return(nil)
	m.downloader.EXPECT().Download(gomock.Any(), "t1").Return("/tmp/data-t1", nil).Times(1)
	m.notifier.EXPECT().Info(gomock.Any(), "Transfer [t1] downloaded", notify.TransferHistoryAction).Times(1)
	m.tracker.EXPECT().Start(gomock.Any(), gomock.Any()).Times(0)

	id, err := s.InitiateTransfer(context.Background(), testAgreement(), models.HTTPProxyDestination{})
	req.NoError(err)
	req.Equal("t1", id)

	s.Wait()
}

func TestInitiateTransfer_DownloadFailureIsNotified(t *testing.T) {
	req := require.New(t)
	s, m := newTestService(t)

	m.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).Return("t1", nil)
	m.transferLog.EXPECT().RecordTransfer(gomock.Any(), gomock.Any()).Return(nil)
	m.downloader.EXPECT().Download(gomock.Any(), "t1").Return("", errors.New("metadata unavailable"))
	m.notifier.EXPECT().Error(gomock.Any(), "Error downloading transfer [t1]: metadata unavailable").Times(1)

	_, err := s.InitiateTransfer(context.Background(), testAgreement(), models.HTTPProxyDestination{})
	req.NoError(err)

	s.Wait()
}

func TestInitiateTransfer_DownloadOutlivesRequestContext(t *testing.T) {
	req := require.New(t)
	s, m := newTestService(t)

	ctx, cancel := context.WithCancel(context.Background())

	m.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).Return("t1", nil)
	m.transferLog.EXPECT().RecordTransfer(gomock.Any(), gomock.Any()).Return(nil)
	m.downloader.EXPECT().Download(gomock.Any(), "t1").
		DoAndReturn(func(ctx context.Context, _ string) (string, error) {
			return "/tmp/data-t1", ctx.Err()
		})
	m.notifier.EXPECT().Info(gomock.Any(), "Transfer [t1] downloaded", gomock.Any())

	_, err := s.InitiateTransfer(ctx, testAgreement(), models.HTTPProxyDestination{})
	req.NoError(err)
	cancel()

	s.Wait()
}

func TestInitiateTransfer_InitiateFailure(t *testing.T) {
	req := require.New(t)
	s, m := newTestService(t)

	initErr := errors.New("connector unreachable")
	m.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).Return("", initErr)
	m.notifier.EXPECT().Error(gomock.Any(), MsgInitiateFailed).Times(1)
	m.transferLog.EXPECT().RecordTransfer(gomock.Any(), gomock.Any()).Times(0)
	m.tracker.EXPECT().Start(gomock.Any(), gomock.Any()).Times(0)
	m.downloader.EXPECT().Download(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.InitiateTransfer(context.Background(), testAgreement(), models.HTTPProxyDestination{})
	req.ErrorIs(err, initErr)

	s.Wait()
}

func TestInitiateTransfer_RecordFailureDoesNotAbort(t *testing.T) {
	req := require.New(t)
	s, m := newTestService(t)

	m.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).Return("t1", nil)
	m.transferLog.EXPECT().RecordTransfer(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	m.tracker.EXPECT().Start("t1", "c1")

	id, err := s.InitiateTransfer(context.Background(), testAgreement(), models.AmazonS3Destination{BucketName: "b"})
	req.NoError(err)
	req.Equal("t1", id)
}

func TestIsTransferInProgress(t *testing.T) {
	req := require.New(t)
	s, m := newTestService(t)

	m.tracker.EXPECT().InProgress("c1").Return(true)
	m.tracker.EXPECT().InProgress("c2").Return(false)

	req.True(s.IsTransferInProgress("c1"))
	req.False(s.IsTransferInProgress("c2"))
}

func TestResolveAgreement(t *testing.T) {
	req := require.New(t)
	s, m := newTestService(t)

	m.gateway.EXPECT().GetAgreement(gomock.Any(), "c1").
		Return(&models.ContractAgreement{ID: "c1", AssetID: "asset-1", ProviderID: "provider-bpn"}, nil)
	m.gateway.EXPECT().QueryFinalizedNegotiations(gomock.Any()).Return([]connector.Negotiation{
		{ID: "n0", ContractAgreementID: "other", CounterPartyAddress: "http://elsewhere"},
		{ID: "n1", ContractAgreementID: "c1", CounterPartyAddress: "http://provider/protocol"},
	}, nil)

	agreement, err := s.ResolveAgreement(context.Background(), "c1")
	req.NoError(err)
	req.Equal("http://provider/protocol", agreement.ConnectorAddress)
	req.Equal("asset-1", agreement.AssetID)
}

func TestResolveAgreement_NotNegotiated(t *testing.T) {
	req := require.New(t)
	s, m := newTestService(t)

	m.gateway.EXPECT().GetAgreement(gomock.Any(), "c1").Return(&models.ContractAgreement{ID: "c1"}, nil)
	m.gateway.EXPECT().QueryFinalizedNegotiations(gomock.Any()).Return(nil, nil)

	_, err := s.ResolveAgreement(context.Background(), "c1")
	req.ErrorIs(err, ErrAgreementNotNegotiated)
}

func TestResolveAgreement_NotFound(t *testing.T) {
	req := require.New(t)
	s, m := newTestService(t)

	m.gateway.EXPECT().GetAgreement(gomock.Any(), "missing").Return(nil, connector.ErrNotFound)
	m.gateway.EXPECT().QueryFinalizedNegotiations(gomock.Any()).Times(0)

	_, err := s.ResolveAgreement(context.Background(), "missing")
	req.ErrorIs(err, connector.ErrNotFound)
}

func TestProcessAdministration(t *testing.T) {
	req := require.New(t)
	s, m := newTestService(t)

	processes := []models.TransferProcess{{ID: "t1", State: models.TransferStateCompleted}}
	m.gateway.EXPECT().QueryTransferProcesses(gomock.Any(), 0, 50).Return(processes, nil)
	m.gateway.EXPECT().Terminate(gomock.Any(), "t1", "no longer needed").Return(nil)
	m.gateway.EXPECT().Deprovision(gomock.Any(), "t1").Return(errors.New("conflict"))

	got, err := s.ListTransferProcesses(context.Background(), 0, 50)
	req.NoError(err)
	req.Equal(processes, got)

	req.NoError(s.TerminateTransfer(context.Background(), "t1", "no longer needed"))
	req.Error(s.DeprovisionTransfer(context.Background(), "t1"))
}

func TestGetTransferProcess(t *testing.T) {
	req := require.New(t)
	s, m := newTestService(t)

	process := &models.TransferProcess{ID: "t1", State: models.TransferStateStarted, ContractID: "c1"}
	m.gateway.EXPECT().GetTransferProcess(gomock.Any(), "t1").Return(process, nil)
	m.gateway.EXPECT().GetTransferProcess(gomock.Any(), "missing").Return(nil, connector.ErrNotFound)

	got, err := s.GetTransferProcess(context.Background(), "t1")
	req.NoError(err)
	req.Equal(process, got)

	_, err = s.GetTransferProcess(context.Background(), "missing")
	req.True(errors.Is(err, connector.ErrNotFound))
}
