package worker

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"edc-transfer/internal/mocks"
	"edc-transfer/internal/models"
)

func newTestDownloader(gateway PullGateway, saver Saver) *PullDownloader {
	d := NewPullDownloader(gateway, saver, zap.NewNop())
	d.retryDelay = time.Millisecond
	return d
}

func TestPullDownloader_RetriesMetadataUntilReady(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockPullGateway(ctrl)
	saver := mocks.NewMockSaver(ctrl)

	meta := models.PullTransferMetadata{
		ID:       "t1",
		Endpoint: "http://provider/public",
		AuthKey:  "Authorization",
		AuthCode: "token",
	}

	notReady := errors.New("404 not found")
	gomock.InOrder(
		gateway.EXPECT().FetchMetadata(gomock.Any(), "t1").Return(models.PullTransferMetadata{}, notReady).Times(MaxMetadataAttempts-1),
		gateway.EXPECT().FetchMetadata(gomock.Any(), "t1").Return(meta, nil).Times(1),
		gateway.EXPECT().FetchPayload(gomock.Any(), meta).Return(io.NopCloser(strings.NewReader("payload")), nil).Times(1),
		saver.EXPECT().Save("t1", gomock.Any()).DoAndReturn(func(_ string, r io.Reader) (string, error) {
			data, err := io.ReadAll(r)
			req.NoError(err)
			req.Equal("payload", string(data))
			return "/tmp/data-t1", nil
		}).Times(1),
	)

	path, err := newTestDownloader(gateway, saver).Download(context.Background(), "t1")
	req.NoError(err)
	req.Equal("/tmp/data-t1", path)
}

func TestPullDownloader_MetadataNeverReady(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockPullGateway(ctrl)
	saver := mocks.NewMockSaver(ctrl)

	gateway.EXPECT().FetchMetadata(gomock.Any(), "t1").
		Return(models.PullTransferMetadata{}, errors.New("not found")).
		Times(MaxMetadataAttempts)
	gateway.EXPECT().FetchPayload(gomock.Any(), gomock.Any()).Times(0)
	saver.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	_, err := newTestDownloader(gateway, saver).Download(context.Background(), "t1")
	req.Error(err)
	req.ErrorIs(err, ErrMetadataUnavailable)
	req.Contains(err.Error(), "attempt 10")
}

func TestPullDownloader_PayloadFailureIsNotRetried(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockPullGateway(ctrl)
	saver := mocks.NewMockSaver(ctrl)

	meta := models.PullTransferMetadata{ID: "t1", Endpoint: "http://provider/public"}
	payloadErr := errors.New("connection reset")

	gateway.EXPECT().FetchMetadata(gomock.Any(), "t1").Return(meta, nil).Times(1)
	gateway.EXPECT().FetchPayload(gomock.Any(), meta).Return(nil, payloadErr).Times(1)
	saver.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	_, err := newTestDownloader(gateway, saver).Download(context.Background(), "t1")
	req.ErrorIs(err, payloadErr)
}

func TestPullDownloader_SaveFailurePropagates(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockPullGateway(ctrl)
	saver := mocks.NewMockSaver(ctrl)

	meta := models.PullTransferMetadata{ID: "t1", Endpoint: "http://provider/public"}
	saveErr := errors.New("disk full")

	gateway.EXPECT().FetchMetadata(gomock.Any(), "t1").Return(meta, nil)
	gateway.EXPECT().FetchPayload(gomock.Any(), meta).Return(io.NopCloser(strings.NewReader("x")), nil)
	saver.EXPECT().Save("t1", gomock.Any()).Return("", saveErr)

	_, err := newTestDownloader(gateway, saver).Download(context.Background(), "t1")
	req.ErrorIs(err, saveErr)
}

func TestPullDownloader_StopsWhenContextCancelled(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockPullGateway(ctrl)
	saver := mocks.NewMockSaver(ctrl)

	ctx, cancel := context.WithCancel(context.Background())

	gateway.EXPECT().FetchMetadata(gomock.Any(), "t1").
		DoAndReturn(func(context.Context, string) (models.PullTransferMetadata, error) {
			cancel()
			return models.PullTransferMetadata{}, errors.New("not found")
		}).
		Times(1)

	d := NewPullDownloader(gateway, saver, zap.NewNop())
	_, err := d.Download(ctx, "t1")
	req.ErrorIs(err, context.Canceled)
	req.NotErrorIs(err, ErrMetadataUnavailable)
}
