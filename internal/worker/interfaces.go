//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=../mocks/mock_worker.go -package=mocks

package worker

import (
	"context"
	"io"

	"edc-transfer/internal/models"
)

// StateGetter reads the current state of a transfer process
type StateGetter interface {
	GetState(ctx context.Context, transferID string) (models.TransferState, error)
}

// PullGateway hands out pull-transfer credentials and the payload behind them
type PullGateway interface {
	FetchMetadata(ctx context.Context, transferID string) (models.PullTransferMetadata, error)
	FetchPayload(ctx context.Context, meta models.PullTransferMetadata) (io.ReadCloser, error)
}

// Saver materializes a pulled payload locally and returns where it landed
type Saver interface {
	Save(transferID string, payload io.Reader) (string, error)
}

// Connector is everything the workers need from the connector
type Connector interface {
	StateGetter
	PullGateway
}
