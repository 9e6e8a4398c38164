//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=../mocks/mock_service.go -package=mocks

package service

import (
	"context"

	"edc-transfer/internal/connector"
	"edc-transfer/internal/models"
)

// Initiator submits transfer requests to the consumer connector
type Initiator interface {
	Initiate(ctx context.Context, request models.TransferRequest) (string, error)
}

// Tracker follows push-style transfers until they finish
type Tracker interface {
	Start(transferID, contractID string)
	InProgress(contractID string) bool
}

// Downloader retrieves the data of pull-style transfers
type Downloader interface {
	Download(ctx context.Context, transferID string) (string, error)
}

// TransferLog records initiated transfers
type TransferLog interface {
	RecordTransfer(ctx context.Context, record *models.TransferRecord) error
}

// AgreementSource looks up negotiated contract agreements
type AgreementSource interface {
	GetAgreement(ctx context.Context, agreementID string) (*models.ContractAgreement, error)
	QueryFinalizedNegotiations(ctx context.Context) ([]connector.Negotiation, error)
}

// ProcessAdmin exposes the connector's transfer process management
type ProcessAdmin interface {
	QueryTransferProcesses(ctx context.Context, offset, limit int) ([]models.TransferProcess, error)
	GetTransferProcess(ctx context.Context, transferID string) (*models.TransferProcess, error)
	Terminate(ctx context.Context, transferID, reason string) error
	Deprovision(ctx context.Context, transferID string) error
}

// Gateway is everything the service needs from the connector
type Gateway interface {
	Initiator
	AgreementSource
	ProcessAdmin
}
