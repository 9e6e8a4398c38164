package models

import "time"

// TransferState represents the state of a transfer process as reported by the connector
type TransferState string

const (
	TransferStateInitial       TransferState = "INITIAL"
	TransferStateProvisioned   TransferState = "PROVISIONED"
	TransferStateRequested     TransferState = "REQUESTED"
	TransferStateStarted       TransferState = "STARTED"
	TransferStateSuspended     TransferState = "SUSPENDED"
	TransferStateCompleted     TransferState = "COMPLETED"
	TransferStateTerminated    TransferState = "TERMINATED"
	TransferStateDeprovisioned TransferState = "DEPROVISIONED"
	TransferStateError         TransferState = "ERROR"
	TransferStateEnded         TransferState = "ENDED"
)

// IsTerminal reports whether no further state change is expected for the
// polling engine. Only COMPLETED, ERROR and ENDED count; anything else keeps
// the transfer tracked.
func (s TransferState) IsTerminal() bool {
	switch s {
	case TransferStateCompleted, TransferStateError, TransferStateEnded:
		return true
	}
	return false
}

// ContractAgreement is a finalized agreement the operator can transfer data against
type ContractAgreement struct {
	ID               string `json:"id"`
	AssetID          string `json:"asset_id"`
	ProviderID       string `json:"provider_id"`
	ConnectorAddress string `json:"connector_address"` // counter-party address from the finalized negotiation
}

// RunningTransferProcess is a push-style transfer tracked by the polling engine
type RunningTransferProcess struct {
	ProcessID  string
	ContractID string
	State      TransferState
}

// PullTransferMetadata holds the single-use credentials for a pull transfer
type PullTransferMetadata struct {
	ID       string `json:"id"`
	Endpoint string `json:"endpoint"`
	AuthKey  string `json:"authKey"`
	AuthCode string `json:"authCode"`
}

// TransferProcess is the connector's view of a transfer process
type TransferProcess struct {
	ID          string        `json:"id"`
	State       TransferState `json:"state"`
	AssetID     string        `json:"asset_id,omitempty"`
	ContractID  string        `json:"contract_id,omitempty"`
	Type        string        `json:"type,omitempty"` // CONSUMER or PROVIDER
	ErrorDetail string        `json:"error_detail,omitempty"`
}

// TransferRecord is a locally logged transfer initiation
type TransferRecord struct {
	TransferID      string          `db:"transfer_id" json:"transfer_id"`
	ContractID      string          `db:"contract_id" json:"contract_id"`
	AssetID         string          `db:"asset_id" json:"asset_id"`
	DestinationType DestinationType `db:"destination_type" json:"destination_type"`
	InitiatedAt     time.Time       `db:"initiated_at" json:"initiated_at"`
}

// NotificationLevel distinguishes success-style from error notifications
type NotificationLevel string

const (
	NotificationLevelInfo  NotificationLevel = "info"
	NotificationLevelError NotificationLevel = "error"
)

// Action is the follow-up an operator can take from a notification
type Action struct {
	Label  string `json:"label"`
	Target string `json:"target"`
}

// Notification is a user-visible message produced by the orchestrator
type Notification struct {
	ID        string            `json:"id"`
	Level     NotificationLevel `json:"level"`
	Message   string            `json:"message"`
	Action    *Action           `json:"action,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}
