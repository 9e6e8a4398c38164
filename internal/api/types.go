package api

import (
	"fmt"

	"edc-transfer/internal/models"
)

// ==================== Transfers ====================

// CreateTransferRequest starts a transfer under a negotiated contract
type CreateTransferRequest struct {
	ContractID  string             `json:"contract_id" validate:"required"`
	Destination DestinationRequest `json:"destination"`
}

// DestinationRequest is the flattened wire form of every destination kind.
// Fields not used by Type are ignored.
type DestinationRequest struct {
	Type string `json:"type" validate:"required,oneof=HttpData AmazonS3 AzureStorage HttpProxy"`

	// HttpData
	Method         string                 `json:"method,omitempty" validate:"omitempty,oneof=GET POST PUT PATCH"`
	BaseURL        string                 `json:"base_url,omitempty" validate:"omitempty,url"`
	Authentication *AuthenticationRequest `json:"authentication,omitempty"`
	Headers        []HeaderRequest        `json:"headers,omitempty" validate:"dive"`
	Payload        *PayloadRequest        `json:"payload,omitempty"`

	// AmazonS3
	Region          string `json:"region,omitempty" validate:"required_if=Type AmazonS3"`
	BucketName      string `json:"bucket_name,omitempty" validate:"required_if=Type AmazonS3"`
	KeyName         string `json:"key_name,omitempty"`
	AccessKeyID     string `json:"access_key_id,omitempty"`
	SecretAccessKey string `json:"secret_access_key,omitempty"`

	// AzureStorage
	Account   string `json:"account,omitempty" validate:"required_if=Type AzureStorage"`
	Container string `json:"container,omitempty" validate:"required_if=Type AzureStorage"`
	BlobName  string `json:"blob_name,omitempty"`
	SASToken  string `json:"sas_token,omitempty"`
}

// AuthenticationRequest describes how the sink authenticates the provider
type AuthenticationRequest struct {
	Type            string `json:"type" validate:"required,oneof=vault value"`
	HeaderName      string `json:"header_name" validate:"required"`
	VaultSecretName string `json:"vault_secret_name,omitempty" validate:"required_if=Type vault"`
	HeaderValue     string `json:"header_value,omitempty" validate:"required_if=Type value"`
}

// HeaderRequest is an extra header sent to an HttpData sink
type HeaderRequest struct {
	Name  string `json:"name" validate:"required"`
	Value string `json:"value"`
}

// PayloadRequest is a fixed body sent to an HttpData sink
type PayloadRequest struct {
	ContentType string `json:"content_type"`
	Body        string `json:"body"`
}

// toDestination converts a validated request into its domain destination
func (d DestinationRequest) toDestination() (models.Destination, error) {
	switch models.DestinationType(d.Type) {
	case models.DestinationTypeHTTPData:
		if d.BaseURL == "" {
			return nil, fmt.Errorf("base_url is required for %s destinations", d.Type)
		}
		dest := models.HTTPDataDestination{
			Method:  d.Method,
			BaseURL: d.BaseURL,
		}
		if dest.Method == "" {
			dest.Method = "POST"
		}
		if d.Authentication != nil {
			dest.Authentication = &models.HTTPAuthentication{
				Type:            models.HTTPAuthType(d.Authentication.Type),
				HeaderName:      d.Authentication.HeaderName,
				VaultSecretName: d.Authentication.VaultSecretName,
				HeaderValue:     d.Authentication.HeaderValue,
			}
		}
		for _, h := range d.Headers {
			dest.Headers = append(dest.Headers, models.HTTPHeader{Name: h.Name, Value: h.Value})
		}
		if d.Payload != nil {
			dest.Payload = &models.HTTPPayload{ContentType: d.Payload.ContentType, Body: d.Payload.Body}
		}
		return dest, nil
	case models.DestinationTypeAmazonS3:
		return models.AmazonS3Destination{
			Region:          d.Region,
			BucketName:      d.BucketName,
			KeyName:         d.KeyName,
			AccessKeyID:     d.AccessKeyID,
			SecretAccessKey: d.SecretAccessKey,
		}, nil
	case models.DestinationTypeAzureStorage:
		return models.AzureStorageDestination{
			Account:   d.Account,
			Container: d.Container,
			BlobName:  d.BlobName,
			SASToken:  d.SASToken,
		}, nil
	case models.DestinationTypeHTTPProxy:
		return models.HTTPProxyDestination{}, nil
	default:
		return nil, fmt.Errorf("unsupported destination type %q", d.Type)
	}
}

// CreateTransferResponse carries the connector-assigned transfer id
type CreateTransferResponse struct {
	TransferID string `json:"transfer_id"`
}

// TerminateTransferRequest optionally explains a termination
type TerminateTransferRequest struct {
	Reason string `json:"reason" validate:"max=512"`
}

// TransferProcessesResponse is the connector-side transfer history
type TransferProcessesResponse struct {
	Transfers []models.TransferProcess `json:"transfers"`
}

// TransferLogResponse is the locally recorded initiation log
type TransferLogResponse struct {
	Transfers []models.TransferRecord `json:"transfers"`
}

// InProgressResponse reports whether a contract has a polled transfer running
type InProgressResponse struct {
	ContractID string `json:"contract_id"`
	InProgress bool   `json:"in_progress"`
}

// ==================== Notifications ====================

// NotificationsResponse is the notification feed
type NotificationsResponse struct {
	Notifications []models.Notification `json:"notifications"`
}

// ==================== Error Response ====================

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ==================== Health Check ====================

// HealthResponse represents health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
