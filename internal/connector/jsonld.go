package connector

import (
	"fmt"

	"edc-transfer/internal/models"
)

// Namespaces used in management API bodies
const (
	EDCNamespace  = "https://w3id.org/edc/v0.0.1/ns/"
	ODRLNamespace = "http://www.w3.org/ns/odrl/2/"
)

type jsonLDContext struct {
	Vocab string `json:"@vocab"`
	ODRL  string `json:"odrl,omitempty"`
}

func defaultContext() jsonLDContext {
	return jsonLDContext{Vocab: EDCNamespace, ODRL: ODRLNamespace}
}

// ==================== Transfer Request ====================

type transferRequestBody struct {
	Context           jsonLDContext          `json:"@context"`
	Type              string                 `json:"@type"`
	AssetID           string                 `json:"assetId"`
	ContractID        string                 `json:"contractId"`
	DataDestination   map[string]interface{} `json:"dataDestination"`
	ConnectorAddress  string                 `json:"connectorAddress"`
	CounterPartyAddr  string                 `json:"counterPartyAddress"`
	ConnectorID       string                 `json:"connectorId"`
	ManagedResources  bool                   `json:"managedResources"`
	Protocol          string                 `json:"protocol"`
	PrivateProperties privatePropertiesBody  `json:"privateProperties"`
	TransferType      transferTypeBody       `json:"transferType"`
}

type privatePropertiesBody struct {
	ReceiverHTTPEndpoint string `json:"receiverHttpEndpoint"`
}

type transferTypeBody struct {
	ContentType string `json:"contentType"`
	IsFinite    bool   `json:"isFinite"`
}

func encodeTransferRequest(r models.TransferRequest) (transferRequestBody, error) {
	destination, err := encodeDestination(r.Destination)
	if err != nil {
		return transferRequestBody{}, err
	}

	return transferRequestBody{
		Context:          defaultContext(),
		Type:             "TransferRequest",
		AssetID:          r.AssetID,
		ContractID:       r.ContractID,
		DataDestination:  destination,
		ConnectorAddress: r.ConnectorAddress,
		CounterPartyAddr: r.ConnectorAddress,
		ConnectorID:      r.ConnectorID,
		ManagedResources: r.ManagedResources,
		Protocol:         r.Protocol,
		PrivateProperties: privatePropertiesBody{
			ReceiverHTTPEndpoint: r.PrivateProperties.ReceiverHTTPEndpoint,
		},
		TransferType: transferTypeBody{
			ContentType: r.TransferType.ContentType,
			IsFinite:    r.TransferType.IsFinite,
		},
	}, nil
}

// encodeDestination renders a destination as the data address the connector
// expects. Every Destination implementation must have a case here; pointer
// variants are encoded like their values.
func encodeDestination(d models.Destination) (map[string]interface{}, error) {
	switch dest := models.Unwrap(d).(type) {
	case models.HTTPDataDestination:
		out := map[string]interface{}{
			"type":    string(dest.Type()),
			"method":  dest.Method,
			"baseUrl": dest.BaseURL,
		}
		if auth := dest.Authentication; auth != nil {
			a := map[string]interface{}{
				"type":       string(auth.Type),
				"headerName": auth.HeaderName,
			}
			if auth.Type == models.HTTPAuthTypeVault {
				a["vaultSecretName"] = auth.VaultSecretName
			} else {
				a["headerValue"] = auth.HeaderValue
			}
			out["authentication"] = a
		}
		if len(dest.Headers) > 0 {
			headers := make([]map[string]string, 0, len(dest.Headers))
			for _, h := range dest.Headers {
				headers = append(headers, map[string]string{"name": h.Name, "value": h.Value})
			}
			out["headers"] = headers
		}
		if p := dest.Payload; p != nil {
			out["payload"] = map[string]string{"contentType": p.ContentType, "body": p.Body}
		}
		return out, nil

	case models.AmazonS3Destination:
		return map[string]interface{}{
			"type":            string(dest.Type()),
			"region":          dest.Region,
			"bucketName":      dest.BucketName,
			"keyName":         dest.KeyName,
			"accessKeyId":     dest.AccessKeyID,
			"secretAccessKey": dest.SecretAccessKey,
		}, nil

	case models.AzureStorageDestination:
		out := map[string]interface{}{
			"type":      string(dest.Type()),
			"account":   dest.Account,
			"container": dest.Container,
			"sasToken":  dest.SASToken,
		}
		if dest.BlobName != "" {
			out["blobName"] = dest.BlobName
		}
		return out, nil

	case models.HTTPProxyDestination:
		return map[string]interface{}{"type": string(dest.Type())}, nil

	case nil:
		return nil, fmt.Errorf("transfer destination is required")
	}

	return nil, fmt.Errorf("unsupported destination type %T", d)
}

// ==================== Responses ====================

type idResponse struct {
	ID string `json:"@id"`
}

type stateResponse struct {
	State string `json:"state"`
}

type transferProcessBody struct {
	ID          string `json:"@id"`
	State       string `json:"state"`
	AssetID     string `json:"assetId"`
	ContractID  string `json:"contractId"`
	Type        string `json:"type"`
	ErrorDetail string `json:"errorDetail"`
}

func (b transferProcessBody) toModel() models.TransferProcess {
	return models.TransferProcess{
		ID:          b.ID,
		State:       models.TransferState(b.State),
		AssetID:     b.AssetID,
		ContractID:  b.ContractID,
		Type:        b.Type,
		ErrorDetail: b.ErrorDetail,
	}
}

type querySpecBody struct {
	Context jsonLDContext `json:"@context"`
	Type    string        `json:"@type"`
	Offset  int           `json:"offset"`
	Limit   int           `json:"limit"`
}

type terminateBody struct {
	Context jsonLDContext `json:"@context"`
	Type    string        `json:"@type"`
	Reason  string        `json:"reason"`
}

type agreementBody struct {
	ID         string `json:"@id"`
	AssetID    string `json:"assetId"`
	ProviderID string `json:"providerId"`
}

type negotiationBody struct {
	ID                  string `json:"@id"`
	State               string `json:"state"`
	ContractAgreementID string `json:"contractAgreementId"`
	CounterPartyAddress string `json:"counterPartyAddress"`
}
