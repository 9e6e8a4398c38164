// Package transfer assembles transfer initiation requests.
package transfer

import "edc-transfer/internal/models"

// BuildRequest assembles a transfer request for an agreement and a chosen
// destination. It performs no validation: missing agreement fields are passed
// through empty and left for the connector to reject.
func BuildRequest(
	agreement models.ContractAgreement,
	destination models.Destination,
	receiverEndpoint string,
) models.TransferRequest {
	return models.TransferRequest{
		AssetID:          agreement.AssetID,
		ContractID:       agreement.ID,
		Destination:      destination,
		ConnectorAddress: agreement.ConnectorAddress,
		ConnectorID:      agreement.ProviderID,
		ManagedResources: false,
		Protocol:         models.ProtocolDataspaceHTTP,
		PrivateProperties: models.PrivateProperties{
			ReceiverHTTPEndpoint: receiverEndpoint,
		},
		TransferType: models.TransferType{
			ContentType: models.ContentTypeOctetStream,
			IsFinite:    true,
		},
	}
}
