package connector

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/samber/lo"

	"edc-transfer/internal/models"
)

// NegotiationStateFinalized marks a negotiation that produced an agreement
const NegotiationStateFinalized = "FINALIZED"

// Negotiation is the part of a contract negotiation needed to locate the provider
type Negotiation struct {
	ID                  string
	ContractAgreementID string
	CounterPartyAddress string
}

// GetAgreement fetches a contract agreement. The connector address is not part
// of the agreement and is left empty.
//
// API endpoint: GET {managementURL}/v3/contractagreements/{id}
func (c *Client) GetAgreement(ctx context.Context, agreementID string) (*models.ContractAgreement, error) {
	if agreementID == "" {
		return nil, fmt.Errorf("agreement id cannot be empty")
	}

	var resp agreementBody
	path := "/v3/contractagreements/" + url.PathEscape(agreementID)
	if err := c.management(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to get agreement %s: %w", agreementID, err)
	}

	return &models.ContractAgreement{
		ID:         resp.ID,
		AssetID:    resp.AssetID,
		ProviderID: resp.ProviderID,
	}, nil
}

// QueryFinalizedNegotiations lists negotiations that reached FINALIZED
//
// API endpoint: POST {managementURL}/v3/contractnegotiations/request
func (c *Client) QueryFinalizedNegotiations(ctx context.Context) ([]Negotiation, error) {
	query := querySpecBody{
		Context: defaultContext(),
		Type:    "QuerySpec",
		Limit:   1000,
	}

	var resp []negotiationBody
	if err := c.management(ctx, http.MethodPost, "/v3/contractnegotiations/request", query, &resp); err != nil {
		return nil, fmt.Errorf("failed to query negotiations: %w", err)
	}

	finalized := lo.Filter(resp, func(n negotiationBody, _ int) bool {
		return n.State == NegotiationStateFinalized
	})

	return lo.Map(finalized, func(n negotiationBody, _ int) Negotiation {
		return Negotiation{
			ID:                  n.ID,
			ContractAgreementID: n.ContractAgreementID,
			CounterPartyAddress: n.CounterPartyAddress,
		}
	}), nil
}
