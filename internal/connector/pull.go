package connector

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"edc-transfer/internal/models"
)

// FetchMetadata asks the receiver for the single-use credentials of a pull
// transfer. The receiver answers 404 until the provider has delivered them.
//
// API endpoint: GET {receiverURL}/{transferID}
func (c *Client) FetchMetadata(ctx context.Context, transferID string) (models.PullTransferMetadata, error) {
	var meta models.PullTransferMetadata
	if transferID == "" {
		return meta, fmt.Errorf("transfer id cannot be empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.receiverURL+"/"+url.PathEscape(transferID), nil)
	if err != nil {
		return meta, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	if err := c.do(req, &meta); err != nil {
		return meta, fmt.Errorf("failed to fetch pull metadata for %s: %w", transferID, err)
	}

	if meta.Endpoint == "" {
		return meta, fmt.Errorf("empty endpoint in pull metadata for %s", transferID)
	}

	return meta, nil
}

// FetchPayload retrieves the transferred data with the metadata credentials.
// Reading the body is bounded by ctx only. The caller closes the returned body.
func (c *Client) FetchPayload(ctx context.Context, meta models.PullTransferMetadata) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, meta.Endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if meta.AuthKey != "" {
		req.Header.Set(meta.AuthKey, meta.AuthCode)
	}

	resp, err := c.payloadClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payload: %w", err)
	}

	if err := checkStatus(resp); err != nil {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch payload: %w", err)
	}

	return resp.Body, nil
}
