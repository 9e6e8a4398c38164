package connector

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"edc-transfer/internal/models"
)

const transferProcessesPath = "/v3/transferprocesses"

// Initiate submits a transfer request and returns the new transfer process id
//
// API endpoint: POST {managementURL}/v3/transferprocesses
func (c *Client) Initiate(ctx context.Context, request models.TransferRequest) (string, error) {
	body, err := encodeTransferRequest(request)
	if err != nil {
		return "", fmt.Errorf("failed to build transfer request: %w", err)
	}

	var resp idResponse
	if err := c.management(ctx, http.MethodPost, transferProcessesPath, body, &resp); err != nil {
		return "", fmt.Errorf("failed to initiate transfer: %w", err)
	}

	if resp.ID == "" {
		return "", fmt.Errorf("empty transfer process id in response")
	}

	c.logger.Debug("Transfer initiated",
		zap.String("transfer_id", resp.ID),
		zap.String("contract_id", request.ContractID),
		zap.String("destination_type", string(request.Destination.Type())))

	return resp.ID, nil
}

// GetState returns the current state of a transfer process
//
// API endpoint: GET {managementURL}/v3/transferprocesses/{id}/state
func (c *Client) GetState(ctx context.Context, transferID string) (models.TransferState, error) {
	if transferID == "" {
		return "", fmt.Errorf("transfer id cannot be empty")
	}

	var resp stateResponse
	path := fmt.Sprintf("%s/%s/state", transferProcessesPath, url.PathEscape(transferID))
	if err := c.management(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return "", fmt.Errorf("failed to get state of transfer %s: %w", transferID, err)
	}

	if resp.State == "" {
		return "", fmt.Errorf("empty state in response for transfer %s", transferID)
	}

	return models.TransferState(resp.State), nil
}

// GetTransferProcess returns a single transfer process
//
// API endpoint: GET {managementURL}/v3/transferprocesses/{id}
func (c *Client) GetTransferProcess(ctx context.Context, transferID string) (*models.TransferProcess, error) {
	var resp transferProcessBody
	path := fmt.Sprintf("%s/%s", transferProcessesPath, url.PathEscape(transferID))
	if err := c.management(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to get transfer %s: %w", transferID, err)
	}

	process := resp.toModel()
	return &process, nil
}

// QueryTransferProcesses lists transfer processes known to the connector
//
// API endpoint: POST {managementURL}/v3/transferprocesses/request
func (c *Client) QueryTransferProcesses(ctx context.Context, offset, limit int) ([]models.TransferProcess, error) {
	query := querySpecBody{
		Context: defaultContext(),
		Type:    "QuerySpec",
		Offset:  offset,
		Limit:   limit,
	}

	var resp []transferProcessBody
	if err := c.management(ctx, http.MethodPost, transferProcessesPath+"/request", query, &resp); err != nil {
		return nil, fmt.Errorf("failed to query transfers: %w", err)
	}

	processes := make([]models.TransferProcess, 0, len(resp))
	for _, p := range resp {
		processes = append(processes, p.toModel())
	}
	return processes, nil
}

// Terminate asks the connector to stop a transfer process
func (c *Client) Terminate(ctx context.Context, transferID, reason string) error {
	body := terminateBody{
		Context: defaultContext(),
		Type:    "TerminateTransfer",
		Reason:  reason,
	}

	path := fmt.Sprintf("%s/%s/terminate", transferProcessesPath, url.PathEscape(transferID))
	if err := c.management(ctx, http.MethodPost, path, body, nil); err != nil {
		return fmt.Errorf("failed to terminate transfer %s: %w", transferID, err)
	}

	c.logger.Info("Transfer terminated",
		zap.String("transfer_id", transferID),
		zap.String("reason", reason))

	return nil
}

// Deprovision releases the resources provisioned for a transfer process
func (c *Client) Deprovision(ctx context.Context, transferID string) error {
	path := fmt.Sprintf("%s/%s/deprovision", transferProcessesPath, url.PathEscape(transferID))
	if err := c.management(ctx, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("failed to deprovision transfer %s: %w", transferID, err)
	}

	c.logger.Info("Transfer deprovisioned", zap.String("transfer_id", transferID))

	return nil
}
