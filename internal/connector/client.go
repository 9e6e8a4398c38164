// Package connector talks to the consumer-side EDC connector: the management
// API for transfer processes and agreements, and the receiver endpoint that
// hands out pull-transfer credentials.
package connector

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"edc-transfer/internal/config"
)

// APIKeyHeader carries the management API key
const APIKeyHeader = "X-Api-Key"

// ErrNotFound is matched by StatusError values carrying a 404
var ErrNotFound = errors.New("not found")

// StatusError is returned when the connector answers with a non-2xx status
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("connector returned status %d: %s", e.StatusCode, e.Body)
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Client handles requests to the connector
type Client struct {
	managementURL string
	receiverURL   string
	apiKey        string
	httpClient    *http.Client
	// payloadClient bounds only the wait for response headers so large
	// payloads can stream for as long as the caller's context allows
	payloadClient *http.Client
	logger        *zap.Logger
}

// NewClient creates a new connector client
func NewClient(cfg *config.ConnectorConfig, logger *zap.Logger) (*Client, error) {
	if cfg.ManagementURL == "" {
		return nil, fmt.Errorf("connector management URL cannot be empty")
	}
	if cfg.ReceiverURL == "" {
		return nil, fmt.Errorf("connector receiver URL cannot be empty")
	}

	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	payloadTransport := http.DefaultTransport.(*http.Transport).Clone()
	payloadTransport.ResponseHeaderTimeout = timeout

	return &Client{
		managementURL: strings.TrimRight(cfg.ManagementURL, "/"),
		receiverURL:   strings.TrimRight(cfg.ReceiverURL, "/"),
		apiKey:        cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		payloadClient: &http.Client{
			Transport: payloadTransport,
		},
		logger: logger.Named("connector"),
	}, nil
}

// management sends a JSON request to the management API and decodes the
// JSON answer into out when out is non-nil
func (c *Client) management(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.managementURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to query connector: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
}
