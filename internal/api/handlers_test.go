package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"edc-transfer/internal/connector"
	"edc-transfer/internal/mocks"
	"edc-transfer/internal/models"
	"edc-transfer/internal/service"
)

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockTransfers, *mocks.MockRecords) {
	t.Helper()
	ctrl := gomock.NewController(t)
	transfers := mocks.NewMockTransfers(ctrl)
	records := mocks.NewMockRecords(ctrl)

	logger := zap.NewNop()
	return SetupRouter(NewHandler(transfers, records, logger), logger), transfers, records
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleHealth(t *testing.T) {
	logger := zap.NewNop()
	handler := NewHandler(nil, nil, logger)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	handler.HandleHealth(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var response HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.Status != "ok" {
		t.Errorf("expected status 'ok', got '%s'", response.Status)
	}
}

func TestHandleCreateTransfer(t *testing.T) {
	agreement := &models.ContractAgreement{
		ID:               "c1",
		AssetID:          "asset-1",
		ProviderID:       "provider-bpn",
		ConnectorAddress: "http://provider/protocol",
	}

	tests := []struct {
		name           string
		body           interface{}
		setup          func(*mocks.MockTransfers)
		expectedStatus int
		expectedID     string
	}{
		{
			name: "http data destination",
			body: CreateTransferRequest{
				ContractID:  "c1",
				Destination: DestinationRequest{Type: "HttpData", BaseURL: "https://sink.example.com/in"},
			},
			setup: func(m *mocks.MockTransfers) {
				m.EXPECT().ResolveAgreement(gomock.Any(), "c1").Return(agreement, nil)
				m.EXPECT().InitiateTransfer(gomock.Any(), *agreement, models.HTTPDataDestination{
					Method:  "POST",
					BaseURL: "https://sink.example.com/in",
				}).Return("t1", nil)
			},
			expectedStatus: http.StatusAccepted,
			expectedID:     "t1",
		},
		{
			name: "http data with header authentication",
			body: CreateTransferRequest{
				ContractID: "c1",
				Destination: DestinationRequest{
					Type:    "HttpData",
					Method:  "PUT",
					BaseURL: "https://sink.example.com/in",
					Authentication: &AuthenticationRequest{
						Type:        "value",
						HeaderName:  "Authorization",
						HeaderValue: "Bearer token",
					},
				},
			},
			setup: func(m *mocks.MockTransfers) {
				m.EXPECT().ResolveAgreement(gomock.Any(), "c1").Return(agreement, nil)
				m.EXPECT().InitiateTransfer(gomock.Any(), *agreement, models.HTTPDataDestination{
					Method:  "PUT",
					BaseURL: "https://sink.example.com/in",
					Authentication: &models.HTTPAuthentication{
						Type:        models.HTTPAuthTypeValue,
						HeaderName:  "Authorization",
						HeaderValue: "Bearer token",
					},
				}).Return("t3", nil)
			},
			expectedStatus: http.StatusAccepted,
			expectedID:     "t3",
		},
		{
			name: "http data with vault authentication",
			body: CreateTransferRequest{
				ContractID: "c1",
				Destination: DestinationRequest{
					Type:    "HttpData",
					BaseURL: "https://sink.example.com/in",
					Authentication: &AuthenticationRequest{
						Type:            "vault",
						HeaderName:      "X-Api-Key",
						VaultSecretName: "sink-key",
					},
				},
			},
			setup: func(m *mocks.MockTransfers) {
				m.EXPECT().ResolveAgreement(gomock.Any(), "c1").Return(agreement, nil)
				m.EXPECT().InitiateTransfer(gomock.Any(), *agreement, models.HTTPDataDestination{
					Method:  "POST",
					BaseURL: "https://sink.example.com/in",
					Authentication: &models.HTTPAuthentication{
						Type:            models.HTTPAuthTypeVault,
						HeaderName:      "X-Api-Key",
						VaultSecretName: "sink-key",
					},
				}).Return("t4", nil)
			},
			expectedStatus: http.StatusAccepted,
			expectedID:     "t4",
		},
		{
			name: "http proxy destination",
			body: CreateTransferRequest{
				ContractID:  "c1",
				Destination: DestinationRequest{Type: "HttpProxy"},
			},
			setup: func(m *mocks.MockTransfers) {
				m.EXPECT().ResolveAgreement(gomock.Any(), "c1").Return(agreement, nil)
				m.EXPECT().InitiateTransfer(gomock.Any(), *agreement, models.HTTPProxyDestination{}).Return("t2", nil)
			},
			expectedStatus: http.StatusAccepted,
			expectedID:     "t2",
		},
		{
			name: "missing contract id",
			body: CreateTransferRequest{
				Destination: DestinationRequest{Type: "HttpProxy"},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown destination type",
			body: CreateTransferRequest{
				ContractID:  "c1",
				Destination: DestinationRequest{Type: "Ftp"},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "http data without base url",
			body: CreateTransferRequest{
				ContractID:  "c1",
				Destination: DestinationRequest{Type: "HttpData"},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "s3 without bucket",
			body: CreateTransferRequest{
				ContractID:  "c1",
				Destination: DestinationRequest{Type: "AmazonS3", Region: "eu-central-1"},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "vault auth without secret name",
			body: CreateTransferRequest{
				ContractID: "c1",
				Destination: DestinationRequest{
					Type:           "HttpData",
					BaseURL:        "https://sink.example.com",
					Authentication: &AuthenticationRequest{Type: "vault", HeaderName: "Authorization"},
				},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			body:           "not an object",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown agreement",
			body: CreateTransferRequest{
				ContractID:  "missing",
				Destination: DestinationRequest{Type: "HttpProxy"},
			},
			setup: func(m *mocks.MockTransfers) {
				m.EXPECT().ResolveAgreement(gomock.Any(), "missing").
					Return(nil, fmt.Errorf("failed to get agreement missing: %w", connector.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "agreement without negotiation",
			body: CreateTransferRequest{
				ContractID:  "c1",
				Destination: DestinationRequest{Type: "HttpProxy"},
			},
			setup: func(m *mocks.MockTransfers) {
				m.EXPECT().ResolveAgreement(gomock.Any(), "c1").Return(nil, service.ErrAgreementNotNegotiated)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "connector rejects initiation",
			body: CreateTransferRequest{
				ContractID:  "c1",
				Destination: DestinationRequest{Type: "AzureStorage", Account: "acct", Container: "box"},
			},
			setup: func(m *mocks.MockTransfers) {
				m.EXPECT().ResolveAgreement(gomock.Any(), "c1").Return(agreement, nil)
				m.EXPECT().InitiateTransfer(gomock.Any(), *agreement, gomock.Any()).Return("", errors.New("boom"))
			},
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			router, transfers, _ := newTestRouter(t)
			if tt.setup != nil {
				tt.setup(transfers)
			}

			w := doJSON(t, router, http.MethodPost, "/api/v1/transfers", tt.body)
			req.Equal(tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedID != "" {
				var resp CreateTransferResponse
				req.NoError(json.NewDecoder(w.Body).Decode(&resp))
				req.Equal(tt.expectedID, resp.TransferID)
			} else {
				var resp ErrorResponse
				req.NoError(json.NewDecoder(w.Body).Decode(&resp))
				req.NotEmpty(resp.Error)
			}
		})
	}
}

func TestHandleTransferInProgress(t *testing.T) {
	req := require.New(t)
	router, transfers, _ := newTestRouter(t)

	transfers.EXPECT().IsTransferInProgress("c1").Return(true)

	w := doJSON(t, router, http.MethodGet, "/api/v1/transfers/in-progress/c1", nil)
	req.Equal(http.StatusOK, w.Code)

	var resp InProgressResponse
	req.NoError(json.NewDecoder(w.Body).Decode(&resp))
	req.Equal(InProgressResponse{ContractID: "c1", InProgress: true}, resp)
}

func TestHandleListTransfers(t *testing.T) {
	req := require.New(t)
	router, transfers, _ := newTestRouter(t)

	transfers.EXPECT().ListTransferProcesses(gomock.Any(), 20, 10).Return([]models.TransferProcess{
		{ID: "t1", State: models.TransferStateCompleted},
	}, nil)

	w := doJSON(t, router, http.MethodGet, "/api/v1/transfers?limit=10&offset=20", nil)
	req.Equal(http.StatusOK, w.Code)

	var resp TransferProcessesResponse
	req.NoError(json.NewDecoder(w.Body).Decode(&resp))
	req.Len(resp.Transfers, 1)
	req.Equal(models.TransferStateCompleted, resp.Transfers[0].State)
}

func TestHandleTransferLog(t *testing.T) {
	req := require.New(t)
	router, _, records := newTestRouter(t)

	records.EXPECT().ListTransfers(gomock.Any(), defaultPageLimit, 0).Return(nil, nil)

	w := doJSON(t, router, http.MethodGet, "/api/v1/transfers/log", nil)
	req.Equal(http.StatusOK, w.Code)
	req.JSONEq(`{"transfers":[]}`, w.Body.String())
}

func TestHandleGetTransfer(t *testing.T) {
	tests := []struct {
		name           string
		transferID     string
		process        *models.TransferProcess
		err            error
		expectedStatus int
	}{
		{
			name:       "found",
			transferID: "t1",
			process: &models.TransferProcess{
				ID:         "t1",
				State:      models.TransferStateStarted,
				ContractID: "c1",
				AssetID:    "asset-1",
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown transfer",
			transferID:     "missing",
			err:            fmt.Errorf("failed to get transfer missing: %w", connector.ErrNotFound),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "connector unavailable",
			transferID:     "t2",
			err:            errors.New("connection refused"),
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			router, transfers, _ := newTestRouter(t)
			transfers.EXPECT().GetTransferProcess(gomock.Any(), tt.transferID).Return(tt.process, tt.err)

			w := doJSON(t, router, http.MethodGet, "/api/v1/transfers/"+tt.transferID, nil)
			req.Equal(tt.expectedStatus, w.Code, w.Body.String())

			if tt.process != nil {
				var resp models.TransferProcess
				req.NoError(json.NewDecoder(w.Body).Decode(&resp))
				req.Equal(*tt.process, resp)
			}
		})
	}
}

func TestHandleTerminateAndDeprovision(t *testing.T) {
	req := require.New(t)
	router, transfers, _ := newTestRouter(t)

	transfers.EXPECT().TerminateTransfer(gomock.Any(), "t1", "Terminated by user").Return(nil)
	transfers.EXPECT().TerminateTransfer(gomock.Any(), "t2", "wrong asset").Return(connector.ErrNotFound)
	transfers.EXPECT().DeprovisionTransfer(gomock.Any(), "t1").Return(errors.New("conflict"))

	w := doJSON(t, router, http.MethodPost, "/api/v1/transfers/t1/terminate", nil)
	req.Equal(http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/transfers/t2/terminate", TerminateTransferRequest{Reason: "wrong asset"})
	req.Equal(http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/transfers/t1/deprovision", nil)
	req.Equal(http.StatusBadGateway, w.Code)
}

func TestHandleListNotifications(t *testing.T) {
	req := require.New(t)
	router, _, records := newTestRouter(t)

	records.EXPECT().ListNotifications(gomock.Any(), maxPageLimit).Return([]models.Notification{
		{ID: "n1", Level: models.NotificationLevelInfo, Message: "Transfer [t1] complete!"},
	}, nil)

	w := doJSON(t, router, http.MethodGet, "/api/v1/notifications?limit=5000", nil)
	req.Equal(http.StatusOK, w.Code)

	var resp NotificationsResponse
	req.NoError(json.NewDecoder(w.Body).Decode(&resp))
	req.Len(resp.Notifications, 1)
	req.Equal("n1", resp.Notifications[0].ID)
}

func TestRequestIDIsEchoed(t *testing.T) {
	req := require.New(t)
	router, _, _ := newTestRouter(t)

	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	req.Equal("abc-123", w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	req.NotEmpty(w.Header().Get(RequestIDHeader))
}

func TestCORSPreflight(t *testing.T) {
	req := require.New(t)
	router, _, _ := newTestRouter(t)

	r := httptest.NewRequest(http.MethodOptions, "/api/v1/transfers", nil)
	r.Header.Set("Origin", "https://portal.example.com")
	r.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	req.Equal(http.StatusNoContent, w.Code)
	req.Equal("*", w.Header().Get("Access-Control-Allow-Origin"))
	req.Contains(w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	req.Contains(w.Header().Get("Access-Control-Allow-Headers"), RequestIDHeader)

	w = doJSON(t, router, http.MethodGet, "/health", nil)
	req.Equal("*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestHandlerPanicReturns500(t *testing.T) {
	req := require.New(t)
	router, transfers, _ := newTestRouter(t)

	transfers.EXPECT().IsTransferInProgress("c1").DoAndReturn(func(string) bool {
		panic("tracker exploded")
	})

	w := doJSON(t, router, http.MethodGet, "/api/v1/transfers/in-progress/c1", nil)
	req.Equal(http.StatusInternalServerError, w.Code)

	var resp ErrorResponse
	req.NoError(json.NewDecoder(w.Body).Decode(&resp))
	req.Equal("Internal server error", resp.Error)
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		query          string
		expectedLimit  int
		expectedOffset int
	}{
		{query: "", expectedLimit: defaultPageLimit, expectedOffset: 0},
		{query: "limit=10&offset=5", expectedLimit: 10, expectedOffset: 5},
		{query: "limit=-1&offset=-3", expectedLimit: defaultPageLimit, expectedOffset: 0},
		{query: "limit=abc", expectedLimit: defaultPageLimit, expectedOffset: 0},
		{query: "limit=99999", expectedLimit: maxPageLimit, expectedOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			limit, offset := parsePage(r)
			require.Equal(t, tt.expectedLimit, limit)
			require.Equal(t, tt.expectedOffset, offset)
		})
	}
}
