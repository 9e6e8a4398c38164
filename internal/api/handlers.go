//go:generate go run go.uber.org/mock/mockgen -source=handlers.go -destination=../mocks/mock_api.go -package=mocks

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"edc-transfer/internal/connector"
	"edc-transfer/internal/models"
	"edc-transfer/internal/service"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 1000
)

// Transfers is the transfer lifecycle surface used by the handlers
type Transfers interface {
	ResolveAgreement(ctx context.Context, contractID string) (*models.ContractAgreement, error)
	InitiateTransfer(ctx context.Context, agreement models.ContractAgreement, destination models.Destination) (string, error)
	IsTransferInProgress(contractID string) bool
	ListTransferProcesses(ctx context.Context, offset, limit int) ([]models.TransferProcess, error)
	GetTransferProcess(ctx context.Context, transferID string) (*models.TransferProcess, error)
	TerminateTransfer(ctx context.Context, transferID, reason string) error
	DeprovisionTransfer(ctx context.Context, transferID string) error
}

// Records is the read side of the local database
type Records interface {
	ListTransfers(ctx context.Context, limit, offset int) ([]models.TransferRecord, error)
	ListNotifications(ctx context.Context, limit int) ([]models.Notification, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	transfers Transfers
	records   Records
	validate  *validator.Validate
	logger    *zap.Logger
}

// NewHandler creates a new API handler
func NewHandler(transfers Transfers, records Records, logger *zap.Logger) *Handler {
	return &Handler{
		transfers: transfers,
		records:   records,
		validate:  validator.New(),
		logger:    logger,
	}
}

// ==================== Health Check ====================

// HandleHealth returns service health status
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	}
	respondJSON(w, http.StatusOK, response)
}

// ==================== Transfers ====================

// HandleCreateTransfer handles POST /api/v1/transfers
// Resolves the contract agreement and starts a transfer to the requested destination
func (h *Handler) HandleCreateTransfer(w http.ResponseWriter, r *http.Request) {
	var req CreateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", zap.Error(err))
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid transfer request", err)
		return
	}

	destination, err := req.Destination.toDestination()
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid destination", err)
		return
	}

	agreement, err := h.transfers.ResolveAgreement(r.Context(), req.ContractID)
	switch {
	case errors.Is(err, connector.ErrNotFound):
		respondError(w, http.StatusNotFound, "Contract agreement not found", nil)
		return
	case errors.Is(err, service.ErrAgreementNotNegotiated):
		respondError(w, http.StatusConflict, "Contract agreement is not finalized", err)
		return
	case err != nil:
		h.logger.Error("Failed to resolve agreement",
			zap.String("contract_id", req.ContractID),
			zap.Error(err))
		respondError(w, http.StatusBadGateway, "Failed to resolve contract agreement", err)
		return
	}

	transferID, err := h.transfers.InitiateTransfer(r.Context(), *agreement, destination)
	if err != nil {
		respondError(w, http.StatusBadGateway, "Failed to initiate transfer", err)
		return
	}

	respondJSON(w, http.StatusAccepted, CreateTransferResponse{TransferID: transferID})
}

// HandleListTransfers handles GET /api/v1/transfers
// Lists the transfer processes known to the connector
func (h *Handler) HandleListTransfers(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePage(r)

	processes, err := h.transfers.ListTransferProcesses(r.Context(), offset, limit)
	if err != nil {
		h.logger.Error("Failed to list transfer processes", zap.Error(err))
		respondError(w, http.StatusBadGateway, "Failed to list transfers", err)
		return
	}
	if processes == nil {
		processes = []models.TransferProcess{}
	}

	respondJSON(w, http.StatusOK, TransferProcessesResponse{Transfers: processes})
}

// HandleTransferLog handles GET /api/v1/transfers/log
// Lists transfers initiated by this service
func (h *Handler) HandleTransferLog(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePage(r)

	records, err := h.records.ListTransfers(r.Context(), limit, offset)
	if err != nil {
		h.logger.Error("Failed to list transfer log", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to list transfer log", err)
		return
	}
	if records == nil {
		records = []models.TransferRecord{}
	}

	respondJSON(w, http.StatusOK, TransferLogResponse{Transfers: records})
}

// HandleTransferInProgress handles GET /api/v1/transfers/in-progress/{contractId}
func (h *Handler) HandleTransferInProgress(w http.ResponseWriter, r *http.Request) {
	contractID := mux.Vars(r)["contractId"]
	if contractID == "" {
		respondError(w, http.StatusBadRequest, "contract_id is required", nil)
		return
	}

	respondJSON(w, http.StatusOK, InProgressResponse{
		ContractID: contractID,
		InProgress: h.transfers.IsTransferInProgress(contractID),
	})
}

// HandleGetTransfer handles GET /api/v1/transfers/{transferId}
func (h *Handler) HandleGetTransfer(w http.ResponseWriter, r *http.Request) {
	transferID := mux.Vars(r)["transferId"]

	process, err := h.transfers.GetTransferProcess(r.Context(), transferID)
	switch {
	case errors.Is(err, connector.ErrNotFound):
		respondError(w, http.StatusNotFound, "Transfer not found", nil)
		return
	case err != nil:
		h.logger.Error("Failed to get transfer process",
			zap.String("transfer_id", transferID),
			zap.Error(err))
		respondError(w, http.StatusBadGateway, "Failed to get transfer", err)
		return
	}

	respondJSON(w, http.StatusOK, process)
}

// HandleTerminateTransfer handles POST /api/v1/transfers/{transferId}/terminate
func (h *Handler) HandleTerminateTransfer(w http.ResponseWriter, r *http.Request) {
	transferID := mux.Vars(r)["transferId"]

	var req TerminateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid terminate request", err)
		return
	}
	if req.Reason == "" {
		req.Reason = "Terminated by user"
	}

	err := h.transfers.TerminateTransfer(r.Context(), transferID, req.Reason)
	h.respondConnectorResult(w, transferID, "terminate", err)
}

// HandleDeprovisionTransfer handles POST /api/v1/transfers/{transferId}/deprovision
func (h *Handler) HandleDeprovisionTransfer(w http.ResponseWriter, r *http.Request) {
	transferID := mux.Vars(r)["transferId"]

	err := h.transfers.DeprovisionTransfer(r.Context(), transferID)
	h.respondConnectorResult(w, transferID, "deprovision", err)
}

func (h *Handler) respondConnectorResult(w http.ResponseWriter, transferID, action string, err error) {
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, connector.ErrNotFound):
		respondError(w, http.StatusNotFound, "Transfer not found", nil)
	default:
		h.logger.Error("Connector rejected transfer action",
			zap.String("transfer_id", transferID),
			zap.String("action", action),
			zap.Error(err))
		respondError(w, http.StatusBadGateway, fmt.Sprintf("Failed to %s transfer", action), err)
	}
}

// ==================== Notifications ====================

// HandleListNotifications handles GET /api/v1/notifications
func (h *Handler) HandleListNotifications(w http.ResponseWriter, r *http.Request) {
	limit, _ := parsePage(r)

	notifications, err := h.records.ListNotifications(r.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to list notifications", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to list notifications", err)
		return
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}

	respondJSON(w, http.StatusOK, NotificationsResponse{Notifications: notifications})
}

// ==================== Helper Functions ====================

// parsePage reads the optional limit and offset query parameters
func parsePage(r *http.Request) (limit, offset int) {
	limit = defaultPageLimit

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = min(parsedLimit, maxPageLimit)
		}
	}

	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if parsedOffset, err := strconv.Atoi(offsetStr); err == nil && parsedOffset >= 0 {
			offset = parsedOffset
		}
	}

	return limit, offset
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log error but can't send response since headers already written
		fmt.Printf("Failed to encode JSON response: %v\n", err)
	}
}

// respondError sends an error response
func respondError(w http.ResponseWriter, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = fmt.Sprintf("%s: %v", message, err)
	}

	response := ErrorResponse{
		Error:   message,
		Message: errorMsg,
	}

	respondJSON(w, statusCode, response)
}
