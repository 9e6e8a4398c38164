package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RequestIDHeader correlates a request with its log lines
const RequestIDHeader = "X-Request-Id"

var (
	allowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	allowedHeaders = []string{"Content-Type", "Authorization", RequestIDHeader}
)

// SetupRouter creates and configures the HTTP router
func SetupRouter(handler *Handler, logger *zap.Logger) *mux.Router {
	logger = logger.Named("api")
	router := mux.NewRouter()

	router.Use(withRequestLog(logger))
	router.Use(withCrossOrigin)
	router.Use(withPanicRecovery(logger))

	router.HandleFunc("/health", handler.HandleHealth).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()

	// Transfers
	api.HandleFunc("/transfers", handler.HandleCreateTransfer).Methods(http.MethodPost)
	api.HandleFunc("/transfers", handler.HandleListTransfers).Methods(http.MethodGet)
	api.HandleFunc("/transfers/log", handler.HandleTransferLog).Methods(http.MethodGet)
	api.HandleFunc("/transfers/in-progress/{contractId}", handler.HandleTransferInProgress).Methods(http.MethodGet)
	api.HandleFunc("/transfers/{transferId}", handler.HandleGetTransfer).Methods(http.MethodGet)
	api.HandleFunc("/transfers/{transferId}/terminate", handler.HandleTerminateTransfer).Methods(http.MethodPost)
	api.HandleFunc("/transfers/{transferId}/deprovision", handler.HandleDeprovisionTransfer).Methods(http.MethodPost)

	api.HandleFunc("/notifications", handler.HandleListNotifications).Methods(http.MethodGet)

	// middleware only runs for matched routes, so preflights need one
	router.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return router
}

// ==================== Middleware ====================

// withRequestLog tags every request with an id and logs its outcome
func withRequestLog(logger *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, requestID)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			logger.Info("HTTP request",
				zap.String("request_id", requestID),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duration", time.Since(start)),
				zap.String("remote_addr", r.RemoteAddr),
			)
		})
	}
}

// statusRecorder remembers the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// withCrossOrigin lets browser front ends call the API from any origin
func withCrossOrigin(next http.Handler) http.Handler {
	methods := strings.Join(allowedMethods, ", ")
	headers := strings.Join(allowedHeaders, ", ")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", methods)
		h.Set("Access-Control-Allow-Headers", headers)
		h.Set("Access-Control-Expose-Headers", RequestIDHeader)

		next.ServeHTTP(w, r)
	})
}

// withPanicRecovery turns a handler panic into a 500
func withPanicRecovery(logger *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rv := recover(); rv != nil {
					logger.Error("Handler panicked",
						zap.Any("panic", rv),
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.Stack("stack"),
					)
					respondError(w, http.StatusInternalServerError, "Internal server error", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
