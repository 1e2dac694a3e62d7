package pizzeria

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"pizzeria-backend/internal/logger"
	"pizzeria-backend/internal/models"
)

// Token check failure messages
const (
	msgMissingAuthHeader   = "Missing Authorization Header"
	msgIncorrectAuthHeader = "Incorrect Authorization Header"
	msgBadCredentials      = "Bad username or password"
)

type contextKey string

// requestIDKey carries the middleware-minted request id through the context
const requestIDKey contextKey = "request_id"

// requestIDFrom returns the request id minted by the logging middleware so
// that handler records correlate with request_started/request_completed.
func requestIDFrom(r *http.Request) string {
	if id, ok := r.Context().Value(requestIDKey).(string); ok {
		return id
	}
	return logger.GenerateRequestID()
}

// Handler binds HTTP routes to the pizzeria service
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

// SetupRoutes sets up the HTTP routes under /api
func (h *Handler) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth", h.withLogging(h.Authenticate))
	mux.HandleFunc("GET /api/orders", h.withLogging(h.ListOrders))
	mux.HandleFunc("GET /api/orders/{personId}", h.withLogging(h.ListOrdersForPerson))
	mux.HandleFunc("POST /api/orders", h.withLogging(h.CreateOrder))
	mux.HandleFunc("DELETE /api/orders/{orderId}", h.withLogging(h.DeleteOrder))
	mux.HandleFunc("POST /api/register", h.withLogging(h.RegisterPerson))
	mux.HandleFunc("GET /health", h.withLogging(h.HealthCheck))

	return mux
}

// Authenticate handles POST /api/auth requests
func (h *Handler) Authenticate(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	var req models.UserAuthRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	token := h.service.FetchTokenForUser(&req)
	if token.AccessToken == "" {
		h.logger.Debug("auth_rejected", "Rejected credentials", requestID, map[string]interface{}{
			"username": req.Username,
		})
		h.writeError(w, http.StatusUnauthorized, msgBadCredentials)
		return
	}

	h.writeJSON(w, http.StatusCreated, token)
}

// ListOrders handles GET /api/orders requests
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ReadAllOrdersSortedByTime(r.Context())
	if err != nil {
		h.handleServiceError(w, err, requestIDFrom(r))
		return
	}
	h.writeJSON(w, http.StatusOK, orders)
}

// ListOrdersForPerson handles GET /api/orders/{personId} requests
func (h *Handler) ListOrdersForPerson(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	personID, err := strconv.ParseInt(r.PathValue("personId"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid person ID")
		return
	}

	orders, err := h.service.ReadOrdersForPerson(r.Context(), personID)
	if err != nil {
		h.handleServiceError(w, err, requestID)
		return
	}
	h.writeJSON(w, http.StatusOK, orders)
}

// CreateOrder handles POST /api/orders requests
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	if !h.checkTokenHeader(w, r) {
		return
	}

	var req models.CreateOrderRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	order, err := h.service.CreateOrder(ctx, &req, requestID)
	if err != nil {
		h.handleServiceError(w, err, requestID)
		return
	}
	h.writeJSON(w, http.StatusCreated, order)
}

// DeleteOrder handles DELETE /api/orders/{orderId} requests
func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	orderID, err := strconv.ParseInt(r.PathValue("orderId"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	if err := h.service.RemoveOrder(r.Context(), orderID, requestID); err != nil {
		h.handleServiceError(w, err, requestID)
		return
	}

	h.writeJSON(w, http.StatusOK, models.ResponseMessage{
		Msg: fmt.Sprintf("Successfully deleted order #%d", orderID),
	})
}

// RegisterPerson handles POST /api/register requests
func (h *Handler) RegisterPerson(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	if !h.checkTokenHeader(w, r) {
		return
	}

	var req models.RegisterPersonRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	person, err := h.service.RegisterPerson(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, requestID)
		return
	}
	h.writeJSON(w, http.StatusCreated, person)
}

// HealthCheck handles GET /health requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	healthy := h.service.HealthCheck(ctx)

	response := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "pizzeria-backend",
		"healthy":   healthy,
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
		response["status"] = "unhealthy"
	}
	h.writeJSON(w, status, response)
}

// checkTokenHeader validates the static bearer token on protected routes.
// It writes the 401 response itself and reports whether the caller may
// proceed.
func (h *Handler) checkTokenHeader(w http.ResponseWriter, r *http.Request) bool {
	token := r.Header.Get("token")
	if token == "" {
		h.writeError(w, http.StatusUnauthorized, msgMissingAuthHeader)
		return false
	}
	if token != AuthToken {
		h.writeError(w, http.StatusUnauthorized, msgIncorrectAuthHeader)
		return false
	}
	return true
}

// handleServiceError maps domain errors to HTTP status codes
func (h *Handler) handleServiceError(w http.ResponseWriter, err error, requestID string) {
	var notFound models.NotFoundError
	if errors.As(err, &notFound) {
		h.writeError(w, http.StatusNotFound, notFound.Error())
		return
	}

	var invalid models.ValidationError
	if errors.As(err, &invalid) {
		h.writeError(w, http.StatusBadRequest, invalid.Error())
		return
	}

	h.logger.Error("request_failed", "Unhandled service error", requestID, err, nil)
	h.writeError(w, http.StatusInternalServerError, "Internal server error")
}

// decodeBody parses a JSON request body into dst
func decodeBody(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

// writeJSON writes a JSON response with the given status code
func (h *Handler) writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("response_encoding_failed", "Failed to encode response", "", err, nil)
	}
}

// writeError writes a uniform {msg} error body
func (h *Handler) writeError(w http.ResponseWriter, statusCode int, message string) {
	h.writeJSON(w, statusCode, models.ResponseMessage{Msg: message})
}

// withLogging adds request logging middleware
func (h *Handler) withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := logger.GenerateRequestID()
		r = r.WithContext(context.WithValue(r.Context(), requestIDKey, requestID))

		h.logger.Debug("request_started",
			fmt.Sprintf("%s %s", r.Method, r.URL.Path),
			requestID,
			map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"remote_addr": r.RemoteAddr,
				"user_agent":  r.Header.Get("User-Agent"),
			})

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next(rw, r)

		duration := time.Since(start)
		h.logger.Debug("request_completed",
			fmt.Sprintf("%s %s - %d", r.Method, r.URL.Path, rw.statusCode),
			requestID,
			map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": rw.statusCode,
				"duration_ms": duration.Milliseconds(),
			})
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
