package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/jaskrrish/go-qre/internal/models"
	"github.com/jaskrrish/go-qre/internal/quantum"
	"github.com/jaskrrish/go-qre/internal/resources"
)

// Version is reported by the home and health endpoints
const Version = "1.0.0"

// HomeHandler handles requests to the root path
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to the quantum resource estimation API",
		"version": Version,
		"status":  "running",
	})
}

// HealthHandler handles health check requests
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "go-qre-api",
		"version":   Version,
	})
}

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	var apiErr *models.APIError
	switch {
	case errors.As(err, &apiErr):
		return http.StatusBadRequest
	case errors.Is(err, quantum.ErrInvalidArgument), errors.Is(err, resources.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, quantum.ErrEncodingOverflow),
		errors.Is(err, quantum.ErrLengthMismatch),
		errors.Is(err, quantum.ErrUnsupportedGate):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondWithJSON sends a JSON response. The status is only written once the
// body has been encoded; an unencodable body becomes a 500.
func respondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		zap.L().Error("failed to encode response", zap.Int("status", statusCode), zap.Error(err))
		body = []byte(`{"error":"failed to encode response"}`)
		statusCode = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(append(body, '\n'))
}

// respondWithError sends an error response
func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondWithDomainError logs err and sends it with the mapped status code
func respondWithDomainError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	zap.L().Debug("request rejected",
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.Error(err),
	)
	respondWithError(w, status, err.Error())
}
