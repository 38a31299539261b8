package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/DanielPopoola/plural-checkout/internal/application"
	"github.com/DanielPopoola/plural-checkout/internal/domain"
)

type ErrorResponse struct {
	Error     string    `json:"error"`
	Code      string    `json:"code,omitempty"`
	Fields    []string  `json:"fields,omitempty"`
	Success   bool      `json:"success"`
	Timestamp time.Time `json:"timestamp"`
}

// BuildErrorResponse maps an error to its status and body. Only messages from
// domain and service errors reach the client.
func BuildErrorResponse(err error) (int, ErrorResponse) {
	resp := ErrorResponse{
		Error:     "An internal error occurred",
		Code:      application.ToErrorCode(err),
		Success:   false,
		Timestamp: time.Now().UTC(),
	}

	if domainErr, ok := domain.IsDomainError(err); ok {
		resp.Error = domainErr.Message
		resp.Fields = domainErr.Fields
	} else if svcErr, ok := application.IsServiceError(err); ok {
		resp.Error = svcErr.Message
	}

	return application.ToHTTPStatus(err), resp
}

// WriteError maps application errors to HTTP responses
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	statusCode, response := BuildErrorResponse(err)

	if statusCode >= http.StatusInternalServerError {
		logger.Error("request failed",
			"status", statusCode,
			"code", response.Code,
			"category", application.CategorizeError(err),
			"error", err,
		)
	}

	WriteJSON(w, statusCode, response, logger)
}

func WriteJSON(w http.ResponseWriter, statusCode int, body any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}
