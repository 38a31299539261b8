package rest_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"syscall"
	"testing"

	"github.com/DanielPopoola/plural-checkout/internal/application"
	"github.com/DanielPopoola/plural-checkout/internal/domain"
	"github.com/DanielPopoola/plural-checkout/internal/interfaces/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
		wantFields []string
	}{
		{
			name:       "validation",
			err:        domain.NewMissingCustomerFieldsError([]string{"email_id"}),
			wantStatus: http.StatusBadRequest,
			wantError:  "Missing required customer fields",
			wantFields: []string{"email_id"},
		},
		{
			name:       "gateway passthrough",
			err:        application.NewGatewayFailure(application.ErrCodeOrderFailed, "Failed to create order", &application.GatewayError{Message: "Duplicate reference", StatusCode: http.StatusConflict}),
			wantStatus: http.StatusConflict,
			wantError:  "Duplicate reference",
		},
		{
			name:       "connectivity",
			err:        application.NewGatewayFailure(application.ErrCodePaymentFailed, "Failed to create payment", &application.ConnectivityError{Err: syscall.ECONNREFUSED}),
			wantStatus: http.StatusServiceUnavailable,
			wantError:  "Payment service is currently unavailable",
		},
		{
			name:       "unknown error hides detail",
			err:        errors.New("pq: relation does not exist"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "An internal error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			rest.WriteError(rec, tt.err, slog.New(slog.NewTextHandler(io.Discard, nil)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body rest.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantError, body.Error)
			assert.Equal(t, tt.wantFields, body.Fields)
			assert.False(t, body.Timestamp.IsZero())
		})
	}
}
