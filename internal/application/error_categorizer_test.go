package application_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"syscall"
	"testing"

	"github.com/DanielPopoola/plural-checkout/internal/application"
	"github.com/DanielPopoola/plural-checkout/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCategorizeAndMap(t *testing.T) {
	connErr := &application.ConnectivityError{Operation: "get_token", Err: syscall.ECONNREFUSED}

	tests := []struct {
		name         string
		err          error
		wantCategory application.ErrorCategory
		wantStatus   int
		wantCode     string
	}{
		{
			name:         "validation",
			err:          domain.NewInvalidAmountError(),
			wantCategory: application.CategoryValidation,
			wantStatus:   http.StatusBadRequest,
			wantCode:     domain.ErrCodeInvalidAmount,
		},
		{
			name:         "connectivity",
			err:          fmt.Errorf("wrapped: %w", connErr),
			wantCategory: application.CategoryConnectivity,
			wantStatus:   http.StatusServiceUnavailable,
			wantCode:     application.ErrCodeServiceUnavailable,
		},
		{
			name:         "gateway with status",
			err:          &application.GatewayError{Code: "invalid_request", StatusCode: http.StatusUnprocessableEntity},
			wantCategory: application.CategoryGateway,
			wantStatus:   http.StatusUnprocessableEntity,
			wantCode:     "INVALID_REQUEST",
		},
		{
			name:         "gateway without code",
			err:          &application.GatewayError{StatusCode: http.StatusBadGateway},
			wantCategory: application.CategoryGateway,
			wantStatus:   http.StatusBadGateway,
			wantCode:     "GATEWAY_ERROR",
		},
		{
			name:         "auth",
			err:          &application.AuthError{StatusCode: http.StatusUnauthorized},
			wantCategory: application.CategoryAuth,
			wantStatus:   http.StatusUnauthorized,
			wantCode:     application.ErrCodeAuthFailed,
		},
		{
			name:         "timeout",
			err:          fmt.Errorf("get order: %w", context.DeadlineExceeded),
			wantCategory: application.CategoryTimeout,
			wantStatus:   http.StatusGatewayTimeout,
			wantCode:     "TIMEOUT",
		},
		{
			name:         "unknown",
			err:          errors.New("boom"),
			wantCategory: application.CategoryInternal,
			wantStatus:   http.StatusInternalServerError,
			wantCode:     application.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCategory, application.CategorizeError(tt.err))
			assert.Equal(t, tt.wantStatus, application.ToHTTPStatus(tt.err))
			assert.Equal(t, tt.wantCode, application.ToErrorCode(tt.err))
		})
	}
}

func TestNewGatewayFailure(t *testing.T) {
	t.Run("unavailable", func(t *testing.T) {
		err := application.NewGatewayFailure(application.ErrCodeOrderFailed, "Failed to create order",
			&application.ConnectivityError{Err: syscall.ECONNREFUSED})

		assert.Equal(t, application.ErrCodeServiceUnavailable, err.Code)
		assert.Equal(t, "Payment service is currently unavailable", err.Message)
		assert.Equal(t, http.StatusServiceUnavailable, err.HTTPStatus)
	})

	t.Run("gateway message wins", func(t *testing.T) {
		err := application.NewGatewayFailure(application.ErrCodeOrderFailed, "Failed to create order",
			&application.GatewayError{Message: "Invalid amount", StatusCode: http.StatusBadRequest})

		assert.Equal(t, "Invalid amount", err.Message)
		assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
	})

	t.Run("fallback", func(t *testing.T) {
		err := application.NewGatewayFailure(application.ErrCodePaymentFailed, "Failed to create payment", errors.New("eof"))

		assert.Equal(t, application.ErrCodePaymentFailed, err.Code)
		assert.Equal(t, "Failed to create payment", err.Message)
		assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
	})
}
