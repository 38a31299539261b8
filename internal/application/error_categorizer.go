package application

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/DanielPopoola/plural-checkout/internal/domain"
)

// ErrorCategory classifies an error for logging and metrics labels.
type ErrorCategory string

const (
	CategoryValidation   ErrorCategory = "VALIDATION"
	CategoryGateway      ErrorCategory = "GATEWAY"
	CategoryAuth         ErrorCategory = "AUTH"
	CategoryConnectivity ErrorCategory = "CONNECTIVITY"
	CategoryTimeout      ErrorCategory = "TIMEOUT"
	CategoryInternal     ErrorCategory = "INTERNAL"
)

// CategorizeError determines the error category for logging purposes
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if _, ok := domain.IsDomainError(err); ok {
		return CategoryValidation
	}

	// Connectivity is checked before context errors: a refused dial wraps a
	// net.OpError, never a deadline.
	if IsConnectivityError(err) {
		return CategoryConnectivity
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CategoryTimeout
	}

	if _, ok := IsAuthError(err); ok {
		return CategoryAuth
	}

	if _, ok := IsGatewayError(err); ok {
		return CategoryGateway
	}

	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Code {
		case ErrCodeInvalidInput:
			return CategoryValidation
		case ErrCodeServiceUnavailable:
			return CategoryConnectivity
		}
	}

	return CategoryInternal
}

// ToHTTPStatus maps error to appropriate HTTP status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if _, ok := domain.IsDomainError(err); ok {
		return http.StatusBadRequest
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	if IsConnectivityError(err) {
		return http.StatusServiceUnavailable
	}

	if gwErr, ok := IsGatewayError(err); ok && gwErr.StatusCode != 0 {
		return gwErr.StatusCode
	}

	if authErr, ok := IsAuthError(err); ok && authErr.StatusCode != 0 {
		return authErr.StatusCode
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}

	// Default to 500
	return http.StatusInternalServerError
}

// ToErrorCode clear error code for API responses
func ToErrorCode(err error) string {
	if domainErr, ok := domain.IsDomainError(err); ok {
		return domainErr.Code
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	if IsConnectivityError(err) {
		return ErrCodeServiceUnavailable
	}

	if gwErr, ok := IsGatewayError(err); ok {
		if gwErr.Code == "" {
			return "GATEWAY_ERROR"
		}
		return strings.ToUpper(gwErr.Code)
	}

	if _, ok := IsAuthError(err); ok {
		return ErrCodeAuthFailed
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "TIMEOUT"
	}

	return ErrCodeInternal
}
