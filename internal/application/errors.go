package application

import (
	"errors"
	"fmt"
	"net/http"
)

// APPLICATION-LEVEL ERRORS (Orchestration)

type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeInternal           = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeOrderFailed        = "ORDER_FAILED"
	ErrCodePaymentFailed      = "PAYMENT_FAILED"
	ErrCodeTokenFailed        = "TOKEN_FAILED"
	ErrCodeVerifyFailed       = "VERIFICATION_FAILED"
	ErrCodeAuthFailed         = "AUTHENTICATION_FAILED"
	ErrCodeInvalidInput       = "INVALID_INPUT"
	ErrCodeTimeout            = "TIMEOUT"
)

const unavailableMessage = "Payment service is currently unavailable"

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "An internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewInvalidInputError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInvalidInput,
		Message:    "Invalid request body",
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

// NewGatewayFailure translates a gateway call failure into the stable error a
// route returns. fallback is used when the gateway gave no message.
func NewGatewayFailure(code, fallback string, err error) *ServiceError {
	svcErr := &ServiceError{
		Code:       code,
		Message:    fallback,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}

	switch {
	case IsConnectivityError(err):
		svcErr.Code = ErrCodeServiceUnavailable
		svcErr.Message = unavailableMessage
		svcErr.HTTPStatus = http.StatusServiceUnavailable
	case errors.As(err, new(*GatewayError)):
		gwErr, _ := IsGatewayError(err)
		if gwErr.Message != "" {
			svcErr.Message = gwErr.Message
		}
		if gwErr.StatusCode != 0 {
			svcErr.HTTPStatus = gwErr.StatusCode
		}
	case errors.As(err, new(*AuthError)):
		authErr, _ := IsAuthError(err)
		svcErr.Code = ErrCodeAuthFailed
		if authErr.Message != "" {
			svcErr.Message = authErr.Message
		}
		if authErr.StatusCode != 0 {
			svcErr.HTTPStatus = authErr.StatusCode
		}
	}

	return svcErr
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}
