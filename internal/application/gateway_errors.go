package application

import (
	"errors"
	"fmt"
)

// GatewayError is a non-2xx answer from an order or payment endpoint.
type GatewayError struct {
	Operation  string
	Code       string
	Message    string
	StatusCode int
}

// GatewayErrorResponse is the error body shape returned by the gateway.
type GatewayErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway error [%s] %s: %s (status: %d)", e.Operation, e.Code, e.Message, e.StatusCode)
}

// AuthError is a non-2xx answer from the token endpoint.
type AuthError struct {
	Message    string
	StatusCode int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("gateway authentication failed: %s (status: %d)", e.Message, e.StatusCode)
}

// ConnectivityError means the gateway refused the connection.
type ConnectivityError struct {
	Operation string
	Err       error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("gateway unreachable during %s: %v", e.Operation, e.Err)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

func IsGatewayError(err error) (*GatewayError, bool) {
	var gwErr *GatewayError
	ok := errors.As(err, &gwErr)
	return gwErr, ok
}

func IsAuthError(err error) (*AuthError, bool) {
	var authErr *AuthError
	ok := errors.As(err, &authErr)
	return authErr, ok
}

func IsConnectivityError(err error) bool {
	var connErr *ConnectivityError
	return errors.As(err, &connErr)
}
