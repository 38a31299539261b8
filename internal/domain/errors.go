package domain

import (
	"errors"
	"fmt"
	"strings"
)

// DomainError represents a checkout rule violation detected locally, before
// any call reaches the gateway.
type DomainError struct {
	Code    string
	Message string
	Fields  []string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeInvalidAmount   = "INVALID_AMOUNT"
	ErrCodeMissingCustomer = "MISSING_CUSTOMER"
	ErrCodeMissingCard     = "MISSING_CARD_DETAILS"
	ErrCodeInvalidCallback = "INVALID_CALLBACK"
)

func NewInvalidAmountError() *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidAmount,
		Message: "Invalid amount value",
	}
}

func NewMissingCustomerError() *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingCustomer,
		Message: "Customer details are required",
	}
}

func NewMissingCustomerFieldsError(fields []string) *DomainError {
	return &DomainError{
		Code:    ErrCodeValidation,
		Message: "Missing required customer fields",
		Fields:  fields,
	}
}

func NewMissingAddressFieldsError(fields []string) *DomainError {
	return &DomainError{
		Code:    ErrCodeValidation,
		Message: "Missing required billing address fields",
		Fields:  fields,
	}
}

func NewMissingCardDetailsError() *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingCard,
		Message: "Card details are required",
	}
}

func NewMissingCardFieldsError(fields []string) *DomainError {
	return &DomainError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("Missing required card fields: %s", strings.Join(fields, ", ")),
		Fields:  fields,
	}
}

func NewMissingParametersError(fields ...string) *DomainError {
	return &DomainError{
		Code:    ErrCodeValidation,
		Message: "Missing required parameters",
		Fields:  fields,
	}
}

func NewInvalidCallbackError(message string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidCallback,
		Message: message,
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// IsDomainError reports whether err carries a locally detected rule violation.
func IsDomainError(err error) (*DomainError, bool) {
	var domainErr *DomainError
	ok := errors.As(err, &domainErr)
	return domainErr, ok
}
