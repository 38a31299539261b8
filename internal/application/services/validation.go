package services

import (
	"errors"
	"reflect"
	"strings"

	"github.com/DanielPopoola/plural-checkout/internal/domain"
	"github.com/go-playground/validator"
)

// Validator reports missing fields by their JSON names, in declaration order.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(jsonTagName)
	return &Validator{validate: v}
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// ValidateOrder runs every local check an order must pass before a token is
// requested.
func (v *Validator) ValidateOrder(cmd CreateOrderCommand) error {
	if cmd.Amount == nil || cmd.Amount.Value <= 0 {
		return domain.NewInvalidAmountError()
	}

	if cmd.Customer == nil {
		return domain.NewMissingCustomerError()
	}

	missing, err := v.missingFields(cmd.Customer)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return domain.NewMissingCustomerFieldsError(missing)
	}

	if cmd.Customer.BillingAddress == nil {
		return domain.NewMissingAddressFieldsError([]string{"billing_address"})
	}

	missing, err = v.missingFields(cmd.Customer.BillingAddress)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return domain.NewMissingAddressFieldsError(missing)
	}

	return nil
}

func (v *Validator) ValidatePayment(cmd CreatePaymentCommand) error {
	if cmd.OrderID == "" {
		return domain.NewMissingParametersError("orderId")
	}

	card := cmd.PaymentRequest.CardDetails()
	if card == nil {
		return domain.NewMissingCardDetailsError()
	}

	missing, err := v.missingFields(card)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return domain.NewMissingCardFieldsError(missing)
	}

	return nil
}

func (v *Validator) missingFields(s any) ([]string, error) {
	err := v.validate.Struct(s)
	if err == nil {
		return nil, nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil, err
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, fe.Field())
	}
	return fields, nil
}
