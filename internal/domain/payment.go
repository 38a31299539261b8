package domain

import (
	"log/slog"
)

const PaymentMethodCard = "CARD"

// CardDetails is held only for the lifetime of a single request.
type CardDetails struct {
	Name                   string `json:"name" validate:"required"`
	RegisteredMobileNumber string `json:"registered_mobile_number" validate:"required"`
	CardNumber             string `json:"card_number" validate:"required"`
	CVV                    string `json:"cvv" validate:"required"`
	ExpiryMonth            string `json:"expiry_month" validate:"required"`
	ExpiryYear             string `json:"expiry_year" validate:"required"`
}

// LogValue keeps the PAN and CVV out of logs.
func (c CardDetails) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", c.Name),
		slog.String("card_number", MaskCardNumber(c.CardNumber)),
		slog.String("cvv", "[REDACTED]"),
		slog.String("expiry", c.ExpiryMonth+"/"+c.ExpiryYear),
	)
}

func MaskCardNumber(number string) string {
	if len(number) <= 4 {
		return "****"
	}
	return "****" + number[len(number)-4:]
}

type PaymentOption struct {
	CardDetails *CardDetails `json:"card_details,omitempty"`
}

type Payment struct {
	PaymentAmount            Amount        `json:"payment_amount"`
	MerchantPaymentReference string        `json:"merchant_payment_reference"`
	PaymentMethod            string        `json:"payment_method"`
	PaymentOption            PaymentOption `json:"payment_option"`
}

// PaymentRequest is the body sent to the gateway's create-payment endpoint.
type PaymentRequest struct {
	Payments []Payment `json:"payments"`
}

// CardDetails returns the card of the first payment, or nil.
func (r *PaymentRequest) CardDetails() *CardDetails {
	if r == nil || len(r.Payments) == 0 {
		return nil
	}
	return r.Payments[0].PaymentOption.CardDetails
}
