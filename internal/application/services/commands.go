package services

import "github.com/DanielPopoola/plural-checkout/internal/domain"

// CreateOrderCommand carries the shopper's submission. Pointers distinguish
// an absent section from an empty one.
type CreateOrderCommand struct {
	Amount           *domain.Amount
	Reference        string
	Customer         *domain.Customer
	MerchantMetadata map[string]string
}

type CreatePaymentCommand struct {
	OrderID        string
	PaymentRequest *domain.PaymentRequest
}
