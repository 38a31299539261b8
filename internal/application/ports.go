package application

import (
	"context"
	"encoding/json"

	"github.com/DanielPopoola/plural-checkout/internal/domain"
)

// GatewayClient is the port for the external payment gateway.
type GatewayClient interface {
	GetToken(ctx context.Context) (*domain.Token, error)
	CreateOrder(ctx context.Context, accessToken string, req domain.OrderRequest) (*domain.Order, error)
	CreatePayment(ctx context.Context, accessToken, orderID string, req domain.PaymentRequest) (*PaymentResponse, error)
	GetOrder(ctx context.Context, accessToken, orderID string) (*OrderStatus, error)
}

// PaymentResponse keeps the gateway body verbatim alongside the fields the
// checkout flow acts on.
type PaymentResponse struct {
	Body         json.RawMessage
	OrderID      string
	Status       string
	ChallengeURL string
}

type OrderStatus struct {
	OrderID       string
	Status        string
	TransactionID string
}
