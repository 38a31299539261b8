package services

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/plural-checkout/internal/application"
	"github.com/DanielPopoola/plural-checkout/internal/domain"
)

type VerifyService struct {
	gateway application.GatewayClient
	logger  *slog.Logger
}

type VerifyResult struct {
	Status        string `json:"status"`
	TransactionID string `json:"transactionId"`
	Success       bool   `json:"success"`
}

func NewVerifyService(gateway application.GatewayClient, logger *slog.Logger) *VerifyService {
	return &VerifyService{gateway: gateway, logger: logger}
}

// Verify looks the order up on the gateway. It is not part of the checkout
// sequence; the callback page may use it to confirm a redirect.
func (s *VerifyService) Verify(ctx context.Context, orderID, merchantID string) (*VerifyResult, error) {
	var missing []string
	if orderID == "" {
		missing = append(missing, "orderId")
	}
	if merchantID == "" {
		missing = append(missing, "merchantId")
	}
	if len(missing) > 0 {
		return nil, domain.NewMissingParametersError(missing...)
	}

	status, err := s.lookup(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return &VerifyResult{
		Status:        status.Status,
		TransactionID: status.TransactionID,
		Success:       true,
	}, nil
}

// OrderStatus returns the gateway's status string for orderID.
func (s *VerifyService) OrderStatus(ctx context.Context, orderID string) (string, error) {
	status, err := s.lookup(ctx, orderID)
	if err != nil {
		return "", err
	}
	return status.Status, nil
}

func (s *VerifyService) lookup(ctx context.Context, orderID string) (*application.OrderStatus, error) {
	token, err := s.gateway.GetToken(ctx)
	if err != nil {
		return nil, s.fail(ctx, orderID, err)
	}

	status, err := s.gateway.GetOrder(ctx, token.AccessToken, orderID)
	if err != nil {
		return nil, s.fail(ctx, orderID, err)
	}
	return status, nil
}

func (s *VerifyService) fail(ctx context.Context, orderID string, err error) error {
	s.logger.ErrorContext(ctx, "payment verification failed", "order_id", orderID, "error", err)
	return application.NewGatewayFailure(application.ErrCodeVerifyFailed, "Failed to verify payment", err)
}
