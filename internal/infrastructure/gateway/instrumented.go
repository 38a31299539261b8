package gateway

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/DanielPopoola/plural-checkout/internal/application"
	"github.com/DanielPopoola/plural-checkout/internal/domain"
	"github.com/DanielPopoola/plural-checkout/internal/observability"
)

// InstrumentedClient records metrics and logs for every gateway call. Each
// call is attempted exactly once.
type InstrumentedClient struct {
	inner   application.GatewayClient
	metrics *observability.GatewayMetrics
	logger  *slog.Logger
}

func NewInstrumentedClient(inner application.GatewayClient, metrics *observability.GatewayMetrics, logger *slog.Logger) application.GatewayClient {
	return &InstrumentedClient{
		inner:   inner,
		metrics: metrics,
		logger:  logger,
	}
}

func (c *InstrumentedClient) GetToken(ctx context.Context) (*domain.Token, error) {
	return observe(c, ctx, OpGetToken, nil, func(ctx context.Context) (*domain.Token, error) {
		return c.inner.GetToken(ctx)
	})
}

func (c *InstrumentedClient) CreateOrder(ctx context.Context, accessToken string, req domain.OrderRequest) (*domain.Order, error) {
	attrs := []any{
		"merchant_order_reference", req.MerchantOrderReference,
		"amount", req.OrderAmount.Value,
		"currency", req.OrderAmount.Currency,
		"customer_email", req.PurchaseDetails.Customer.EmailID,
	}
	return observe(c, ctx, OpCreateOrder, attrs, func(ctx context.Context) (*domain.Order, error) {
		return c.inner.CreateOrder(ctx, accessToken, req)
	})
}

func (c *InstrumentedClient) CreatePayment(ctx context.Context, accessToken, orderID string, req domain.PaymentRequest) (*application.PaymentResponse, error) {
	attrs := []any{"order_id", orderID}
	if len(req.Payments) > 0 {
		p := req.Payments[0]
		attrs = append(attrs,
			"merchant_payment_reference", p.MerchantPaymentReference,
			"amount", p.PaymentAmount.Value,
		)
		if p.PaymentOption.CardDetails != nil {
			attrs = append(attrs, "card", *p.PaymentOption.CardDetails)
		}
	}
	return observe(c, ctx, OpCreatePayment, attrs, func(ctx context.Context) (*application.PaymentResponse, error) {
		return c.inner.CreatePayment(ctx, accessToken, orderID, req)
	})
}

func (c *InstrumentedClient) GetOrder(ctx context.Context, accessToken, orderID string) (*application.OrderStatus, error) {
	return observe(c, ctx, OpGetOrder, []any{"order_id", orderID}, func(ctx context.Context) (*application.OrderStatus, error) {
		return c.inner.GetOrder(ctx, accessToken, orderID)
	})
}

func observe[T any](c *InstrumentedClient, ctx context.Context, op string, attrs []any, call func(ctx context.Context) (*T, error)) (*T, error) {
	start := time.Now()
	resp, err := call(ctx)
	elapsed := time.Since(start)

	outcome := "success"
	if err != nil {
		outcome = strings.ToLower(string(application.CategorizeError(err)))
	}

	c.metrics.Requests.WithLabelValues(op, outcome).Inc()
	c.metrics.Duration.WithLabelValues(op).Observe(elapsed.Seconds())

	args := append([]any{
		"operation", op,
		"duration_ms", elapsed.Milliseconds(),
	}, attrs...)

	if err != nil {
		args = append(args, "outcome", outcome, "error", err)
		c.logger.ErrorContext(ctx, "gateway call failed", args...)
		return nil, err
	}

	c.logger.InfoContext(ctx, "gateway call completed", args...)
	return resp, nil
}
