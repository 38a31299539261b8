package services

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/DanielPopoola/plural-checkout/internal/application"
	"github.com/DanielPopoola/plural-checkout/internal/domain"
	"github.com/google/uuid"
)

const successPath = "/success"

type OrderSettings struct {
	CallbackBaseURL string
	MerchantID      string
}

type OrderService struct {
	gateway   application.GatewayClient
	validator *Validator
	settings  OrderSettings
	logger    *slog.Logger
	now       func() time.Time
}

type OrderResult struct {
	Data      *domain.Order `json:"data"`
	Success   bool          `json:"success"`
	Timestamp time.Time     `json:"timestamp"`
}

func NewOrderService(
	gateway application.GatewayClient,
	validator *Validator,
	settings OrderSettings,
	logger *slog.Logger,
) *OrderService {
	return &OrderService{
		gateway:   gateway,
		validator: validator,
		settings:  settings,
		logger:    logger,
		now:       time.Now,
	}
}

// CreateOrder validates the submission, builds the CHARGE order and submits it
// with a freshly issued token.
func (s *OrderService) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (*OrderResult, error) {
	if err := s.validator.ValidateOrder(cmd); err != nil {
		return nil, err
	}

	req := s.buildOrderRequest(cmd)

	s.logger.InfoContext(ctx, "creating order",
		"merchant_order_reference", req.MerchantOrderReference,
		"amount", req.OrderAmount.Value,
		"customer_email", req.PurchaseDetails.Customer.EmailID,
		"callback_url", req.CallbackURL,
	)

	token, err := s.gateway.GetToken(ctx)
	if err != nil {
		return nil, s.fail(ctx, req, err)
	}

	order, err := s.gateway.CreateOrder(ctx, token.AccessToken, req)
	if err != nil {
		return nil, s.fail(ctx, req, err)
	}

	s.logger.InfoContext(ctx, "order created",
		"order_id", order.OrderID,
		"status", order.Status,
	)

	return &OrderResult{
		Data:      order,
		Success:   true,
		Timestamp: s.now().UTC(),
	}, nil
}

func (s *OrderService) buildOrderRequest(cmd CreateOrderCommand) domain.OrderRequest {
	reference := cmd.Reference
	if reference == "" {
		reference = uuid.NewString()
	}

	amount := *cmd.Amount
	if amount.Currency == "" {
		amount.Currency = domain.DefaultCurrency
	}

	customer := *cmd.Customer
	billing := *customer.BillingAddress
	shipping := billing
	customer.BillingAddress = &billing
	customer.ShippingAddress = &shipping

	return domain.OrderRequest{
		OrderAmount:            amount,
		MerchantOrderReference: reference,
		Type:                   domain.OrderTypeCharge,
		Notes:                  "Order for " + customer.FullName(),
		CallbackURL:            BuildCallbackURL(s.settings, reference, amount.Value, customer),
		PurchaseDetails: domain.PurchaseDetails{
			Customer:         customer,
			MerchantMetadata: cmd.MerchantMetadata,
		},
	}
}

func (s *OrderService) fail(ctx context.Context, req domain.OrderRequest, err error) error {
	s.logger.ErrorContext(ctx, "order creation failed",
		"merchant_order_reference", req.MerchantOrderReference,
		"category", application.CategorizeError(err),
		"error", err,
	)
	return application.NewGatewayFailure(application.ErrCodeOrderFailed, "Failed to create order", err)
}

// BuildCallbackURL returns the page the gateway redirects the shopper to. The
// order reference doubles as the order_id the page displays.
func BuildCallbackURL(settings OrderSettings, reference string, amount int64, customer domain.Customer) string {
	params := url.Values{}
	if settings.MerchantID != "" {
		params.Set("merchant_id", settings.MerchantID)
	}
	params.Set("order_id", reference)
	params.Set("amount", strconv.FormatInt(amount, 10))
	params.Set("name", customer.FullName())
	params.Set("email", customer.EmailID)
	params.Set("mobile", customer.MobileNumber)

	return settings.CallbackBaseURL + successPath + "?" + params.Encode()
}
