package services

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/DanielPopoola/plural-checkout/internal/application"
	"github.com/DanielPopoola/plural-checkout/internal/domain"
	"github.com/google/uuid"
)

type PaymentService struct {
	gateway      application.GatewayClient
	validator    *Validator
	logger       *slog.Logger
	newReference func() string
}

type PaymentResult struct {
	Body                     json.RawMessage
	ChallengeURL             string
	MerchantPaymentReference string
}

func NewPaymentService(
	gateway application.GatewayClient,
	validator *Validator,
	logger *slog.Logger,
) *PaymentService {
	return &PaymentService{
		gateway:      gateway,
		validator:    validator,
		logger:       logger,
		newReference: uuid.NewString,
	}
}

// CreatePayment submits a card payment against an existing order. Every call
// carries a new merchant_payment_reference, including resubmissions.
func (s *PaymentService) CreatePayment(ctx context.Context, cmd CreatePaymentCommand) (*PaymentResult, error) {
	if err := s.validator.ValidatePayment(cmd); err != nil {
		return nil, err
	}

	req := s.buildPaymentRequest(cmd)
	payment := req.Payments[0]

	s.logger.InfoContext(ctx, "creating payment",
		"order_id", cmd.OrderID,
		"merchant_payment_reference", payment.MerchantPaymentReference,
		"amount", payment.PaymentAmount.Value,
		"card", *payment.PaymentOption.CardDetails,
	)

	token, err := s.gateway.GetToken(ctx)
	if err != nil {
		return nil, s.fail(ctx, cmd.OrderID, payment.MerchantPaymentReference, err)
	}

	resp, err := s.gateway.CreatePayment(ctx, token.AccessToken, cmd.OrderID, req)
	if err != nil {
		return nil, s.fail(ctx, cmd.OrderID, payment.MerchantPaymentReference, err)
	}

	s.logger.InfoContext(ctx, "payment created",
		"order_id", cmd.OrderID,
		"status", resp.Status,
		"has_challenge_url", resp.ChallengeURL != "",
	)

	return &PaymentResult{
		Body:                     resp.Body,
		ChallengeURL:             resp.ChallengeURL,
		MerchantPaymentReference: payment.MerchantPaymentReference,
	}, nil
}

func (s *PaymentService) buildPaymentRequest(cmd CreatePaymentCommand) domain.PaymentRequest {
	submitted := cmd.PaymentRequest.Payments[0]

	amount := submitted.PaymentAmount
	if amount.Currency == "" {
		amount.Currency = domain.DefaultCurrency
	}

	card := *submitted.PaymentOption.CardDetails

	return domain.PaymentRequest{
		Payments: []domain.Payment{
			{
				PaymentAmount:            amount,
				MerchantPaymentReference: s.newReference(),
				PaymentMethod:            domain.PaymentMethodCard,
				PaymentOption: domain.PaymentOption{
					CardDetails: &card,
				},
			},
		},
	}
}

func (s *PaymentService) fail(ctx context.Context, orderID, reference string, err error) error {
	s.logger.ErrorContext(ctx, "payment creation failed",
		"order_id", orderID,
		"merchant_payment_reference", reference,
		"category", application.CategorizeError(err),
		"error", err,
	)
	return application.NewGatewayFailure(application.ErrCodePaymentFailed, "Failed to create payment", err)
}
