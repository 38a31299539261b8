package services

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/plural-checkout/internal/application"
	"github.com/DanielPopoola/plural-checkout/internal/domain"
)

type TokenService struct {
	gateway application.GatewayClient
	logger  *slog.Logger
}

func NewTokenService(gateway application.GatewayClient, logger *slog.Logger) *TokenService {
	return &TokenService{gateway: gateway, logger: logger}
}

func (s *TokenService) Token(ctx context.Context) (*domain.Token, error) {
	token, err := s.gateway.GetToken(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "token generation failed", "error", err)

		svcErr := application.NewGatewayFailure(application.ErrCodeTokenFailed, "Failed to get token", err)
		if svcErr.Code != application.ErrCodeServiceUnavailable {
			svcErr.Message = "Failed to get token"
		}
		return nil, svcErr
	}
	return token, nil
}
