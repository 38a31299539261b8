package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/plural-checkout/internal/application"
	"github.com/DanielPopoola/plural-checkout/internal/application/services"
	"github.com/DanielPopoola/plural-checkout/internal/callback"
)

const maxBodyBytes = 1 << 20

// Handlers serves the checkout API and the result pages.
type Handlers struct {
	orderService   *services.OrderService
	paymentService *services.PaymentService
	tokenService   *services.TokenService
	verifyService  *services.VerifyService
	successPage    *callback.Renderer
	callbackPage   *callback.Renderer
	logger         *slog.Logger
}

func NewHandlers(
	orderService *services.OrderService,
	paymentService *services.PaymentService,
	tokenService *services.TokenService,
	verifyService *services.VerifyService,
	successPage *callback.Renderer,
	callbackPage *callback.Renderer,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		orderService:   orderService,
		paymentService: paymentService,
		tokenService:   tokenService,
		verifyService:  verifyService,
		successPage:    successPage,
		callbackPage:   callbackPage,
		logger:         logger,
	}
}

func (h *Handlers) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return application.NewInvalidInputError(err)
	}
	return nil
}
