package handlers

import (
	"net/http"

	"github.com/DanielPopoola/plural-checkout/internal/application/services"
	"github.com/DanielPopoola/plural-checkout/internal/domain"
	"github.com/DanielPopoola/plural-checkout/internal/interfaces/rest"
)

type CreatePaymentRequest struct {
	OrderID        string                 `json:"orderId"`
	PaymentRequest *domain.PaymentRequest `json:"paymentRequest"`
}

// CreatePayment godoc
// @Summary      Pay an order by card
// @Description  Submits card details against a gateway order. The gateway response is returned unchanged.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request  body      CreatePaymentRequest  true  "Payment details"
// @Success      200      {object}  object
// @Failure      400      {object}  rest.ErrorResponse
// @Failure      503      {object}  rest.ErrorResponse
// @Router       /api/payments [post]
func (h *Handlers) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	if err := h.decode(w, r, &req); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	result, err := h.paymentService.CreatePayment(r.Context(), services.CreatePaymentCommand{
		OrderID:        req.OrderID,
		PaymentRequest: req.PaymentRequest,
	})
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Body); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to write payment response", "error", err)
	}
}
