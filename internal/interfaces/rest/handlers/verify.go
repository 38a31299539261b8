package handlers

import (
	"net/http"

	"github.com/DanielPopoola/plural-checkout/internal/interfaces/rest"
)

type VerifyPaymentRequest struct {
	OrderID    string `json:"orderId"`
	MerchantID string `json:"merchantId"`
}

// VerifyPayment godoc
// @Summary      Look up an order's payment status
// @Tags         gateway
// @Accept       json
// @Produce      json
// @Param        request  body      VerifyPaymentRequest   true  "Order to verify"
// @Success      200      {object}  services.VerifyResult
// @Failure      400      {object}  rest.ErrorResponse
// @Router       /api/verify-payment [post]
func (h *Handlers) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req VerifyPaymentRequest
	if err := h.decode(w, r, &req); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	result, err := h.verifyService.Verify(r.Context(), req.OrderID, req.MerchantID)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, result, h.logger)
}
