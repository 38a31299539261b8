package handlers

import (
	"net/http"

	"github.com/DanielPopoola/plural-checkout/internal/application/services"
	"github.com/DanielPopoola/plural-checkout/internal/domain"
	"github.com/DanielPopoola/plural-checkout/internal/interfaces/rest"
)

type purchaseDetailsRequest struct {
	Customer         *domain.Customer  `json:"customer"`
	MerchantMetadata map[string]string `json:"merchant_metadata,omitempty"`
}

type CreateOrderRequest struct {
	Amount          *domain.Amount          `json:"amount"`
	Reference       string                  `json:"reference"`
	PurchaseDetails *purchaseDetailsRequest `json:"purchase_details"`
}

func (req CreateOrderRequest) toCommand() services.CreateOrderCommand {
	cmd := services.CreateOrderCommand{
		Amount:    req.Amount,
		Reference: req.Reference,
	}
	if req.PurchaseDetails != nil {
		cmd.Customer = req.PurchaseDetails.Customer
		cmd.MerchantMetadata = req.PurchaseDetails.MerchantMetadata
	}
	return cmd
}

// CreateOrder godoc
// @Summary      Create a gateway order
// @Description  Validates the shopper's details and creates a CHARGE order on the gateway.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request  body      CreateOrderRequest    true  "Order details"
// @Success      200      {object}  services.OrderResult
// @Failure      400      {object}  rest.ErrorResponse
// @Failure      503      {object}  rest.ErrorResponse
// @Router       /api/orders [post]
func (h *Handlers) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := h.decode(w, r, &req); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	result, err := h.orderService.CreateOrder(r.Context(), req.toCommand())
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, result, h.logger)
}
