package handlers

import (
	"net/http"

	"github.com/DanielPopoola/plural-checkout/internal/interfaces/rest"
)

// GetToken godoc
// @Summary      Issue a gateway access token
// @Tags         gateway
// @Produce      json
// @Success      200  {object}  domain.Token
// @Failure      500  {object}  rest.ErrorResponse
// @Router       /api/token [get]
func (h *Handlers) GetToken(w http.ResponseWriter, r *http.Request) {
	token, err := h.tokenService.Token(r.Context())
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, token, h.logger)
}
