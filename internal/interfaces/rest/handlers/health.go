package handlers

import (
	"net/http"

	"github.com/DanielPopoola/plural-checkout/internal/interfaces/rest"
)

type HealthResponse struct {
	Status string `json:"status"`
}

// Health godoc
// @Summary  Liveness probe
// @Tags     ops
// @Produce  json
// @Success  200  {object}  HealthResponse
// @Router   /health [get]
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok"}, h.logger)
}
