package handlers

import (
	"net/http"

	"github.com/DanielPopoola/plural-checkout/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/plural-checkout/internal/observability"
)

// RegisterRoutes mounts the checkout API and pages on mux. API routes share
// limiter; pages and the health probe are not limited.
func (h *Handlers) RegisterRoutes(mux *http.ServeMux, metrics *observability.HTTPMetrics, limiter *middleware.RateLimiter) {
	handle := func(method, path string, fn http.HandlerFunc, limited bool) {
		var handler http.Handler = fn
		if limited && limiter != nil {
			handler = limiter.Middleware(handler)
		}
		if metrics != nil {
			handler = middleware.Metrics(metrics, path)(handler)
		}
		mux.Handle(method+" "+path, handler)
	}

	handle(http.MethodPost, "/api/orders", h.CreateOrder, true)
	handle(http.MethodPost, "/api/payments", h.CreatePayment, true)
	handle(http.MethodGet, "/api/token", h.GetToken, true)
	handle(http.MethodPost, "/api/verify-payment", h.VerifyPayment, true)

	handle(http.MethodGet, "/success", h.SuccessPage, false)
	handle(http.MethodGet, "/callback", h.CallbackPage, false)
	handle(http.MethodGet, "/success/receipt", h.DownloadReceipt, false)
	handle(http.MethodGet, "/health", h.Health, false)
}
