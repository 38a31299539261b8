package middleware

import (
	"net/http"
	"strconv"

	"github.com/DanielPopoola/plural-checkout/internal/observability"
	"github.com/felixge/httpsnoop"
)

// Metrics counts requests for a single registered route.
func Metrics(metrics *observability.HTTPMetrics, route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(next, w, r)
			metrics.Requests.WithLabelValues(r.Method, route, strconv.Itoa(m.Code)).Inc()
		})
	}
}
