package middleware

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/DanielPopoola/plural-checkout/internal/application"
	"github.com/DanielPopoola/plural-checkout/internal/interfaces/rest"
)

// Timeout answers 503 TIMEOUT when a handler outlives the deadline.
//
// Requests under an untimed prefix get no deadline, and the connection write
// deadline is cleared for them. Gateway calls on those routes are bounded
// only by the gateway client's own timeout.
func Timeout(timeout time.Duration, logger *slog.Logger, untimed ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if hasPrefix(r.URL.Path, untimed) {
				err := http.NewResponseController(w).SetWriteDeadline(time.Time{})
				if err != nil && !errors.Is(err, http.ErrNotSupported) {
					logger.WarnContext(r.Context(), "could not clear write deadline", "path", r.URL.Path, "error", err)
				}
				next.ServeHTTP(w, r)
				return
			}

			http.TimeoutHandler(next, timeout, timeoutBody()).ServeHTTP(w, r)
		})
	}
}

func hasPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func timeoutBody() string {
	body, _ := json.Marshal(rest.ErrorResponse{
		Error:     "Request timeout",
		Code:      application.ErrCodeTimeout,
		Success:   false,
		Timestamp: time.Now().UTC(),
	})
	return string(body)
}
