package middleware_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanielPopoola/plural-checkout/internal/config"
	"github.com/DanielPopoola/plural-checkout/internal/infrastructure/gateway"
	"github.com/DanielPopoola/plural-checkout/internal/interfaces/rest"
	"github.com/DanielPopoola/plural-checkout/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/plural-checkout/internal/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRecovery_ReturnsInternalError(t *testing.T) {
	handler := middleware.Recovery(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/token", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body rest.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "An internal error occurred", body.Error)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestRecovery_KeepsStartedResponse(t *testing.T) {
	handler := middleware.Recovery(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		panic("late")
	}))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestTimeout_WritesErrorResponse(t *testing.T) {
	handler := middleware.Timeout(10*time.Millisecond, discardLogger(), "/api/")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/success", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var body rest.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Request timeout", body.Error)
	assert.Equal(t, "TIMEOUT", body.Code)
	assert.False(t, body.Success)
	assert.False(t, body.Timestamp.IsZero())
}

func TestTimeout_APIRoutesWaitForSlowGateway(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-1","expires_at":"2030-01-01T00:00:00Z"}`))
	}))
	defer upstream.Close()

	client := gateway.NewGatewayClient(config.GatewayConfig{
		Environment:  "UAT",
		BaseURL:      upstream.URL,
		ClientID:     "client",
		ClientSecret: "secret",
	})

	var gatewayErr error
	handler := middleware.Timeout(100*time.Millisecond, discardLogger(), "/api/")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, gatewayErr = client.GetToken(r.Context())
		if gatewayErr != nil {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/token", nil))

	require.NoError(t, gatewayErr)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiter_PerClient(t *testing.T) {
	rl := middleware.NewRateLimiter(1, 2, discardLogger())
	handler := rl.Middleware(okHandler)

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/orders", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:1002"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2:1000"))
}

func TestMetrics_CountsByRoute(t *testing.T) {
	metrics := observability.NewHTTPMetrics(prometheus.NewRegistry())
	handler := middleware.Metrics(metrics, "/api/orders")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/orders", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Requests.WithLabelValues(http.MethodPost, "/api/orders", "201")))
}

func TestLogging_PassesThrough(t *testing.T) {
	rec := httptest.NewRecorder()

	middleware.Logging(discardLogger())(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
