package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/DanielPopoola/plural-checkout/internal/api"
	"github.com/DanielPopoola/plural-checkout/internal/application/services"
	"github.com/DanielPopoola/plural-checkout/internal/callback"
	"github.com/DanielPopoola/plural-checkout/internal/config"
	"github.com/DanielPopoola/plural-checkout/internal/domain"
	"github.com/DanielPopoola/plural-checkout/internal/infrastructure/gateway"
	"github.com/DanielPopoola/plural-checkout/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/plural-checkout/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/plural-checkout/internal/observability"
	"github.com/DanielPopoola/plural-checkout/internal/tests/e2e/testdata"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

const (
	fakeClientID     = "e2e-client"
	fakeClientSecret = "e2e-secret"
	fakeAccessToken  = "e2e-token"
	fakeOrderID      = "v1-e2e-order"
	challengeURL     = "https://acs.example/3ds/challenge"
)

// FakeGateway stands in for the payment gateway and records what it receives.
type FakeGateway struct {
	server *httptest.Server

	mu       sync.Mutex
	orders   []domain.OrderRequest
	payments []domain.PaymentRequest
	status   string
}

func NewFakeGateway(t *testing.T) *FakeGateway {
	g := &FakeGateway{status: "PROCESSED"}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/v1/token", g.token)
	mux.HandleFunc("POST /pay/v1/orders", g.createOrder)
	mux.HandleFunc("POST /pay/v1/orders/{id}/payments", g.createPayment)
	mux.HandleFunc("GET /pay/v1/orders/{id}", g.getOrder)

	g.server = httptest.NewServer(mux)
	t.Cleanup(g.server.Close)
	return g
}

func (g *FakeGateway) URL() string { return g.server.URL }

func (g *FakeGateway) Close() { g.server.Close() }

func (g *FakeGateway) Orders() []domain.OrderRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]domain.OrderRequest(nil), g.orders...)
}

func (g *FakeGateway) Payments() []domain.PaymentRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]domain.PaymentRequest(nil), g.payments...)
}

func (g *FakeGateway) SetOrderStatus(status string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.status = status
}

func (g *FakeGateway) token(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ClientID     string `json:"client_id"`
		ClientSecret string `json:"client_secret"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.ClientID != fakeClientID || req.ClientSecret != fakeClientSecret {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"code": "UNAUTHORIZED", "message": "Invalid client credentials"})
		return
	}
	writeJSON(w, http.StatusOK, domain.Token{
		AccessToken: fakeAccessToken,
		ExpiresAt:   time.Now().Add(time.Hour).UTC().Format(time.RFC3339),
	})
}

func (g *FakeGateway) authorized(w http.ResponseWriter, r *http.Request) bool {
	if r.Header.Get("Authorization") != "Bearer "+fakeAccessToken {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"code": "UNAUTHORIZED", "message": "Invalid token"})
		return false
	}
	return true
}

func (g *FakeGateway) createOrder(w http.ResponseWriter, r *http.Request) {
	if !g.authorized(w, r) {
		return
	}
	var req domain.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"code": "INVALID_REQUEST", "message": "Malformed order"})
		return
	}

	g.mu.Lock()
	g.orders = append(g.orders, req)
	g.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"data": domain.Order{
		OrderID:                fakeOrderID,
		MerchantOrderReference: req.MerchantOrderReference,
		Type:                   req.Type,
		Status:                 "CREATED",
		MerchantID:             "m-1",
		OrderAmount:            req.OrderAmount,
		CallbackURL:            req.CallbackURL,
	}})
}

func (g *FakeGateway) createPayment(w http.ResponseWriter, r *http.Request) {
	if !g.authorized(w, r) {
		return
	}
	var req domain.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Payments) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"code": "INVALID_REQUEST", "message": "Malformed payment"})
		return
	}

	g.mu.Lock()
	g.payments = append(g.payments, req)
	g.mu.Unlock()

	card := req.Payments[0].PaymentOption.CardDetails
	if card != nil && card.CardNumber == testdata.DeclinedCard.Card.CardNumber {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"code": "PAYMENT_DECLINED", "message": "Card declined by issuer"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{
		"order_id":      r.PathValue("id"),
		"status":        "PENDING",
		"challenge_url": challengeURL,
		"payments":      req.Payments,
	}})
}

func (g *FakeGateway) getOrder(w http.ResponseWriter, r *http.Request) {
	if !g.authorized(w, r) {
		return
	}
	g.mu.Lock()
	status := g.status
	g.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"data": map[string]string{
		"order_id":       r.PathValue("id"),
		"status":         status,
		"transaction_id": "txn-e2e",
	}})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// NewTestApp wires the full service against gatewayURL and serves it.
func NewTestApp(t *testing.T, gatewayURL string, opts callback.Options) *httptest.Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := prometheus.NewRegistry()

	client := gateway.NewInstrumentedClient(
		gateway.NewGatewayClient(config.GatewayConfig{
			BaseURL:      gatewayURL,
			ClientID:     fakeClientID,
			ClientSecret: fakeClientSecret,
			Timeout:      5 * time.Second,
		}),
		observability.NewGatewayMetrics(registry),
		logger,
	)

	validator := services.NewValidator()
	verifyService := services.NewVerifyService(client, logger)

	h := handlers.NewHandlers(
		services.NewOrderService(client, validator, services.OrderSettings{
			CallbackBaseURL: "http://localhost:3000",
			MerchantID:      "m-1",
		}, logger),
		services.NewPaymentService(client, validator, logger),
		services.NewTokenService(client, logger),
		verifyService,
		callback.NewRenderer(opts, verifyService, logger),
		callback.NewRenderer(callback.Options{VerifyWithGateway: opts.VerifyWithGateway}, verifyService, logger),
		logger,
	)

	mux := http.NewServeMux()
	require.NoError(t, api.RegisterDocsRoutes(mux))
	h.RegisterRoutes(mux, observability.NewHTTPMetrics(registry), middleware.NewRateLimiter(1000, 1000, logger))

	handler := middleware.Recovery(logger)(mux)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(10*time.Second, logger, "/api/")(handler)

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// TestClient wraps HTTP calls to the checkout service
type TestClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *TestClient) PostJSON(t *testing.T, path string, body any) (int, []byte) {
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := c.httpClient.Post(c.baseURL+path, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, respBody
}

func (c *TestClient) Get(t *testing.T, pathAndQuery string) (*http.Response, []byte) {
	resp, err := c.httpClient.Get(c.baseURL + pathAndQuery)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func orderPayload(amount int64) map[string]any {
	return map[string]any{
		"amount":    domain.Amount{Value: amount, Currency: "INR"},
		"reference": "e2e-ref-1",
		"purchase_details": map[string]any{
			"customer": testdata.Customer(),
		},
	}
}

func paymentPayload(orderID string, card domain.CardDetails) map[string]any {
	return map[string]any{
		"orderId": orderID,
		"paymentRequest": domain.PaymentRequest{
			Payments: []domain.Payment{{
				PaymentAmount: domain.Amount{Value: 150000, Currency: "INR"},
				PaymentOption: domain.PaymentOption{CardDetails: &card},
			}},
		},
	}
}
