package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanielPopoola/plural-checkout/internal/application"
	"github.com/DanielPopoola/plural-checkout/internal/config"
	"github.com/DanielPopoola/plural-checkout/internal/domain"
	"github.com/DanielPopoola/plural-checkout/internal/infrastructure/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc) application.GatewayClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return gateway.NewGatewayClient(config.GatewayConfig{
		BaseURL:      server.URL,
		ClientID:     "client-1",
		ClientSecret: "secret-1",
		Timeout:      5 * time.Second,
	})
}

func TestGetToken_SendsClientCredentials(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/v1/token", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "client-1", body["client_id"])
		assert.Equal(t, "secret-1", body["client_secret"])
		assert.Equal(t, "client_credentials", body["grant_type"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-1","refresh_token":"ref-1","expires_at":"2030-01-01T00:00:00Z"}`))
	})

	token, err := client.GetToken(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "tok-1", token.AccessToken)
	assert.Equal(t, "2030-01-01T00:00:00Z", token.ExpiresAt)
}

func TestGetToken_RejectedIsAuthError(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"UNAUTHORIZED","message":"Invalid client credentials"}`))
	})

	_, err := client.GetToken(context.Background())

	authErr, ok := application.IsAuthError(err)
	require.True(t, ok)
	assert.Equal(t, "Invalid client credentials", authErr.Message)
	assert.Equal(t, http.StatusUnauthorized, authErr.StatusCode)
}

func TestCreateOrder_SendsBearerToken(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pay/v1/orders", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))

		var req domain.OrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "CHARGE", req.Type)
		assert.Equal(t, int64(150000), req.OrderAmount.Value)

		_, _ = w.Write([]byte(`{"data":{"order_id":"v1-ord-1","status":"CREATED","merchant_order_reference":"ref-1"}}`))
	})

	order, err := client.CreateOrder(context.Background(), "tok-1", domain.OrderRequest{
		OrderAmount:            domain.Amount{Value: 150000, Currency: "INR"},
		MerchantOrderReference: "ref-1",
		Type:                   domain.OrderTypeCharge,
	})

	require.NoError(t, err)
	assert.Equal(t, "v1-ord-1", order.OrderID)
	assert.Equal(t, "CREATED", order.Status)
}

func TestCreateOrder_GatewayErrorPassesThrough(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"INVALID_REQUEST","message":"Amount too low"}`))
	})

	_, err := client.CreateOrder(context.Background(), "tok-1", domain.OrderRequest{})

	gwErr, ok := application.IsGatewayError(err)
	require.True(t, ok)
	assert.Equal(t, gateway.OpCreateOrder, gwErr.Operation)
	assert.Equal(t, "INVALID_REQUEST", gwErr.Code)
	assert.Equal(t, "Amount too low", gwErr.Message)
	assert.Equal(t, http.StatusBadRequest, gwErr.StatusCode)
}

func TestCreateOrder_UnparseableErrorHasNoMessage(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>upstream down</html>`))
	})

	_, err := client.CreateOrder(context.Background(), "tok-1", domain.OrderRequest{})

	gwErr, ok := application.IsGatewayError(err)
	require.True(t, ok)
	assert.Empty(t, gwErr.Message)
	assert.Equal(t, http.StatusBadGateway, gwErr.StatusCode)
}

func TestCreatePayment_KeepsBodyVerbatim(t *testing.T) {
	body := `{"data":{"order_id":"v1-ord-1","status":"PENDING","challenge_url":"https://acs.example/3ds","extra":{"k":"v"}}}`

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pay/v1/orders/v1-ord-1/payments", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(body))
	})

	resp, err := client.CreatePayment(context.Background(), "tok-1", "v1-ord-1", domain.PaymentRequest{})

	require.NoError(t, err)
	assert.JSONEq(t, body, string(resp.Body))
	assert.Equal(t, "https://acs.example/3ds", resp.ChallengeURL)
	assert.Equal(t, "PENDING", resp.Status)
}

func TestGetOrder_AcceptsBothShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "enveloped", body: `{"data":{"order_id":"v1-ord-1","status":"PROCESSED","transaction_id":"txn-1"}}`},
		{name: "top level", body: `{"order_id":"v1-ord-1","status":"PROCESSED","transaction_id":"txn-1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/pay/v1/orders/v1-ord-1", r.URL.Path)
				_, _ = w.Write([]byte(tt.body))
			})

			status, err := client.GetOrder(context.Background(), "tok-1", "v1-ord-1")

			require.NoError(t, err)
			assert.Equal(t, "v1-ord-1", status.OrderID)
			assert.Equal(t, "PROCESSED", status.Status)
			assert.Equal(t, "txn-1", status.TransactionID)
		})
	}
}

func TestClient_ConnectionRefusedIsConnectivityError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client := gateway.NewGatewayClient(config.GatewayConfig{BaseURL: baseURL})

	_, err := client.GetToken(context.Background())

	require.Error(t, err)
	assert.True(t, application.IsConnectivityError(err))
	assert.Equal(t, http.StatusServiceUnavailable, application.ToHTTPStatus(err))
}
