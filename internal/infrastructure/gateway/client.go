package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"syscall"

	"github.com/DanielPopoola/plural-checkout/internal/application"
	"github.com/DanielPopoola/plural-checkout/internal/config"
	"github.com/DanielPopoola/plural-checkout/internal/domain"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	OpGetToken      = "get_token"
	OpCreateOrder   = "create_order"
	OpCreatePayment = "create_payment"
	OpGetOrder      = "get_order"
)

type HTTPGatewayClient struct {
	clientID     string
	clientSecret string
	http         *resty.Client
}

func NewGatewayClient(cfg config.GatewayConfig) application.GatewayClient {
	client := resty.New().
		SetBaseURL(cfg.ResolvedBaseURL()).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetTransport(otelhttp.NewTransport(http.DefaultTransport))

	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	return &HTTPGatewayClient{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		http:         client,
	}
}

func (c *HTTPGatewayClient) GetToken(ctx context.Context) (*domain.Token, error) {
	body := tokenRequest{
		ClientID:     c.clientID,
		ClientSecret: c.clientSecret,
		GrantType:    grantTypeClientCredentials,
	}

	resp, err := c.do(ctx, OpGetToken, http.MethodPost, "/auth/v1/token", "", body)
	if err != nil {
		return nil, err
	}

	if !isSuccess(resp.StatusCode()) {
		errResp := decodeErrorBody(resp.Body())
		return nil, &application.AuthError{
			Message:    errResp.Message,
			StatusCode: resp.StatusCode(),
		}
	}

	var token domain.Token
	if err := json.Unmarshal(resp.Body(), &token); err != nil {
		return nil, fmt.Errorf("error decoding token response: %w", err)
	}

	return &token, nil
}

func (c *HTTPGatewayClient) CreateOrder(ctx context.Context, accessToken string, req domain.OrderRequest) (*domain.Order, error) {
	out, _, err := sendRequest[orderResponse](c, ctx, OpCreateOrder, http.MethodPost, "/pay/v1/orders", accessToken, req)
	if err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *HTTPGatewayClient) CreatePayment(ctx context.Context, accessToken, orderID string, req domain.PaymentRequest) (*application.PaymentResponse, error) {
	path := fmt.Sprintf("/pay/v1/orders/%s/payments", url.PathEscape(orderID))
	out, raw, err := sendRequest[paymentResponse](c, ctx, OpCreatePayment, http.MethodPost, path, accessToken, req)
	if err != nil {
		return nil, err
	}

	return &application.PaymentResponse{
		Body:         raw,
		OrderID:      out.Data.OrderID,
		Status:       out.Data.Status,
		ChallengeURL: out.Data.ChallengeURL,
	}, nil
}

func (c *HTTPGatewayClient) GetOrder(ctx context.Context, accessToken, orderID string) (*application.OrderStatus, error) {
	path := fmt.Sprintf("/pay/v1/orders/%s", url.PathEscape(orderID))
	out, _, err := sendRequest[getOrderResponse](c, ctx, OpGetOrder, http.MethodGet, path, accessToken, nil)
	if err != nil {
		return nil, err
	}

	status := &application.OrderStatus{
		OrderID:       out.OrderID,
		Status:        out.Status,
		TransactionID: out.TransactionID,
	}
	if out.Data != nil {
		status.OrderID = out.Data.OrderID
		status.Status = out.Data.Status
		status.TransactionID = out.Data.TransactionID
	}
	if status.OrderID == "" {
		status.OrderID = orderID
	}

	return status, nil
}

func sendRequest[Resp any](c *HTTPGatewayClient, ctx context.Context, op, method, path, accessToken string, reqBody any) (*Resp, json.RawMessage, error) {
	resp, err := c.do(ctx, op, method, path, accessToken, reqBody)
	if err != nil {
		return nil, nil, err
	}

	if !isSuccess(resp.StatusCode()) {
		errResp := decodeErrorBody(resp.Body())
		return nil, nil, &application.GatewayError{
			Operation:  op,
			Code:       errResp.Code,
			Message:    errResp.Message,
			StatusCode: resp.StatusCode(),
		}
	}

	var out Resp
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, nil, fmt.Errorf("error decoding %s response: %w", op, err)
	}

	return &out, json.RawMessage(resp.Body()), nil
}

func (c *HTTPGatewayClient) do(ctx context.Context, op, method, path, accessToken string, reqBody any) (*resty.Response, error) {
	req := c.http.R().SetContext(ctx)
	if accessToken != "" {
		req.SetAuthToken(accessToken)
	}
	if reqBody != nil {
		req.SetBody(reqBody)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		if errors.Is(err, syscall.ECONNREFUSED) {
			return nil, &application.ConnectivityError{Operation: op, Err: err}
		}
		return nil, fmt.Errorf("error making %s request: %w", op, err)
	}

	return resp, nil
}

// decodeErrorBody never returns the raw body: unparseable errors yield an
// empty message so callers fall back to their own wording.
func decodeErrorBody(body []byte) application.GatewayErrorResponse {
	var errResp application.GatewayErrorResponse
	_ = json.Unmarshal(body, &errResp)
	return errResp
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
