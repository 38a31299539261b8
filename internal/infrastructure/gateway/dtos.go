package gateway

import "github.com/DanielPopoola/plural-checkout/internal/domain"

const grantTypeClientCredentials = "client_credentials"

type tokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	GrantType    string `json:"grant_type"`
}

type orderResponse struct {
	Data domain.Order `json:"data"`
}

type paymentResponse struct {
	Data struct {
		OrderID      string `json:"order_id"`
		Status       string `json:"status"`
		ChallengeURL string `json:"challenge_url"`
	} `json:"data"`
}

// getOrderResponse accepts the status either enveloped in data or at the top
// level; both shapes are seen from the order lookup endpoint.
type getOrderResponse struct {
	Data *struct {
		OrderID       string `json:"order_id"`
		Status        string `json:"status"`
		TransactionID string `json:"transaction_id"`
	} `json:"data"`
	OrderID       string `json:"order_id"`
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
}
