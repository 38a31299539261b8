package domain

const (
	OrderTypeCharge = "CHARGE"
	DefaultCurrency = "INR"
)

// Amount is expressed in the smallest currency unit (paise for INR).
type Amount struct {
	Value    int64  `json:"value"`
	Currency string `json:"currency"`
}

type Address struct {
	Address1 string `json:"address1" validate:"required"`
	Address2 string `json:"address2"`
	Address3 string `json:"address3"`
	Pincode  string `json:"pincode" validate:"required"`
	City     string `json:"city" validate:"required"`
	State    string `json:"state" validate:"required"`
	Country  string `json:"country" validate:"required"`
}

// Customer addresses are validated separately from the identity fields so the
// missing-field report for one never mixes with the other.
type Customer struct {
	CustomerID      string   `json:"customer_id" validate:"required"`
	EmailID         string   `json:"email_id" validate:"required"`
	FirstName       string   `json:"first_name" validate:"required"`
	LastName        string   `json:"last_name" validate:"required"`
	MobileNumber    string   `json:"mobile_number" validate:"required"`
	BillingAddress  *Address `json:"billing_address,omitempty" validate:"-"`
	ShippingAddress *Address `json:"shipping_address,omitempty" validate:"-"`
}

func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

type PurchaseDetails struct {
	Customer         Customer          `json:"customer"`
	MerchantMetadata map[string]string `json:"merchant_metadata,omitempty"`
}

// OrderRequest is the body sent to the gateway's create-order endpoint.
type OrderRequest struct {
	OrderAmount            Amount          `json:"order_amount"`
	MerchantOrderReference string          `json:"merchant_order_reference"`
	Type                   string          `json:"type"`
	Notes                  string          `json:"notes"`
	CallbackURL            string          `json:"callback_url"`
	PurchaseDetails        PurchaseDetails `json:"purchase_details"`
}

// Order is the gateway-side record. OrderID and Status are assigned by the gateway.
type Order struct {
	OrderID                string `json:"order_id"`
	MerchantOrderReference string `json:"merchant_order_reference"`
	Type                   string `json:"type"`
	Status                 string `json:"status"`
	ChallengeURL           string `json:"challenge_url,omitempty"`
	MerchantID             string `json:"merchant_id"`
	OrderAmount            Amount `json:"order_amount"`
	PreAuth                bool   `json:"pre_auth"`
	Notes                  string `json:"notes,omitempty"`
	CallbackURL            string `json:"callback_url,omitempty"`
	CreatedAt              string `json:"created_at"`
	UpdatedAt              string `json:"updated_at"`
}

// Token is a client-credentials grant. It is fetched for every gateway action.
type Token struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    string `json:"expires_at"`
}
