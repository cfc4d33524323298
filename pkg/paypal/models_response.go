package paypal

import "encoding/json"

type AccessToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Scope       string `json:"scope"`
}

// Order is the provider's order object. Raw holds the verbatim
// response body; the create-order endpoint passes it through to the
// frontend untouched.
type Order struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Links  []Link `json:"links"`

	Raw json.RawMessage `json:"-"`
}

type Link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method"`
}

type CaptureResult struct {
	ID            string                `json:"id"`
	Status        string                `json:"status"`
	Payer         Payer                 `json:"payer"`
	PurchaseUnits []CapturePurchaseUnit `json:"purchase_units"`
}

type Payer struct {
	EmailAddress string    `json:"email_address"`
	Name         PayerName `json:"name"`
}

type PayerName struct {
	GivenName string `json:"given_name"`
	Surname   string `json:"surname"`
}

type CapturePurchaseUnit struct {
	ReferenceID string   `json:"reference_id"`
	Payments    Payments `json:"payments"`
}

type Payments struct {
	Captures []Capture `json:"captures"`
}

type Capture struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Amount Money  `json:"amount"`
}

// TransactionID returns the first capture id, falling back to the
// order id when the payload carries none.
func (r CaptureResult) TransactionID() string {
	for _, pu := range r.PurchaseUnits {
		for _, c := range pu.Payments.Captures {
			if c.ID != "" {
				return c.ID
			}
		}
	}
	return r.ID
}
