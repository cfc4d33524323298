package paypal

type CreateOrderParams struct {
	// Two-decimal string, e.g. "299.00". Callers compute it from the
	// catalog, never from client input.
	Total     string
	Currency  string
	Items     []Item
	ReturnURL string
	CancelURL string
}

type OrderRequest struct {
	Intent             string             `json:"intent"`
	PurchaseUnits      []PurchaseUnit     `json:"purchase_units"`
	ApplicationContext ApplicationContext `json:"application_context"`
}

type PurchaseUnit struct {
	ReferenceID string `json:"reference_id"`
	Amount      Amount `json:"amount"`
	Items       []Item `json:"items,omitempty"`
}

type Amount struct {
	CurrencyCode string     `json:"currency_code"`
	Value        string     `json:"value"`
	Breakdown    *Breakdown `json:"breakdown,omitempty"`
}

type Breakdown struct {
	ItemTotal Money `json:"item_total"`
}

type Money struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type Item struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	UnitAmount  Money  `json:"unit_amount"`
	Quantity    string `json:"quantity"`
	Category    string `json:"category,omitempty"`
}

type ApplicationContext struct {
	BrandName          string `json:"brand_name"`
	Locale             string `json:"locale"`
	LandingPage        string `json:"landing_page"`
	ShippingPreference string `json:"shipping_preference"`
	UserAction         string `json:"user_action"`
	ReturnURL          string `json:"return_url"`
	CancelURL          string `json:"cancel_url"`
}
