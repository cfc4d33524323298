package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// CreateOrder builds and posts an Orders v2 create request. The
// reference id is AI-WHISPERERS-<epochMillis>; the application context
// pins the hosted flow to a billing page with no shipping.
func (s *service) CreateOrder(ctx context.Context, params CreateOrderParams) (Order, error) {
	var zero Order

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	tok, err := s.GetAccessToken(ctx)
	if err != nil {
		return zero, fmt.Errorf("paypal access token: %w", err)
	}

	currency := params.Currency
	if currency == "" {
		currency = "USD"
	}

	reqBody := OrderRequest{
		Intent: "CAPTURE",
		PurchaseUnits: []PurchaseUnit{
			{
				ReferenceID: fmt.Sprintf("%s-%d", referencePref, time.Now().UnixMilli()),
				Amount: Amount{
					CurrencyCode: currency,
					Value:        params.Total,
					Breakdown: &Breakdown{
						ItemTotal: Money{
							CurrencyCode: currency,
							Value:        params.Total,
						},
					},
				},
				Items: params.Items,
			},
		},
		ApplicationContext: ApplicationContext{
			BrandName:          brandName,
			Locale:             "en-US",
			LandingPage:        "BILLING",
			ShippingPreference: "NO_SHIPPING",
			UserAction:         "PAY_NOW",
			ReturnURL:          params.ReturnURL,
			CancelURL:          params.CancelURL,
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return zero, fmt.Errorf("marshal order body: %w", err)
	}

	url := s.apiBase + "/v2/checkout/orders"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return zero, fmt.Errorf("create order request: %w", err)
	}

	req.Header.Set("Content-Type", applicationJSON)
	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)

	log := s.logger.With(slog.String("paypal_url", url))

	start := time.Now()
	resp, err := s.client.Do(req)
	latency := time.Since(start)

	if err != nil {
		log.Error("paypal create order request failed",
			slog.Any("error", err),
			slog.Duration("latency", latency),
		)
		return zero, fmt.Errorf("create order: %w", err)
	}
	defer resp.Body.Close()

	respBytes, _ := io.ReadAll(resp.Body)

	log.Info("paypal create order response received",
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", latency),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error("paypal create order non-2xx",
			slog.Int("status", resp.StatusCode),
			slog.String("body_snippet", snippet(respBytes)),
		)
		return zero, &APIError{StatusCode: resp.StatusCode, Body: respBytes}
	}

	var order Order
	if err := json.Unmarshal(respBytes, &order); err != nil {
		return zero, fmt.Errorf("decode order response: %w", err)
	}
	order.Raw = respBytes

	return order, nil
}
