package paypal

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aiwhispererwvdp/Ai-Whisperers-Website-Courses-sub000/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, handler http.HandlerFunc) PayPalService {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	svc, err := New(
		&core.PayPalConfig{ClientID: "id", ClientSecret: "secret", Mode: "sandbox"},
		Options{
			APIBase:    ts.URL,
			HTTPClient: ts.Client(),
			Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		},
	)
	require.NoError(t, err)

	return svc
}

func tokenResponse(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"access_token": "test-token",
		"token_type":   "Bearer",
		"expires_in":   3600,
	})
}

func TestCreateOrder_Success(t *testing.T) {
	var orderReq OrderRequest
	var seenAuth string

	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/oauth2/token":
			tokenResponse(w)

		case "/v2/checkout/orders":
			seenAuth = r.Header.Get("Authorization")
			_ = json.NewDecoder(r.Body).Decode(&orderReq)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{
				"id": "TEST_ORDER_12345",
				"status": "CREATED",
				"links": [{"href": "https://sandbox.paypal.com/approve", "rel": "approve", "method": "GET"}]
			}`))

		default:
			http.NotFound(w, r)
		}
	})

	order, err := svc.CreateOrder(context.Background(), CreateOrderParams{
		Total: "299.00",
		Items: []Item{
			{
				Name:       "AI Foundations",
				UnitAmount: Money{CurrencyCode: "USD", Value: "299.00"},
				Quantity:   "1",
			},
		},
		ReturnURL: "https://aiwhisperers.example/checkout/success",
		CancelURL: "https://aiwhisperers.example/checkout/cancel",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-token", seenAuth)

	assert.Equal(t, "TEST_ORDER_12345", order.ID)
	assert.Equal(t, "CREATED", order.Status)
	require.Len(t, order.Links, 1)
	assert.Equal(t, "approve", order.Links[0].Rel)
	assert.NotEmpty(t, order.Raw)

	require.Len(t, orderReq.PurchaseUnits, 1)
	pu := orderReq.PurchaseUnits[0]

	assert.Equal(t, "CAPTURE", orderReq.Intent)
	assert.Regexp(t, `^AI-WHISPERERS-\d+$`, pu.ReferenceID)
	assert.Equal(t, "299.00", pu.Amount.Value)
	assert.Equal(t, "USD", pu.Amount.CurrencyCode)
	require.NotNil(t, pu.Amount.Breakdown)
	assert.Equal(t, "299.00", pu.Amount.Breakdown.ItemTotal.Value)

	ac := orderReq.ApplicationContext
	assert.Equal(t, "AI Whisperers", ac.BrandName)
	assert.Equal(t, "en-US", ac.Locale)
	assert.Equal(t, "BILLING", ac.LandingPage)
	assert.Equal(t, "NO_SHIPPING", ac.ShippingPreference)
	assert.Equal(t, "PAY_NOW", ac.UserAction)
	assert.Equal(t, "https://aiwhisperers.example/checkout/success", ac.ReturnURL)
	assert.Equal(t, "https://aiwhisperers.example/checkout/cancel", ac.CancelURL)
}

func TestCreateOrder_UpstreamError(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/oauth2/token":
			tokenResponse(w)

		case "/v2/checkout/orders":
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"name":"UNPROCESSABLE_ENTITY"}`))

		default:
			http.NotFound(w, r)
		}
	})

	_, err := svc.CreateOrder(context.Background(), CreateOrderParams{Total: "299.00"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Contains(t, string(apiErr.Body), "UNPROCESSABLE_ENTITY")
}

func TestCreateOrder_TokenFailure(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_client"}`))
	})

	_, err := svc.CreateOrder(context.Background(), CreateOrderParams{Total: "299.00"})
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "token failures are not provider APIErrors")
}
