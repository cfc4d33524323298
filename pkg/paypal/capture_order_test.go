package paypal

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureOrder_Success(t *testing.T) {
	var seenRequestID string

	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/oauth2/token":
			tokenResponse(w)

		case "/v2/checkout/orders/TEST_ORDER_12345/capture":
			seenRequestID = r.Header.Get("PayPal-Request-Id")

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"id": "TEST_ORDER_12345",
				"status": "COMPLETED",
				"payer": {
					"email_address": "buyer@example.com",
					"name": {"given_name": "Ada", "surname": "Lovelace"}
				},
				"purchase_units": [{
					"payments": {"captures": [{"id": "CAP123", "status": "COMPLETED", "amount": {"currency_code": "USD", "value": "299.00"}}]}
				}]
			}`))

		default:
			http.NotFound(w, r)
		}
	})

	result, err := svc.CaptureOrder(context.Background(), "TEST_ORDER_12345")
	require.NoError(t, err)

	// idempotency key must be derived from the order id, not the clock
	assert.Equal(t, "AI-WHISPERERS-CAPTURE-TEST_ORDER_12345", seenRequestID)

	assert.Equal(t, "COMPLETED", result.Status)
	assert.Equal(t, "buyer@example.com", result.Payer.EmailAddress)
	assert.Equal(t, "Ada", result.Payer.Name.GivenName)
	assert.Equal(t, "CAP123", result.TransactionID())
}

func TestCaptureOrder_UpstreamError(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/oauth2/token":
			tokenResponse(w)

		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"name":"RESOURCE_NOT_FOUND"}`))
		}
	})

	_, err := svc.CaptureOrder(context.Background(), "MISSING_ORDER")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestCaptureOrder_RequiresOrderID(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	_, err := svc.CaptureOrder(context.Background(), "  ")
	require.Error(t, err)
}

func TestCaptureResult_TransactionIDFallback(t *testing.T) {
	r := CaptureResult{ID: "ORDER_ONLY"}

	assert.Equal(t, "ORDER_ONLY", r.TransactionID())
}
