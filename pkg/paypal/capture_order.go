package paypal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// CaptureOrder finalizes payment for an approved order. The
// PayPal-Request-Id header is keyed off the order id so the provider
// deduplicates a retried capture of the same order.
func (s *service) CaptureOrder(ctx context.Context, orderID string) (CaptureResult, error) {
	var zero CaptureResult

	if strings.TrimSpace(orderID) == "" {
		return zero, fmt.Errorf("orderID is required")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	tok, err := s.GetAccessToken(ctx)
	if err != nil {
		return zero, fmt.Errorf("paypal access token: %w", err)
	}

	url := s.apiBase + "/v2/checkout/orders/" + orderID + "/capture"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader("{}"))
	if err != nil {
		return zero, fmt.Errorf("create capture request: %w", err)
	}

	req.Header.Set("Content-Type", applicationJSON)
	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
	req.Header.Set("PayPal-Request-Id", fmt.Sprintf("%s-CAPTURE-%s", referencePref, orderID))

	log := s.logger.With(
		slog.String("paypal_url", url),
		slog.String("order_id", orderID),
	)

	start := time.Now()
	resp, err := s.client.Do(req)
	latency := time.Since(start)

	if err != nil {
		log.Error("paypal capture request failed",
			slog.Any("error", err),
			slog.Duration("latency", latency),
		)
		return zero, fmt.Errorf("capture order: %w", err)
	}
	defer resp.Body.Close()

	respBytes, _ := io.ReadAll(resp.Body)

	log.Info("paypal capture response received",
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", latency),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error("paypal capture non-2xx",
			slog.Int("status", resp.StatusCode),
			slog.String("body_snippet", snippet(respBytes)),
		)
		return zero, &APIError{StatusCode: resp.StatusCode, Body: respBytes}
	}

	var result CaptureResult
	if err := json.Unmarshal(respBytes, &result); err != nil {
		return zero, fmt.Errorf("decode capture response: %w", err)
	}

	return result, nil
}
