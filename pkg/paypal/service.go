// Package paypal wraps the PayPal Orders v2 REST API: a
// client-credentials token exchange plus order creation and capture.
// It is a thin wrapper; retries, refunds, and webhooks are out of
// scope.
package paypal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aiwhispererwvdp/Ai-Whisperers-Website-Courses-sub000/pkg/choice"
	"github.com/aiwhispererwvdp/Ai-Whisperers-Website-Courses-sub000/pkg/core"
)

const (
	liveAPIBase    = "https://api-m.paypal.com"
	sandboxAPIBase = "https://api-m.sandbox.paypal.com"

	brandName     = "AI Whisperers"
	referencePref = "AI-WHISPERERS"

	applicationJSON = "application/json"

	optsTimeout time.Duration = 10 * time.Second

	maxErrBodyLogBytes = 800
)

type PayPalService interface {
	GetAccessToken(ctx context.Context) (*AccessToken, error)
	CreateOrder(ctx context.Context, params CreateOrderParams) (Order, error)
	CaptureOrder(ctx context.Context, orderID string) (CaptureResult, error)
}

type HTTPTransport interface {
	Do(req *http.Request) (*http.Response, error)
}

type Options struct {
	// Override for testing the HTTP client
	HTTPClient HTTPTransport
	// Structured logger using slog package
	Logger *slog.Logger
	// Context timeout
	Timeout time.Duration
	// Overrides the mode-derived API base URL (tests)
	APIBase string
}

type service struct {
	cfg     *core.PayPalConfig
	apiBase string
	client  HTTPTransport
	logger  *slog.Logger
	timeout time.Duration
}

// APIError carries the provider's status code and raw body so handlers
// can pass both through to the caller.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("paypal: upstream status=%d", e.StatusCode)
}

func New(cfg *core.PayPalConfig, opts Options) (PayPalService, error) {
	if cfg == nil {
		return nil, errors.New("cfg is required")
	}
	if cfg.ClientID == "" {
		return nil, errors.New("cfg.ClientID is required")
	}
	if cfg.ClientSecret == "" {
		return nil, errors.New("cfg.ClientSecret is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(
		slog.String("component", "payment"),
		slog.String("vendor", "paypal"),
	)

	client := opts.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = optsTimeout
	}

	apiBase := opts.APIBase
	if apiBase == "" {
		apiBase = choice.Ternary(cfg.Mode == "live", liveAPIBase, sandboxAPIBase)
	}

	return &service{
		cfg:     cfg,
		apiBase: apiBase,
		client:  client,
		logger:  logger,
		timeout: timeout,
	}, nil
}

func (s *service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline && s.timeout > 0 {
		return context.WithTimeout(ctx, s.timeout)
	}
	return ctx, func() {}
}

func snippet(b []byte) string {
	if len(b) > maxErrBodyLogBytes {
		return string(b[:maxErrBodyLogBytes]) + "..."
	}
	return string(b)
}
