// Package hubspot wraps the HubSpot CRM v3 contacts API and holds the
// lead-scoring rules used to triage new enrollment leads.
package hubspot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aiwhispererwvdp/Ai-Whisperers-Website-Courses-sub000/pkg/core"
)

const (
	defaultAPIBase = "https://api.hubapi.com"

	applicationJSON = "application/json"

	optsTimeout time.Duration = 10 * time.Second

	maxErrBodyLogBytes = 800
)

type HubSpotService interface {
	CreateOrUpdateContact(ctx context.Context, contact Contact) (ContactRecord, error)
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
	// Overrides the API base URL (tests)
	APIBase string
}

type service struct {
	cfg     *core.HubSpotConfig
	apiBase string
	client  HTTPTransport
	logger  *slog.Logger
	timeout time.Duration
}

// APIError carries the CRM's status code and raw body for logging.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hubspot: upstream status=%d", e.StatusCode)
}

func New(cfg *core.HubSpotConfig, opts Options) (HubSpotService, error) {
	if cfg == nil {
		return nil, errors.New("cfg is required")
	}
	if cfg.AccessToken == "" {
		return nil, errors.New("cfg.AccessToken is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(
		slog.String("component", "crm"),
		slog.String("vendor", "hubspot"),
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
		apiBase = defaultAPIBase
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
