package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aiwhispererwvdp/Ai-Whisperers-Website-Courses-sub000/pkg/core"
	redisLocal "github.com/aiwhispererwvdp/Ai-Whisperers-Website-Courses-sub000/pkg/redis"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Builds the full route tree with no vendor credentials. Redis points
// at an unreachable port so the breaker and capture guard exercise
// their fail-open paths.
func newRouterApp(t *testing.T, mutate func(*core.Config)) *fiber.App {
	t.Helper()

	cfg := core.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}

	rdb := redisLocal.NewClient(redisLocal.Config{Addr: "localhost:1"}, nil)

	app := fiber.New()
	RegisterRoutes(app, &cfg, rdb, nil)
	return app
}

func TestRegisterRoutes_Index(t *testing.T) {
	app := newRouterApp(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRegisterRoutes_EnrollmentPrepare(t *testing.T) {
	app := newRouterApp(t, nil)

	payload, err := json.Marshal(map[string]any{
		"studentInfo": map[string]any{
			"firstName":  "Ada",
			"lastName":   "Lovelace",
			"email":      "ada@example.com",
			"experience": "beginner",
		},
		"courseId": "ai-foundations",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/enrollment/prepare", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRegisterRoutes_PaymentRoutesWithoutCredentials(t *testing.T) {
	app := newRouterApp(t, nil)

	for _, path := range []string{
		"/api/payment/create-order",
		"/api/payment/capture-order",
	} {
		t.Run(path, func(t *testing.T) {
			body := bytes.NewReader([]byte(`{"orderId":"X","courseId":"ai-foundations","price":299,"title":"AI Foundations"}`))
			req := httptest.NewRequest(http.MethodPost, path, body)
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		})
	}
}

func TestRegisterRoutes_DashboardLockedWithoutAuthSecret(t *testing.T) {
	app := newRouterApp(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/courses", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRegisterRoutes_DashboardSkipAuth(t *testing.T) {
	app := newRouterApp(t, func(cfg *core.Config) {
		cfg.SkipAuth = true
	})

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/courses", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
