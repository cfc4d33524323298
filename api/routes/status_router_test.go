package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	redisLocal "github.com/aiwhispererwvdp/Ai-Whisperers-Website-Courses-sub000/pkg/redis"
	"github.com/gofiber/fiber/v2"
)

func TestStatusEndpoint(t *testing.T) {
	rdb := redisLocal.NewClient(redisLocal.Config{Addr: "localhost:6379"}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := redisLocal.Ping(ctx, rdb); err != nil {
		t.Skipf("redis not reachable at localhost:6379: %v", err)
	}

	app := fiber.New()
	StatusRouter(app, rdb)

	req := httptest.NewRequest(http.MethodGet, "/status", http.NoBody)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("failed to perform request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected status %d, got %d", fiber.StatusOK, resp.StatusCode)
	}
}
