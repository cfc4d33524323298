package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aiwhispererwvdp/Ai-Whisperers-Website-Courses-sub000/api"
	"github.com/aiwhispererwvdp/Ai-Whisperers-Website-Courses-sub000/pkg/core"
	"github.com/aiwhispererwvdp/Ai-Whisperers-Website-Courses-sub000/pkg/redis"

	"github.com/gofiber/fiber/v2"
)

func main() {
	if err := core.LoadEnv(); err != nil {
		log.Printf("env files: %v", err)
	}

	cfg, err := core.NewConfigFromEnv()
	if err != nil {
		log.Printf("config: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, otelService, logger, err := buildApp(ctx, cfg)
	if err != nil {
		log.Printf("failed to build app: %v", err)
		os.Exit(1)
	}
	defer otelService.Shutdown(context.Background(), logger)

	addr := fmt.Sprintf(":%d", cfg.Port)
	if err := runServer(ctx, app, addr); err != nil {
		logger.Error("server error", slog.Any("err", err))
	}
}

func buildApp(ctx context.Context, cfg core.Config) (*fiber.App, core.OtelService, *slog.Logger, error) {
	otelService := core.NewNoopOtelService()
	if !cfg.Otel.Disable {
		liveOtel, err := core.NewOtelService(ctx, &cfg)
		if err != nil {
			log.Printf("otel init failed, continuing without exporters: %v", err)
		} else {
			otelService = liveOtel
		}
	}

	logger := core.NewLoggerWithOtel(cfg, otelService)

	rdb := redis.NewClient(redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, logger)

	app, err := api.New(&api.Config{
		Otel:   otelService,
		Logger: logger,
		Redis:  rdb,
		Config: cfg,
	})
	if err != nil {
		return nil, nil, nil, err
	}

	return app, otelService, logger, nil
}

func runServer(ctx context.Context, app *fiber.App, addr string) error {
	srvErr := make(chan error, 1)

	go func() {
		srvErr <- app.Listen(addr)
	}()

	select {
	case err := <-srvErr:
		return err
	case <-ctx.Done():
	}

	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		return fmt.Errorf("error during shutdown: %w", err)
	}
	return nil
}
