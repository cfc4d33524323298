package routes

import (
	"log/slog"
	"time"

	"github.com/aiwhispererwvdp/Ai-Whisperers-Website-Courses-sub000/api/handlers"
	"github.com/aiwhispererwvdp/Ai-Whisperers-Website-Courses-sub000/api/middleware"
	"github.com/aiwhispererwvdp/Ai-Whisperers-Website-Courses-sub000/pkg/circuitbreaker"
	"github.com/aiwhispererwvdp/Ai-Whisperers-Website-Courses-sub000/pkg/core"
	"github.com/aiwhispererwvdp/Ai-Whisperers-Website-Courses-sub000/pkg/enrollment"
	"github.com/aiwhispererwvdp/Ai-Whisperers-Website-Courses-sub000/pkg/hubspot"
	"github.com/aiwhispererwvdp/Ai-Whisperers-Website-Courses-sub000/pkg/idempotency"
	"github.com/aiwhispererwvdp/Ai-Whisperers-Website-Courses-sub000/pkg/paypal"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const captureGuardTTL = 2 * time.Minute

func RegisterRoutes(app fiber.Router, cfg *core.Config, rdb *redis.Client, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Backend running!")
	})

	api := app.Group("/api")

	// Missing vendor credentials degrade to a nil service; the
	// handlers answer 500 "server misconfigured" instead of the
	// process refusing to boot.
	var pay paypal.PayPalService
	if cfg.PayPal.ClientID != "" && cfg.PayPal.ClientSecret != "" {
		var err error
		pay, err = paypal.New(&cfg.PayPal, paypal.Options{Logger: logger})
		if err != nil {
			logger.Error("failed to init paypal service", slog.Any("err", err))
		}
	} else {
		logger.Warn("paypal credentials missing; payment routes disabled")
	}

	var crm hubspot.HubSpotService
	if cfg.HubSpot.AccessToken != "" {
		var err error
		crm, err = hubspot.New(&cfg.HubSpot, hubspot.Options{Logger: logger})
		if err != nil {
			logger.Error("failed to init hubspot service", slog.Any("err", err))
		}
	} else {
		logger.Warn("hubspot access token missing; crm sync disabled")
	}

	granter := enrollment.NewLogAccessGranter(logger)
	enroller := hubspot.NewLogWorkflowEnroller(logger)
	guard := idempotency.NewGuard(rdb, "capture:", captureGuardTTL)

	withCB := middleware.WithCircuitBreaker(func(name string) *circuitbreaker.RedisBreaker {
		return circuitbreaker.NewRedisBreaker(
			rdb,
			name,
			circuitbreaker.DefaultOptions(),
		)
	})

	api.Post("/enrollment/prepare", handlers.PrepareEnrollmentHandler(enroller, logger))

	api.Post("/payment/create-order", withCB(handlers.CreateOrderHandler(cfg, pay, logger)))

	api.Post("/payment/capture-order", withCB(handlers.CaptureOrderHandler(handlers.CaptureDeps{
		PayPal:   pay,
		Granter:  granter,
		CRM:      crm,
		Enroller: enroller,
		Guard:    guard,
	}, logger)))

	dashboard := api.Group("/dashboard")

	if !cfg.SkipAuth {
		verifier, err := middleware.NewSessionVerifier(middleware.SessionConfig{
			Secret: cfg.Auth.Secret,
			Issuer: cfg.Auth.Issuer,
		})
		if err != nil {
			logger.Error("failed to init session verifier; dashboard locked", slog.Any("err", err))
			dashboard.Use(func(c *fiber.Ctx) error {
				return fiber.ErrUnauthorized
			})
		} else {
			dashboard.Use(verifier.FiberMiddleware())
		}
	}

	dashboard.Get("/courses", handlers.DashboardCoursesHandler(logger))
}
