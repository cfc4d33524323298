package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aiwhispererwvdp/Ai-Whisperers-Website-Courses-sub000/pkg/catalog"
	"github.com/aiwhispererwvdp/Ai-Whisperers-Website-Courses-sub000/pkg/core"
	"github.com/aiwhispererwvdp/Ai-Whisperers-Website-Courses-sub000/pkg/paypal"
	"github.com/gofiber/fiber/v2"
)

type createOrderRequest struct {
	CourseID string   `json:"courseId"`
	BundleID string   `json:"bundleId"`
	Price    *float64 `json:"price"`
	Title    string   `json:"title"`
}

// CreateOrderHandler resolves the selection against the static catalog
// and asks PayPal for an order. The total always comes from catalog
// prices; the client-sent price is only checked for presence.
func CreateOrderHandler(cfg *core.Config, pay paypal.PayPalService, logger *slog.Logger) fiber.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(slog.String("handler", "CreateOrderHandler"))

	return func(c *fiber.Ctx) error {
		if cfg == nil || pay == nil {
			logger.Error("missing config or paypal service")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "server misconfigured",
			})
		}

		var req createOrderRequest
		if err := c.BodyParser(&req); err != nil {
			logger.Error("failed to parse create-order request", slog.Any("err", err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": internalErrorMessage,
			})
		}

		if req.Price == nil || req.Title == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Price and title are required",
			})
		}

		items, errMsg := resolveItems(req.CourseID, req.BundleID)
		if errMsg != "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": errMsg,
			})
		}

		total := 0.0
		for _, item := range items {
			var unit float64
			_, _ = fmt.Sscanf(item.UnitAmount.Value, "%f", &unit)
			total += unit
		}

		order, err := pay.CreateOrder(c.Context(), paypal.CreateOrderParams{
			Total:     fmt.Sprintf("%.2f", total),
			Currency:  "USD",
			Items:     items,
			ReturnURL: cfg.BaseURL + "/checkout/success",
			CancelURL: cfg.BaseURL + "/checkout/cancel",
		})
		if err != nil {
			var apiErr *paypal.APIError
			if errors.As(err, &apiErr) {
				return c.Status(apiErr.StatusCode).JSON(fiber.Map{
					"error":   "Failed to create PayPal order",
					"details": json.RawMessage(apiErr.Body),
				})
			}

			logger.Error("create order failed", slog.Any("err", err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": internalErrorMessage,
			})
		}

		logger.InfoContext(c.Context(), "paypal order created",
			slog.String("order_id", order.ID),
			slog.String("status", order.Status),
		)

		// provider order object passes through verbatim
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Status(fiber.StatusOK).Send(order.Raw)
	}
}

func resolveItems(courseID, bundleID string) ([]paypal.Item, string) {
	switch {
	case courseID != "":
		course, ok := catalog.GetCourse(courseID)
		if !ok {
			return nil, "Invalid course ID"
		}
		return []paypal.Item{courseItem(course)}, ""

	case bundleID != "":
		bundle, ok := catalog.GetBundle(bundleID)
		if !ok {
			return nil, "Invalid bundle ID"
		}
		return []paypal.Item{
			{
				Name:        bundle.Title,
				Description: fmt.Sprintf("Bundle of %d courses", len(bundle.CourseIDs)),
				UnitAmount:  usd(bundle.Price),
				Quantity:    "1",
				Category:    "DIGITAL_GOODS",
			},
		}, ""

	default:
		return nil, "Either courseId or bundleId must be provided"
	}
}

func courseItem(course catalog.Course) paypal.Item {
	return paypal.Item{
		Name:        course.Title,
		Description: course.Description,
		UnitAmount:  usd(course.Price),
		Quantity:    "1",
		Category:    "DIGITAL_GOODS",
	}
}

func usd(amount float64) paypal.Money {
	return paypal.Money{
		CurrencyCode: "USD",
		Value:        fmt.Sprintf("%.2f", amount),
	}
}
