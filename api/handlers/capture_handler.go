package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/aiwhispererwvdp/Ai-Whisperers-Website-Courses-sub000/pkg/catalog"
	"github.com/aiwhispererwvdp/Ai-Whisperers-Website-Courses-sub000/pkg/enrollment"
	"github.com/aiwhispererwvdp/Ai-Whisperers-Website-Courses-sub000/pkg/hubspot"
	"github.com/aiwhispererwvdp/Ai-Whisperers-Website-Courses-sub000/pkg/idempotency"
	"github.com/aiwhispererwvdp/Ai-Whisperers-Website-Courses-sub000/pkg/paypal"
	"github.com/gofiber/fiber/v2"
)

type captureOrderRequest struct {
	OrderID  string `json:"orderId"`
	CourseID string `json:"courseId"`
	BundleID string `json:"bundleId"`
}

// CaptureDeps are the collaborators the capture flow touches after the
// money moves. CRM and WorkflowEnroller are optional; their failures
// never fail the request since the payment is already captured.
type CaptureDeps struct {
	PayPal   paypal.PayPalService
	Granter  enrollment.AccessGranter
	CRM      hubspot.HubSpotService
	Enroller hubspot.WorkflowEnroller
	Guard    *idempotency.Guard
}

// CaptureOrderHandler finalizes payment for an approved order and
// grants course access.
func CaptureOrderHandler(deps CaptureDeps, logger *slog.Logger) fiber.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(slog.String("handler", "CaptureOrderHandler"))

	return func(c *fiber.Ctx) error {
		if deps.PayPal == nil || deps.Granter == nil {
			logger.Error("missing paypal service or access granter")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "server misconfigured",
			})
		}

		var req captureOrderRequest
		if err := c.BodyParser(&req); err != nil {
			logger.Error("failed to parse capture request", slog.Any("err", err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": internalErrorMessage,
			})
		}

		if strings.TrimSpace(req.OrderID) == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Order ID is required",
			})
		}

		// one capture per order id at a time
		if deps.Guard != nil {
			release, err := deps.Guard.Begin(c.Context(), req.OrderID)
			if err != nil {
				if errors.Is(err, idempotency.ErrInFlight) {
					return c.Status(fiber.StatusConflict).JSON(fiber.Map{
						"error": "Capture already in progress for this order",
					})
				}
			} else {
				// release on failure so the client can retry; a
				// successful capture keeps the claim until it expires
				defer func() {
					if c.Response().StatusCode() != fiber.StatusOK {
						release()
					}
				}()
			}
		}

		captureData, err := deps.PayPal.CaptureOrder(c.Context(), req.OrderID)
		if err != nil {
			var apiErr *paypal.APIError
			if errors.As(err, &apiErr) {
				return c.Status(apiErr.StatusCode).JSON(fiber.Map{
					"error":   "Failed to capture PayPal order",
					"details": json.RawMessage(apiErr.Body),
				})
			}

			logger.Error("capture order failed", slog.Any("err", err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": internalErrorMessage,
			})
		}

		if captureData.Status != "COMPLETED" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":  "Payment not completed",
				"status": captureData.Status,
			})
		}

		payerEmail := captureData.Payer.EmailAddress
		payerName := strings.TrimSpace(
			captureData.Payer.Name.GivenName + " " + captureData.Payer.Name.Surname,
		)

		grant, err := deps.Granter.Grant(c.Context(), enrollment.GrantRequest{
			CourseID:  req.CourseID,
			BundleID:  req.BundleID,
			CourseIDs: grantedCourses(req.CourseID, req.BundleID),
			Email:     payerEmail,
		})
		if err != nil {
			logger.Error("course access grant failed after capture",
				slog.String("order_id", req.OrderID),
				slog.Any("err", err),
			)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Payment was received but enrollment could not be completed. Our support team will contact you shortly.",
			})
		}

		syncContactToCRM(c, deps, payerEmail, payerName, req.CourseID, req.BundleID, logger)

		transactionID := captureData.TransactionID()

		// transaction record for reconciliation
		logger.InfoContext(c.Context(), "payment captured",
			slog.String("order_id", req.OrderID),
			slog.String("transaction_id", transactionID),
			slog.String("email", payerEmail),
			slog.Any("course_access", grant.CourseAccess),
		)

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success":       true,
			"orderId":       req.OrderID,
			"transactionId": transactionID,
			"customer": fiber.Map{
				"email": payerEmail,
				"name":  payerName,
			},
			"enrollment": grant,
			"message":    "Payment completed and course access granted.",
		})
	}
}

func grantedCourses(courseID, bundleID string) []string {
	if bundleID != "" {
		if ids, ok := catalog.ExpandBundle(bundleID); ok {
			return ids
		}
	}

	if courseID != "" {
		return []string{courseID}
	}

	return nil
}

// interest tier for lead scoring, derived from what was purchased
func interestFor(courseID, bundleID string) string {
	switch bundleID {
	case "technical-track":
		return "technical"
	case "business-track":
		return "business"
	case "complete-journey":
		return "technical"
	}

	switch courseID {
	case "applied-ai", "ai-web-development":
		return "technical"
	case "enterprise-ai":
		return "business"
	case "ai-foundations":
		return "personal"
	}

	return ""
}

func syncContactToCRM(c *fiber.Ctx, deps CaptureDeps, email, name, courseID, bundleID string, logger *slog.Logger) {
	if deps.CRM == nil || email == "" {
		return
	}

	first, last := splitName(name)

	criteria := hubspot.LeadCriteria{
		Interest: interestFor(courseID, bundleID),
	}
	score := hubspot.CalculateLeadScore(criteria)

	_, err := deps.CRM.CreateOrUpdateContact(c.Context(), hubspot.Contact{
		Email:     email,
		FirstName: first,
		LastName:  last,
		Interest:  criteria.Interest,
		LeadScore: score,
	})
	if err != nil {
		// money already moved; CRM sync is best effort
		logger.Warn("crm contact sync failed", slog.Any("err", err))
		return
	}

	if deps.Enroller != nil {
		tier, actions := hubspot.DetermineLeadActions(score, criteria)
		_ = deps.Enroller.Apply(c.Context(), email, tier, actions)
	}
}

func splitName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	first = parts[0]
	if len(parts) > 1 {
		last = strings.Join(parts[1:], " ")
	}
	return first, last
}
