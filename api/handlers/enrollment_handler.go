package handlers

import (
	"log/slog"

	"github.com/aiwhispererwvdp/Ai-Whisperers-Website-Courses-sub000/pkg/enrollment"
	"github.com/aiwhispererwvdp/Ai-Whisperers-Website-Courses-sub000/pkg/hubspot"
	"github.com/gofiber/fiber/v2"
)

const internalErrorMessage = "Internal server error. Please try again later."

type prepareEnrollmentRequest struct {
	StudentInfo enrollment.StudentInfo `json:"studentInfo"`
	CourseID    string                 `json:"courseId"`
}

// PrepareEnrollmentHandler validates the enrollment form and hands the
// client a short-lived session descriptor to carry into the payment
// step. Nothing is persisted.
func PrepareEnrollmentHandler(enroller hubspot.WorkflowEnroller, logger *slog.Logger) fiber.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(slog.String("handler", "PrepareEnrollmentHandler"))

	return func(c *fiber.Ctx) error {
		var req prepareEnrollmentRequest
		if err := c.BodyParser(&req); err != nil {
			logger.Error("failed to parse enrollment request", slog.Any("err", err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": internalErrorMessage,
			})
		}

		if err := enrollment.Validate(req.StudentInfo, req.CourseID); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		session := enrollment.NewSession(req.StudentInfo, req.CourseID)

		// analytics record for the funnel dashboard
		logger.InfoContext(c.Context(), "enrollment prepared",
			slog.String("session_id", session.SessionID),
			slog.String("course_id", session.CourseID),
			slog.String("email", req.StudentInfo.Email),
			slog.String("experience", req.StudentInfo.Experience),
		)

		if req.StudentInfo.MarketingConsent && enroller != nil {
			_ = enroller.Apply(c.Context(), req.StudentInfo.Email, hubspot.TierNew, []hubspot.LeadAction{
				{Type: hubspot.ActionEnrollSequence, Name: "marketing-list", Detail: "Consented at enrollment"},
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success":   true,
			"sessionId": session.SessionID,
			"message":   "Enrollment session created. Continue to payment.",
			"nextStep":  "payment",
		})
	}
}
