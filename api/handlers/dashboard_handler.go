package handlers

import (
	"log/slog"

	"github.com/aiwhispererwvdp/Ai-Whisperers-Website-Courses-sub000/pkg/catalog"
	"github.com/gofiber/fiber/v2"
)

// DashboardCoursesHandler returns catalog details for the course ids
// carried in the student's session token. Identity comes from the
// session middleware via request locals.
func DashboardCoursesHandler(logger *slog.Logger) fiber.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(slog.String("handler", "DashboardCoursesHandler"))

	return func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)

		courses := make([]catalog.Course, 0)
		for _, id := range claimedCourses(c.Locals("courses")) {
			if course, ok := catalog.GetCourse(id); ok {
				courses = append(courses, course)
			}
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"email":   email,
			"courses": courses,
		})
	}
}

// claimedCourses normalizes the "courses" claim, which arrives as
// []interface{} from the JWT library.
func claimedCourses(raw any) []string {
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
