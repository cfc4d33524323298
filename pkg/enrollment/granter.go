package enrollment

import (
	"context"
	"log/slog"
)

type GrantRequest struct {
	// Exactly one of CourseID / BundleID is set by the caller.
	CourseID string
	BundleID string
	// Component course ids the grant covers (bundle already expanded).
	CourseIDs []string
	Email     string
}

type GrantResult struct {
	CourseAccess []string `json:"courseAccess"`
	Message      string   `json:"message"`
}

// AccessGranter hands out course access after a completed capture.
// There is no student-account store yet, so the default implementation
// only records intent; the interface is the seam a real LMS hookup
// will fill in.
type AccessGranter interface {
	Grant(ctx context.Context, req GrantRequest) (GrantResult, error)
}

type logGranter struct {
	logger *slog.Logger
}

func NewLogAccessGranter(logger *slog.Logger) AccessGranter {
	if logger == nil {
		logger = slog.Default()
	}

	return &logGranter{
		logger: logger.With(slog.String("component", "enrollment")),
	}
}

func (g *logGranter) Grant(ctx context.Context, req GrantRequest) (GrantResult, error) {
	g.logger.InfoContext(ctx, "granting course access",
		slog.String("email", req.Email),
		slog.String("course_id", req.CourseID),
		slog.String("bundle_id", req.BundleID),
		slog.Any("course_access", req.CourseIDs),
	)

	return GrantResult{
		CourseAccess: req.CourseIDs,
		Message:      "Course access granted. Check your email for login instructions.",
	}, nil
}
