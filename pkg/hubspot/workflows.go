package hubspot

import (
	"context"
	"log/slog"
)

// WorkflowEnroller applies the sequence/task actions produced by
// DetermineLeadActions. The CRM workflow API is not wired up yet, so
// the default implementation records intent and nothing else.
type WorkflowEnroller interface {
	Apply(ctx context.Context, email string, tier string, actions []LeadAction) error
}

type logEnroller struct {
	logger *slog.Logger
}

func NewLogWorkflowEnroller(logger *slog.Logger) WorkflowEnroller {
	if logger == nil {
		logger = slog.Default()
	}

	return &logEnroller{
		logger: logger.With(
			slog.String("component", "crm"),
			slog.String("vendor", "hubspot"),
		),
	}
}

func (e *logEnroller) Apply(ctx context.Context, email string, tier string, actions []LeadAction) error {
	for _, action := range actions {
		e.logger.InfoContext(ctx, "crm workflow action",
			slog.String("email", email),
			slog.String("tier", tier),
			slog.String("type", action.Type),
			slog.String("name", action.Name),
			slog.String("detail", action.Detail),
		)
	}

	return nil
}
