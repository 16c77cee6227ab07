package insight

import (
	"context"

	"taskpulse/internal/model"
)

// UseCase defines the business logic interface for the insight domain.
type UseCase interface {
	// Overview resolves the requested window, filters the scope's tasks
	// into it, and returns the status tally.
	Overview(ctx context.Context, sc model.Scope, input OverviewInput) (OverviewOutput, error)

	// Tasks returns the filtered task list for the requested window, for
	// screens that render lists rather than count badges.
	Tasks(ctx context.Context, sc model.Scope, input TasksInput) (TasksOutput, error)
}
