package taskstore

import (
	"context"

	"taskpulse/internal/model"
)

// Repository is the interface for upstream task data access. taskpulse is
// read-only: there is no create/update/delete surface here.
type Repository interface {
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
}
