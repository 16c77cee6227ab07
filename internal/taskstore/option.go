package taskstore

import "taskpulse/internal/model"

// ListTasksOptions holds the parameters for listing tasks from the
// upstream API. Ownership filtering happens upstream: the view and user
// are forwarded as query parameters, never re-applied locally.
type ListTasksOptions struct {
	View   model.View
	UserID string
}
