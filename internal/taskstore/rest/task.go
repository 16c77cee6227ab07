package rest

import (
	"context"
	"encoding/json"
	"time"

	"taskpulse/internal/model"
)

// taskRecord is the upstream wire shape. All normalization — status label
// drift, assignee shape drift, timestamp parsing — happens here, at the
// fetch boundary, so the rest of the service only ever sees model.Task.
type taskRecord struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Status         string        `json:"status"`
	DueDate        string        `json:"dueDate"`
	CompletionDate string        `json:"completionDate"`
	AssignedUser   assigneeField `json:"assignedUser"`
}

// assigneeField tolerates the upstream's two shapes for assignedUser:
// a single user object or an array of them. Either way it normalizes to
// an ordered sequence of IDs.
type assigneeField []string

func (a *assigneeField) UnmarshalJSON(data []byte) error {
	type userRef struct {
		ID string `json:"id"`
	}

	var one userRef
	if err := json.Unmarshal(data, &one); err == nil && one.ID != "" {
		*a = assigneeField{one.ID}
		return nil
	}

	var many []userRef
	if err := json.Unmarshal(data, &many); err == nil {
		ids := make(assigneeField, 0, len(many))
		for _, u := range many {
			if u.ID != "" {
				ids = append(ids, u.ID)
			}
		}
		*a = ids
		return nil
	}

	// Unknown shape: leave empty rather than fail the whole record.
	*a = nil
	return nil
}

// toTasks maps wire records into model tasks. Records with an
// unrecognized status are dropped and logged; records with an unparseable
// due date are kept with the raw string so they still reach literal-status
// tallies.
func (r *Repository) toTasks(ctx context.Context, records []taskRecord) []model.Task {
	tasks := make([]model.Task, 0, len(records))
	for _, rec := range records {
		status, err := model.ParseStatus(rec.Status)
		if err != nil {
			r.l.Warnf(ctx, "dropping task %s: %v", rec.ID, err)
			continue
		}

		t := model.Task{
			ID:          rec.ID,
			Title:       rec.Title,
			Description: rec.Description,
			Status:      status,
			AssigneeIDs: rec.AssignedUser,
		}

		if due, err := parseTimestamp(rec.DueDate); err != nil {
			t.RawDueDate = rec.DueDate
			if rec.DueDate != "" {
				r.l.Warnf(ctx, "task %s has unparseable due date %q: %v", rec.ID, rec.DueDate, err)
			}
		} else {
			t.DueDate = due
		}

		if rec.CompletionDate != "" {
			if done, err := parseTimestamp(rec.CompletionDate); err != nil {
				r.l.Warnf(ctx, "task %s has unparseable completion date %q: %v", rec.ID, rec.CompletionDate, err)
			} else {
				t.CompletedAt = &done
			}
		}

		tasks = append(tasks, t)
	}
	return tasks
}

// Upstream timestamps are ISO-8601, sometimes date-only.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseTimestamp(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
