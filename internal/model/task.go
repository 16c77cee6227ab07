package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Status is the canonical task status set. Upstream data arrives with
// drifting labels ("In Progress", "in-progress", "INPROGRESS"); the fetch
// boundary normalizes into this set so nothing downstream ever matches on
// raw strings.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "InProgress"
	StatusCompleted  Status = "Completed"
)

// ErrUnknownStatus means an upstream status label could not be mapped into
// the canonical set.
var ErrUnknownStatus = errors.New("unknown task status")

// ParseStatus normalizes an upstream status label into the canonical set.
func ParseStatus(raw string) (Status, error) {
	key := strings.ToLower(raw)
	key = strings.ReplaceAll(key, " ", "")
	key = strings.ReplaceAll(key, "-", "")
	key = strings.ReplaceAll(key, "_", "")

	switch key {
	case "pending":
		return StatusPending, nil
	case "inprogress":
		return StatusInProgress, nil
	case "completed", "complete", "done":
		return StatusCompleted, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
}

// Task is a task record as seen by this service. Records are read-only
// here: taskpulse reports on tasks, it never mutates them.
type Task struct {
	ID          string
	Title       string
	Description string
	Status      Status
	DueDate     time.Time  // zero when the upstream timestamp failed to parse
	RawDueDate  string     // upstream string kept for logging on parse failure
	CompletedAt *time.Time // set only once the task reached StatusCompleted
	AssigneeIDs []string   // normalized to a sequence at the fetch boundary
}

// HasDueDate reports whether the task carries a parseable due date.
// Tasks without one stay out of date-dependent classification but still
// count toward their literal status bucket.
func (t Task) HasDueDate() bool {
	return !t.DueDate.IsZero()
}
