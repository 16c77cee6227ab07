// Package classify holds the pure task classification engine: date-window
// filtering and multi-bucket status tallying. Both operations are
// stateless, never mutate their inputs, and are safe to call from any
// number of goroutines.
package classify

import (
	"time"

	"taskpulse/internal/model"
	"taskpulse/pkg/daterange"
)

// StatusTally maps status buckets to counts. Buckets overlap on purpose:
// a task completed after its deadline counts in both Completed and
// Delayed, and a task due today that is already overdue counts in both
// Today and Overdue. The bucket sum therefore need not equal the task
// count.
type StatusTally struct {
	Overdue    int `json:"overdue"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	InTime     int `json:"in_time"`
	Delayed    int `json:"delayed"`
	Today      int `json:"today"`
}

// FilterByRange keeps tasks whose due date falls inside [r.Start, r.End).
// Half-open on purpose: a task due exactly on a boundary shared by two
// adjacent windows lands in exactly one of them.
//
// A degenerate range passes everything through, and tasks without a
// parseable due date are kept so they can still reach the literal-status
// tally downstream. The input slice is never mutated.
func FilterByRange(tasks []model.Task, r daterange.Range) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	if r.IsZero() {
		return append(out, tasks...)
	}

	for _, t := range tasks {
		if !t.HasDueDate() {
			out = append(out, t)
			continue
		}
		if t.DueDate.Before(r.Start) || !t.DueDate.Before(r.End) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Tally classifies tasks into status buckets in a single pass.
// now is injected, never read from the clock, and calendar-day equality
// for the Today bucket uses now's location.
//
// Per-task rules:
//   - overdue: due date passed and not completed; completion suppresses
//     Overdue regardless of dates
//   - in time / delayed: completed tasks only, judged by completion
//     timestamp against the due date; no completion timestamp, neither
//   - literal status bucket: exactly one increment per task
//   - today: due date on the same calendar day as now
//
// Tasks whose due date failed to parse upstream skip every date-dependent
// bucket but still count toward their literal status. Iteration order
// never matters: buckets only accumulate.
func Tally(tasks []model.Task, now time.Time) StatusTally {
	var tally StatusTally

	for _, t := range tasks {
		dated := t.HasDueDate()

		if dated && t.DueDate.Before(now) && t.Status != model.StatusCompleted {
			tally.Overdue++
		}

		if dated && t.Status == model.StatusCompleted && t.CompletedAt != nil {
			if t.CompletedAt.After(t.DueDate) {
				tally.Delayed++
			} else {
				tally.InTime++
			}
		}

		switch t.Status {
		case model.StatusPending:
			tally.Pending++
		case model.StatusInProgress:
			tally.InProgress++
		case model.StatusCompleted:
			tally.Completed++
		}

		if dated && sameDay(t.DueDate, now) {
			tally.Today++
		}
	}

	return tally
}

func sameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
