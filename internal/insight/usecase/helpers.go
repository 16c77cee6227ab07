package usecase

import (
	"context"
	"fmt"
	"time"

	"taskpulse/internal/insight"
	"taskpulse/internal/model"
	"taskpulse/internal/taskstore"
	"taskpulse/pkg/daterange"
)

// snapshot returns the scope's task collection, served from the expiring
// cache when possible so one resolve+filter+tally sequence always works
// on a consistent snapshot.
func (uc *implUseCase) snapshot(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	key := string(sc.View) + "/" + sc.UserID

	if tasks, ok := uc.snapshots.Get(key); ok {
		return tasks, nil
	}

	tasks, err := uc.repo.ListTasks(ctx, taskstore.ListTasksOptions{
		View:   sc.View,
		UserID: sc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.snapshot ListTasks: %v", err)
		return nil, fmt.Errorf("%w: %v", insight.ErrUpstreamUnavailable, err)
	}

	uc.snapshots.Add(key, tasks)
	return tasks, nil
}

// resolveWindow turns the request's token into concrete bounds. Unknown
// tokens fall back to the default window with a warning; missing custom
// bounds propagate so the caller can prompt for the picker input.
func (uc *implUseCase) resolveWindow(ctx context.Context, tasks []model.Task, input insight.OverviewInput, now time.Time) (daterange.Range, error) {
	if input.Token == "" {
		return daterange.Range{}, insight.ErrEmptyToken
	}

	opt := daterange.Options{
		CustomStart: input.CustomStart,
		CustomEnd:   input.CustomEnd,
	}
	if input.DataDrivenAllTime && input.Token == daterange.TokenAllTime {
		opt.ReferenceDueDates = dueDates(tasks)
	}

	rng, err := uc.resolver.ResolveOrDefault(input.Token, now, opt)
	switch {
	case err == nil:
		return rng, nil
	case rng.IsZero():
		return daterange.Range{}, err
	default:
		uc.l.Warnf(ctx, "falling back to %q window: %v", rng.Label, err)
		return rng, nil
	}
}

func dueDates(tasks []model.Task) []time.Time {
	out := make([]time.Time, 0, len(tasks))
	for _, t := range tasks {
		if t.HasDueDate() {
			out = append(out, t.DueDate)
		}
	}
	return out
}
