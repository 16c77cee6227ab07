package usecase

import (
	"context"

	"taskpulse/internal/insight"
	"taskpulse/internal/insight/classify"
	"taskpulse/internal/model"
)

// Overview resolves the requested window, filters the scope's tasks into
// it, and tallies status buckets.
func (uc *implUseCase) Overview(ctx context.Context, sc model.Scope, input insight.OverviewInput) (insight.OverviewOutput, error) {
	tasks, err := uc.snapshot(ctx, sc)
	if err != nil {
		return insight.OverviewOutput{}, err
	}

	now := uc.now().In(uc.resolver.Location())

	rng, err := uc.resolveWindow(ctx, tasks, input, now)
	if err != nil {
		return insight.OverviewOutput{}, err
	}

	filtered := classify.FilterByRange(tasks, rng)

	return insight.OverviewOutput{
		Range: rng,
		Tally: classify.Tally(filtered, now),
		Total: len(filtered),
	}, nil
}
