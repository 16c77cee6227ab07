package usecase

import (
	"context"

	"taskpulse/internal/insight"
	"taskpulse/internal/insight/classify"
	"taskpulse/internal/model"
)

// Tasks returns the filtered task list for the requested window.
func (uc *implUseCase) Tasks(ctx context.Context, sc model.Scope, input insight.TasksInput) (insight.TasksOutput, error) {
	tasks, err := uc.snapshot(ctx, sc)
	if err != nil {
		return insight.TasksOutput{}, err
	}

	now := uc.now().In(uc.resolver.Location())

	rng, err := uc.resolveWindow(ctx, tasks, input, now)
	if err != nil {
		return insight.TasksOutput{}, err
	}

	return insight.TasksOutput{
		Range: rng,
		Tasks: classify.FilterByRange(tasks, rng),
	}, nil
}
