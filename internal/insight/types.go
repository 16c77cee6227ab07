package insight

import (
	"time"

	"taskpulse/internal/insight/classify"
	"taskpulse/internal/model"
	"taskpulse/pkg/daterange"
)

// OverviewInput selects the window to report on.
type OverviewInput struct {
	Token       daterange.Token
	CustomStart *time.Time // required with TokenCustom
	CustomEnd   *time.Time // required with TokenCustom

	// DataDrivenAllTime anchors TokenAllTime to the min/max due dates of
	// the fetched tasks instead of the fixed sentinel window.
	DataDrivenAllTime bool
}

// OverviewOutput is the tally plus the window it was computed over.
type OverviewOutput struct {
	Range daterange.Range
	Tally classify.StatusTally
	Total int // tasks inside the window
}

// TasksInput mirrors OverviewInput for list-style screens.
type TasksInput = OverviewInput

// TasksOutput is the filtered task list plus its window.
type TasksOutput struct {
	Range daterange.Range
	Tasks []model.Task
}
