package http

import (
	"time"

	"taskpulse/internal/insight"
	"taskpulse/internal/insight/classify"
	"taskpulse/internal/model"
	"taskpulse/pkg/daterange"
)

// --- Request DTOs ---

type insightReq struct {
	Range         string `form:"range"           binding:"required"`
	StartDate     string `form:"start_date"`
	EndDate       string `form:"end_date"`
	View          string `form:"view"            binding:"omitempty,oneof=mine delegated all"`
	UserID        string `form:"user_id"`
	AnchorAllTime bool   `form:"anchor_all_time"`

	// parsed during validation
	customStart *time.Time
	customEnd   *time.Time
}

const pickerDateLayout = "2006-01-02"

func (r *insightReq) validate() error {
	if r.StartDate != "" {
		t, err := time.Parse(pickerDateLayout, r.StartDate)
		if err != nil {
			return errBadPickerDate
		}
		r.customStart = &t
	}
	if r.EndDate != "" {
		t, err := time.Parse(pickerDateLayout, r.EndDate)
		if err != nil {
			return errBadPickerDate
		}
		r.customEnd = &t
	}
	return nil
}

func (r *insightReq) toInput() insight.OverviewInput {
	return insight.OverviewInput{
		Token:             daterange.Token(r.Range),
		CustomStart:       r.customStart,
		CustomEnd:         r.customEnd,
		DataDrivenAllTime: r.AnchorAllTime,
	}
}

func (r *insightReq) toScope() model.Scope {
	view := model.View(r.View)
	if view == "" {
		view = model.ViewAll
	}
	return model.Scope{
		UserID: r.UserID,
		View:   view,
	}
}

// --- Response DTOs ---

type rangeResp struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

func newRangeResp(r daterange.Range) rangeResp {
	return rangeResp{
		Start: r.Start,
		End:   r.End,
		Label: string(r.Label),
	}
}

type tallyResp struct {
	Overdue    int `json:"overdue"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	InTime     int `json:"in_time"`
	Delayed    int `json:"delayed"`
	Today      int `json:"today"`
}

func newTallyResp(t classify.StatusTally) tallyResp {
	return tallyResp{
		Overdue:    t.Overdue,
		Pending:    t.Pending,
		InProgress: t.InProgress,
		Completed:  t.Completed,
		InTime:     t.InTime,
		Delayed:    t.Delayed,
		Today:      t.Today,
	}
}

type overviewResp struct {
	Range rangeResp `json:"range"`
	Tally tallyResp `json:"tally"`
	Total int       `json:"total"`
}

func (h *handler) newOverviewResp(out insight.OverviewOutput) overviewResp {
	return overviewResp{
		Range: newRangeResp(out.Range),
		Tally: newTallyResp(out.Tally),
		Total: out.Total,
	}
}

type taskResp struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	AssigneeIDs []string   `json:"assignee_ids,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		CompletedAt: t.CompletedAt,
		AssigneeIDs: t.AssigneeIDs,
	}
	if t.HasDueDate() {
		due := t.DueDate
		resp.DueDate = &due
	}
	return resp
}

type tasksResp struct {
	Range rangeResp  `json:"range"`
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newTasksResp(out insight.TasksOutput) tasksResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return tasksResp{
		Range: newRangeResp(out.Range),
		Tasks: tasks,
		Total: len(tasks),
	}
}
