package planner

import "routine-planner/internal/model"

// GenerateCalendarInput controls rolling-horizon calendar generation.
// StartDate defaults to today when empty; HorizonDays defaults to the
// configured horizon when zero.
type GenerateCalendarInput struct {
	StartDate   string `json:"start_date"`
	HorizonDays int    `json:"horizon_days"`
}

// GenerateCalendarOutput reports how many day schedules were newly created.
type GenerateCalendarOutput struct {
	DaysCreated int `json:"days_created"`
}

// CreateTaskInput is the fully-collected task descriptor produced by the
// dialogue layer.
type CreateTaskInput struct {
	Name              string         `json:"name"`
	Priority          model.Priority `json:"priority"`
	TimeRequiredHours float64        `json:"time_required"`
	Deadline          string         `json:"deadline"`
	Notes             string         `json:"notes"`
}

// AllocationResult describes the outcome of an automatic allocation. A
// shortfall is never silent: either NeedsConfirmation is set and nothing was
// assigned, or Residual carries the unmet block count after best-effort
// eviction.
type AllocationResult struct {
	TaskID            string           `json:"task_id"`
	FullySatisfied    bool             `json:"fully_satisfied"`
	AssignedCount     int              `json:"assigned_count"`
	Residual          int              `json:"residual"`
	NeedsConfirmation bool             `json:"needs_confirmation"`
	Evicted           []string         `json:"evicted,omitempty"`
	Blocks            []model.BlockRef `json:"blocks,omitempty"`
}

// SubmitBlockInput is one manually picked slot.
type SubmitBlockInput struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// ManualResult reports the state of a manual selection session after a
// submission.
type ManualResult struct {
	TaskID    string           `json:"task_id"`
	Remaining int              `json:"remaining"`
	Selected  []model.BlockRef `json:"selected"`
	Completed bool             `json:"completed"`
}

// PlanEntry is one occupied slot of a day joined with its task.
type PlanEntry struct {
	Time     string         `json:"time"`
	TaskID   string         `json:"task_id"`
	Name     string         `json:"name"`
	Priority model.Priority `json:"priority"`
	Notes    string         `json:"notes,omitempty"`
}

// DayPlanOutput is the occupied portion of one day in time order.
type DayPlanOutput struct {
	Date    string      `json:"date"`
	Entries []PlanEntry `json:"entries"`
}

// TaskListOutput splits a user's tasks by deadline against today.
type TaskListOutput struct {
	Active  []model.Task `json:"active"`
	Overdue []model.Task `json:"overdue"`
}
