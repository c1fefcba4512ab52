package planner

import (
	"context"

	"routine-planner/internal/model"
)

// UseCase defines the slot allocation engine's operations. Every operation
// that reads a day schedule and later writes a slot decision runs under a
// per-user mutual exclusion scope inside the implementation.
type UseCase interface {
	// GenerateCalendar materializes day schedules over the horizon,
	// idempotently: dates already present are left byte-for-byte unchanged.
	GenerateCalendar(ctx context.Context, sc model.Scope, input GenerateCalendarInput) (GenerateCalendarOutput, error)

	// CreateTask validates and persists a task. Allocation is a separate step.
	CreateTask(ctx context.Context, sc model.Scope, input CreateTaskInput) (model.Task, error)

	// AllocateAuto greedily assigns free slots from today up to the task's
	// deadline. On shortfall the configured policy decides between asking for
	// confirmation and evicting lower-priority tasks.
	AllocateAuto(ctx context.Context, sc model.Scope, taskID string) (AllocationResult, error)

	// ConfirmAllocation runs the eviction branch for a task whose automatic
	// allocation previously requested confirmation.
	ConfirmAllocation(ctx context.Context, sc model.Scope, taskID string) (AllocationResult, error)

	// StartManual opens an interactive slot selection session for the task.
	StartManual(ctx context.Context, sc model.Scope, taskID string) (ManualResult, error)

	// SubmitBlock validates and records one manually picked slot. When the
	// last required block is accepted the selection is committed.
	SubmitBlock(ctx context.Context, sc model.Scope, input SubmitBlockInput) (ManualResult, error)

	// CancelManual drops the user's manual selection session, if any.
	CancelManual(ctx context.Context, sc model.Scope) error

	// DeleteTask releases every slot the task holds, then removes the task.
	DeleteTask(ctx context.Context, sc model.Scope, taskID string) error

	// GetDaySchedule returns one day's slot map, generating it on demand.
	GetDaySchedule(ctx context.Context, sc model.Scope, date string) (model.DaySchedule, error)

	// GetDailyPlan returns the occupied slots of a day joined with tasks.
	GetDailyPlan(ctx context.Context, sc model.Scope, date string) (DayPlanOutput, error)

	// ListTasks returns the user's tasks split into active and overdue.
	ListTasks(ctx context.Context, sc model.Scope) (TaskListOutput, error)
}
