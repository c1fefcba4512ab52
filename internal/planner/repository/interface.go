package repository

import (
	"context"

	"routine-planner/internal/model"
)

// SlotRepository is the contract for the per-user slot calendar store,
// keyed by userID/date/timeOfDay.
type SlotRepository interface {
	// GetDay reads one day schedule. found is false when the date has never
	// been generated.
	GetDay(ctx context.Context, userID, date string) (sched model.DaySchedule, found bool, err error)

	// SetDay writes a full day schedule.
	SetDay(ctx context.Context, userID, date string, sched model.DaySchedule) error

	// UpdateSlot merges the given fields into a single slot without
	// clobbering sibling fields.
	UpdateSlot(ctx context.Context, userID, date, timeOfDay string, fields UpdateSlotFields) error
}

// TaskRepository is the contract for the per-user task store, keyed by
// userID/taskID.
type TaskRepository interface {
	// Create persists a new task and returns its store-assigned ID.
	Create(ctx context.Context, userID string, task model.Task) (string, error)

	// Get reads one task. found is false when the task does not exist.
	Get(ctx context.Context, userID, taskID string) (task model.Task, found bool, err error)

	// List returns every task of the user keyed by ID.
	List(ctx context.Context, userID string) (map[string]model.Task, error)

	// UpdateBlocks replaces the task's assigned blocks wholesale.
	UpdateBlocks(ctx context.Context, userID, taskID string, blocks []model.BlockRef) error

	// UpdateCalendarEvents replaces the task's mirrored calendar event IDs.
	UpdateCalendarEvents(ctx context.Context, userID, taskID string, eventIDs []string) error

	// Delete removes the task.
	Delete(ctx context.Context, userID, taskID string) error
}
