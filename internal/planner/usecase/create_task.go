package usecase

import (
	"context"
	"strings"

	"routine-planner/internal/model"
	"routine-planner/internal/planner"
	"routine-planner/pkg/timegrid"
)

const maxTaskNameLen = 100

// CreateTask validates the fully-collected descriptor and persists the task.
// Validation failures are reported to the caller for re-entry; nothing is
// stored in that case.
func (uc *implUseCase) CreateTask(ctx context.Context, sc model.Scope, input planner.CreateTaskInput) (model.Task, error) {
	name := strings.TrimSpace(input.Name)
	if len([]rune(name)) > maxTaskNameLen {
		return model.Task{}, planner.ErrNameTooLong
	}
	if !input.Priority.Valid() {
		return model.Task{}, planner.ErrInvalidPriority
	}
	if input.TimeRequiredHours <= 0 {
		return model.Task{}, planner.ErrInvalidDuration
	}

	deadline, err := uc.parseDate(input.Deadline)
	if err != nil {
		return model.Task{}, planner.ErrInvalidDeadlineFormat
	}
	if deadline.Before(uc.today()) {
		return model.Task{}, planner.ErrPastDeadline
	}

	task := model.Task{
		Name:              name,
		Priority:          input.Priority,
		TimeRequiredHours: input.TimeRequiredHours,
		Deadline:          timegrid.DateString(deadline),
		Notes:             strings.TrimSpace(input.Notes),
		CreatedAt:         uc.cfg.Clock().In(uc.loc),
	}

	id, err := uc.tasks.Create(ctx, sc.UserID, task)
	if err != nil {
		return model.Task{}, err
	}
	task.ID = id

	uc.l.Infof(ctx, "task: created %q (%s, %.1fh, due %s) for %s", task.Name, task.Priority, task.TimeRequiredHours, task.Deadline, sc.UserID)
	return task, nil
}
