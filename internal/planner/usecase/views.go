package usecase

import (
	"context"
	"sort"

	"routine-planner/internal/model"
	"routine-planner/internal/planner"
	"routine-planner/pkg/timegrid"
)

// GetDaySchedule returns one day's slot map, generating the day from the
// template when it was never materialized.
func (uc *implUseCase) GetDaySchedule(ctx context.Context, sc model.Scope, date string) (model.DaySchedule, error) {
	unlock := uc.locks.acquire(sc.UserID)
	defer unlock()

	day, err := timegrid.ParseDate(date)
	if err != nil {
		return nil, planner.ErrMalformedSlotReference
	}
	return uc.ensureDay(ctx, sc.UserID, day)
}

// GetDailyPlan joins the occupied slots of one day with their tasks,
// ascending by time of day.
func (uc *implUseCase) GetDailyPlan(ctx context.Context, sc model.Scope, date string) (planner.DayPlanOutput, error) {
	unlock := uc.locks.acquire(sc.UserID)
	defer unlock()

	day, err := timegrid.ParseDate(date)
	if err != nil {
		return planner.DayPlanOutput{}, planner.ErrMalformedSlotReference
	}

	sched, err := uc.ensureDay(ctx, sc.UserID, day)
	if err != nil {
		return planner.DayPlanOutput{}, err
	}

	tasks, err := uc.tasks.List(ctx, sc.UserID)
	if err != nil {
		return planner.DayPlanOutput{}, err
	}

	out := planner.DayPlanOutput{Date: timegrid.DateString(day)}
	for tod, slot := range sched {
		if slot.Kind != model.SlotOccupied || slot.Task == "" {
			continue
		}
		entry := planner.PlanEntry{Time: tod, TaskID: slot.Task}
		if task, ok := tasks[slot.Task]; ok {
			entry.Name = task.Name
			entry.Priority = task.Priority
			entry.Notes = task.Notes
		}
		out.Entries = append(out.Entries, entry)
	}

	sort.Slice(out.Entries, func(i, j int) bool {
		return out.Entries[i].Time < out.Entries[j].Time
	})
	return out, nil
}

// ListTasks splits the user's tasks into active and overdue by deadline
// against today. Output is deadline-ascending within each group.
func (uc *implUseCase) ListTasks(ctx context.Context, sc model.Scope) (planner.TaskListOutput, error) {
	all, err := uc.tasks.List(ctx, sc.UserID)
	if err != nil {
		return planner.TaskListOutput{}, err
	}

	today := timegrid.DateString(uc.today())
	var out planner.TaskListOutput
	for _, task := range all {
		if task.Deadline < today {
			out.Overdue = append(out.Overdue, task)
		} else {
			out.Active = append(out.Active, task)
		}
	}

	byDeadline := func(tasks []model.Task) {
		sort.Slice(tasks, func(i, j int) bool {
			if tasks[i].Deadline != tasks[j].Deadline {
				return tasks[i].Deadline < tasks[j].Deadline
			}
			return tasks[i].ID < tasks[j].ID
		})
	}
	byDeadline(out.Active)
	byDeadline(out.Overdue)
	return out, nil
}
