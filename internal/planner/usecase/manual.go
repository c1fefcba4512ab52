package usecase

import (
	"context"

	"routine-planner/internal/model"
	"routine-planner/internal/planner"
	"routine-planner/pkg/timegrid"
)

// StartManual opens an interactive slot selection session for the task.
// Any previous session of the user is replaced.
func (uc *implUseCase) StartManual(ctx context.Context, sc model.Scope, taskID string) (planner.ManualResult, error) {
	unlock := uc.locks.acquire(sc.UserID)
	defer unlock()

	task, found, err := uc.tasks.Get(ctx, sc.UserID, taskID)
	if err != nil {
		return planner.ManualResult{}, err
	}
	if !found {
		return planner.ManualResult{}, planner.ErrTaskNotFound
	}

	sess := &manualSession{
		TaskID:       taskID,
		BlocksNeeded: task.NeededBlocks(),
	}
	uc.sessions.put(sc.UserID, sess)

	uc.l.Infof(ctx, "manual: selection started for task %s, %d block(s) needed", taskID, sess.BlocksNeeded)
	return planner.ManualResult{TaskID: taskID, Remaining: sess.BlocksNeeded}, nil
}

// SubmitBlock validates one picked slot. A rejected submission leaves the
// session untouched so the caller can retry without losing the blocks
// already selected. Accepting the last required block commits the whole
// selection and clears the session.
func (uc *implUseCase) SubmitBlock(ctx context.Context, sc model.Scope, input planner.SubmitBlockInput) (planner.ManualResult, error) {
	unlock := uc.locks.acquire(sc.UserID)
	defer unlock()

	sess, ok := uc.sessions.get(sc.UserID)
	if !ok {
		return planner.ManualResult{}, planner.ErrNoManualSession
	}

	if _, err := timegrid.ParseDate(input.Date); err != nil {
		uc.metrics.IncManualSubmission("malformed")
		return planner.ManualResult{}, planner.ErrMalformedSlotReference
	}
	if !timegrid.ValidTimeOfDay(input.Time) {
		uc.metrics.IncManualSubmission("malformed")
		return planner.ManualResult{}, planner.ErrMalformedSlotReference
	}

	ref := model.BlockRef{Date: input.Date, Time: input.Time}
	for _, picked := range sess.Selected {
		if picked == ref {
			uc.metrics.IncManualSubmission("duplicate")
			return planner.ManualResult{}, planner.ErrSlotAlreadySelected
		}
	}

	sched, found, err := uc.slots.GetDay(ctx, sc.UserID, input.Date)
	if err != nil {
		return planner.ManualResult{}, err
	}
	if !found || !sched[input.Time].Available() {
		uc.metrics.IncManualSubmission("unavailable")
		return planner.ManualResult{}, planner.ErrSlotUnavailable
	}

	selected := append(append([]model.BlockRef(nil), sess.Selected...), ref)
	remaining := sess.BlocksNeeded - 1
	uc.metrics.IncManualSubmission("accepted")

	result := planner.ManualResult{
		TaskID:    sess.TaskID,
		Remaining: remaining,
		Selected:  selected,
	}

	if remaining > 0 {
		sess.Selected = selected
		sess.BlocksNeeded = remaining
		uc.sessions.put(sc.UserID, sess)
		return result, nil
	}

	// Selection complete: commit every picked slot to the task. The
	// session itself stays untouched until the commit's outcome is known,
	// so its block count can never run past what the task requires.
	task, found, err := uc.tasks.Get(ctx, sc.UserID, sess.TaskID)
	if err != nil {
		// Nothing was written; the caller can retry the same slot.
		return planner.ManualResult{}, err
	}
	if !found {
		uc.sessions.drop(sc.UserID)
		return planner.ManualResult{}, planner.ErrTaskNotFound
	}

	if err := uc.assignBlocks(ctx, sc.UserID, task, selected); err != nil {
		// The commit may have written part of the selection; the session
		// is dead either way and the error names what diverged.
		uc.sessions.drop(sc.UserID)
		return planner.ManualResult{}, err
	}

	uc.sessions.drop(sc.UserID)
	result.Completed = true
	uc.l.Infof(ctx, "manual: task %s committed with %d block(s)", sess.TaskID, len(selected))
	return result, nil
}

// CancelManual drops the user's selection session. Cancelling with no
// session in progress is a no-op.
func (uc *implUseCase) CancelManual(ctx context.Context, sc model.Scope) error {
	uc.sessions.drop(sc.UserID)
	return nil
}
