package usecase

import (
	"context"

	"routine-planner/internal/model"
	"routine-planner/internal/planner"
	"routine-planner/internal/planner/repository"
)

// DeleteTask releases every slot the task holds, then removes the task.
// Slots are released first so a failure cannot leave occupied slots with a
// dangling task reference. Releasing an already-free slot is a no-op.
func (uc *implUseCase) DeleteTask(ctx context.Context, sc model.Scope, taskID string) error {
	unlock := uc.locks.acquire(sc.UserID)
	defer unlock()

	task, found, err := uc.tasks.Get(ctx, sc.UserID, taskID)
	if err != nil {
		return err
	}
	if !found {
		return planner.ErrTaskNotFound
	}

	for _, b := range task.AssignedBlocks {
		if err := uc.slots.UpdateSlot(ctx, sc.UserID, b.Date, b.Time, repository.ReleaseSlot()); err != nil {
			return err
		}
	}

	uc.unmirrorTask(ctx, task)

	if err := uc.tasks.Delete(ctx, sc.UserID, taskID); err != nil {
		return err
	}

	uc.l.Infof(ctx, "task: deleted %s, released %d block(s)", taskID, len(task.AssignedBlocks))
	return nil
}
