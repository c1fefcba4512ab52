package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"routine-planner/internal/model"
	"routine-planner/internal/planner"
	"routine-planner/internal/planner/repository"
	"routine-planner/pkg/timegrid"
)

// AllocateAuto greedily claims free slots from today up to the task's
// deadline, ascending by date then time of day, capped per day. On shortfall
// the configured policy picks between confirmation, eviction and plain
// reporting.
func (uc *implUseCase) AllocateAuto(ctx context.Context, sc model.Scope, taskID string) (planner.AllocationResult, error) {
	return uc.allocate(ctx, sc, taskID, false)
}

// ConfirmAllocation is the caller's go-ahead after a NeedsConfirmation
// result: the eviction branch runs regardless of the policy mapping.
func (uc *implUseCase) ConfirmAllocation(ctx context.Context, sc model.Scope, taskID string) (planner.AllocationResult, error) {
	return uc.allocate(ctx, sc, taskID, true)
}

func (uc *implUseCase) allocate(ctx context.Context, sc model.Scope, taskID string, forceEvict bool) (planner.AllocationResult, error) {
	unlock := uc.locks.acquire(sc.UserID)
	defer unlock()

	task, found, err := uc.tasks.Get(ctx, sc.UserID, taskID)
	if err != nil {
		return planner.AllocationResult{}, err
	}
	if !found {
		return planner.AllocationResult{}, planner.ErrTaskNotFound
	}

	result := planner.AllocationResult{TaskID: taskID}

	// Re-allocating a scheduled task would double-book its slots.
	if len(task.AssignedBlocks) > 0 {
		result.FullySatisfied = true
		result.AssignedCount = len(task.AssignedBlocks)
		result.Blocks = task.AssignedBlocks
		return result, nil
	}

	deadline, err := uc.parseDate(task.Deadline)
	if err != nil {
		return planner.AllocationResult{}, planner.ErrInvalidDeadlineFormat
	}

	needed := task.NeededBlocks()
	today := uc.today()

	blocks, err := uc.scanFree(ctx, sc.UserID, today, deadline, needed)
	if err != nil {
		return planner.AllocationResult{}, err
	}

	if len(blocks) < needed {
		action := uc.cfg.ShortfallPolicy(task.Priority)
		if forceEvict {
			action = ActionEvict
		}

		switch action {
		case ActionConfirm:
			result.NeedsConfirmation = true
			result.Residual = needed - len(blocks)
			uc.metrics.IncAllocation("needs_confirmation")
			uc.l.Infof(ctx, "allocate: task %s short %d block(s), awaiting confirmation", taskID, result.Residual)
			return result, nil

		case ActionReport:
			result.Residual = needed - len(blocks)
			uc.metrics.IncAllocation("insufficient")
			return result, nil

		case ActionEvict:
			evicted := uc.evictLowerPriority(ctx, sc.UserID, task, needed-len(blocks))
			result.Evicted = evicted
			uc.metrics.IncEvictions(len(evicted))

			blocks, err = uc.scanFree(ctx, sc.UserID, today, deadline, needed)
			if err != nil {
				return planner.AllocationResult{}, err
			}
		}
	}

	if len(blocks) > 0 {
		if err := uc.assignBlocks(ctx, sc.UserID, task, blocks); err != nil {
			return planner.AllocationResult{}, err
		}
		result.Blocks = blocks
	}

	result.AssignedCount = len(blocks)
	result.Residual = needed - len(blocks)
	result.FullySatisfied = result.Residual <= 0

	if result.FullySatisfied {
		uc.metrics.IncAllocation("assigned")
	} else {
		uc.metrics.IncAllocation("partial")
	}
	uc.metrics.ObserveAllocationSlots(len(blocks))

	uc.l.Infof(ctx, "allocate: task %s assigned %d/%d block(s)", taskID, result.AssignedCount, needed)
	return result, nil
}

// scanFree collects up to needed free slots between from and to inclusive.
// Output order is date-ascending, then time-ascending, with at most
// MaxBlocksPerDay blocks taken from any single day; the scan over an
// identical calendar snapshot is deterministic.
func (uc *implUseCase) scanFree(ctx context.Context, userID string, from, to time.Time, needed int) ([]model.BlockRef, error) {
	blocks := make([]model.BlockRef, 0, needed)

	for date := from; !date.After(to) && len(blocks) < needed; date = date.AddDate(0, 0, 1) {
		key := timegrid.DateString(date)
		sched, found, err := uc.slots.GetDay(ctx, userID, key)
		if err != nil {
			return nil, err
		}
		if !found {
			// Never-generated dates hold no free capacity.
			continue
		}

		times := make([]string, 0, len(sched))
		for tod, slot := range sched {
			if slot.Available() {
				times = append(times, tod)
			}
		}
		sort.Strings(times)

		taken := 0
		for _, tod := range times {
			if len(blocks) >= needed || taken >= uc.cfg.MaxBlocksPerDay {
				break
			}
			blocks = append(blocks, model.BlockRef{Date: key, Time: tod})
			taken++
		}
	}
	return blocks, nil
}

// assignBlocks records the blocks on the task, then occupies each slot.
// The task's block list is written first; a slot write failure afterwards
// leaves the two sides divergent and is surfaced as a reconciliation error
// rather than swallowed.
func (uc *implUseCase) assignBlocks(ctx context.Context, userID string, task model.Task, blocks []model.BlockRef) error {
	if err := uc.tasks.UpdateBlocks(ctx, userID, task.ID, blocks); err != nil {
		return err
	}

	for i, b := range blocks {
		if err := uc.slots.UpdateSlot(ctx, userID, b.Date, b.Time, repository.OccupySlot(task.ID)); err != nil {
			return fmt.Errorf("task %s blocks recorded but slot %s %s not occupied (%d of %d written), reconciliation required: %w",
				task.ID, b.Date, b.Time, i, len(blocks), err)
		}
	}

	uc.mirrorAssignment(ctx, userID, task, blocks)
	return nil
}
