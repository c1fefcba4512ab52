package usecase

import (
	"context"
	"sort"

	"routine-planner/internal/model"
	"routine-planner/internal/planner/repository"
)

// evictLowerPriority relocates tasks with strictly lower priority weight
// than target until blocksNeeded is covered or candidates run out. A victim
// is only moved when a full replacement placement exists; its old slots are
// released, the new ones occupied and its block list rewritten wholesale.
// The whole pass is best-effort: a failed relocation is logged and skipped,
// never rolled back, and the target may still end up short.
func (uc *implUseCase) evictLowerPriority(ctx context.Context, userID string, target model.Task, blocksNeeded int) []string {
	all, err := uc.tasks.List(ctx, userID)
	if err != nil {
		uc.l.Warnf(ctx, "reschedule: failed to list tasks for %s: %v", userID, err)
		return nil
	}

	candidates := make([]model.Task, 0, len(all))
	for id, t := range all {
		if id == target.ID {
			continue
		}
		if t.Priority.Weight() >= target.Priority.Weight() {
			continue
		}
		if len(t.AssignedBlocks) == 0 {
			continue
		}
		candidates = append(candidates, t)
	}

	// Lowest weight first, oldest first; ID is the final tiebreak so runs
	// over the same snapshot pick the same victims.
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Priority.Weight() != b.Priority.Weight() {
			return a.Priority.Weight() < b.Priority.Weight()
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	var evicted []string
	for _, victim := range candidates {
		if blocksNeeded <= 0 {
			break
		}

		newBlocks, ok := uc.findRelocation(ctx, userID, victim)
		if !ok {
			continue
		}

		if err := uc.relocate(ctx, userID, victim, newBlocks); err != nil {
			uc.l.Warnf(ctx, "reschedule: failed to relocate task %s: %v", victim.ID, err)
			continue
		}

		blocksNeeded -= len(victim.AssignedBlocks)
		evicted = append(evicted, victim.ID)
		uc.l.Infof(ctx, "reschedule: moved task %s (%s) off %d block(s)", victim.ID, victim.Priority, len(victim.AssignedBlocks))
	}
	return evicted
}

// findRelocation searches a full replacement placement for the victim
// according to the configured placement window.
func (uc *implUseCase) findRelocation(ctx context.Context, userID string, victim model.Task) ([]model.BlockRef, bool) {
	deadline, err := uc.parseDate(victim.Deadline)
	if err != nil {
		return nil, false
	}

	var from, to = uc.today(), deadline
	if uc.cfg.EvictionPlacement == PlacementAfterDeadline {
		from = deadline.AddDate(0, 0, 1)
		to = uc.today().AddDate(0, 0, uc.cfg.HorizonDays)
	}
	if from.After(to) {
		return nil, false
	}

	needed := victim.NeededBlocks()
	blocks, err := uc.scanFree(ctx, userID, from, to, needed)
	if err != nil {
		uc.l.Warnf(ctx, "reschedule: scan for task %s failed: %v", victim.ID, err)
		return nil, false
	}
	if len(blocks) < needed {
		return nil, false
	}
	return blocks, true
}

// relocate releases the victim's old slots, occupies the new ones and
// rewrites its block list.
func (uc *implUseCase) relocate(ctx context.Context, userID string, victim model.Task, newBlocks []model.BlockRef) error {
	for _, b := range victim.AssignedBlocks {
		if err := uc.slots.UpdateSlot(ctx, userID, b.Date, b.Time, repository.ReleaseSlot()); err != nil {
			return err
		}
	}
	for _, b := range newBlocks {
		if err := uc.slots.UpdateSlot(ctx, userID, b.Date, b.Time, repository.OccupySlot(victim.ID)); err != nil {
			return err
		}
	}
	return uc.tasks.UpdateBlocks(ctx, userID, victim.ID, newBlocks)
}
