// Package firebase implements the planner repositories on top of the
// Firebase Realtime Database REST API. The document tree mirrors the
// persisted layout: schedule/<userID>/<date>/<timeOfDay> and
// tasks/<userID>/<taskID>.
package firebase

import (
	"context"
	"fmt"

	"routine-planner/internal/model"
	"routine-planner/internal/planner"
	"routine-planner/internal/planner/repository"
	pkgFirebase "routine-planner/pkg/firebase"
	pkgLog "routine-planner/pkg/log"
)

type slotRepository struct {
	client *pkgFirebase.Client
	l      pkgLog.Logger
}

// NewSlotRepository creates a slot repository backed by the database client.
func NewSlotRepository(client *pkgFirebase.Client, l pkgLog.Logger) repository.SlotRepository {
	return &slotRepository{client: client, l: l}
}

func (r *slotRepository) GetDay(ctx context.Context, userID, date string) (model.DaySchedule, bool, error) {
	var sched model.DaySchedule
	found, err := r.client.Get(ctx, dayPath(userID, date), &sched)
	if err != nil {
		r.l.Errorf(ctx, "slot repository: failed to read day %s/%s: %v", userID, date, err)
		return nil, false, fmt.Errorf("%w: %v", planner.ErrStoreUnavailable, err)
	}
	return sched, found, nil
}

func (r *slotRepository) SetDay(ctx context.Context, userID, date string, sched model.DaySchedule) error {
	if err := r.client.Put(ctx, dayPath(userID, date), sched); err != nil {
		r.l.Errorf(ctx, "slot repository: failed to write day %s/%s: %v", userID, date, err)
		return fmt.Errorf("%w: %v", planner.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *slotRepository) UpdateSlot(ctx context.Context, userID, date, timeOfDay string, fields repository.UpdateSlotFields) error {
	patch := make(map[string]any, 2)
	if fields.Kind != nil {
		patch["kind"] = *fields.Kind
	}
	if fields.ClearTask {
		patch["task"] = nil
	} else if fields.Task != nil {
		patch["task"] = *fields.Task
	}
	if len(patch) == 0 {
		return nil
	}

	path := fmt.Sprintf("%s/%s", dayPath(userID, date), timeOfDay)
	if err := r.client.Patch(ctx, path, patch); err != nil {
		r.l.Errorf(ctx, "slot repository: failed to patch slot %s: %v", path, err)
		return fmt.Errorf("%w: %v", planner.ErrStoreUnavailable, err)
	}
	return nil
}

func dayPath(userID, date string) string {
	return fmt.Sprintf("schedule/%s/%s", userID, date)
}
