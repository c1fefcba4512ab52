package usecase

import (
	"context"
	"sort"
	"time"

	"routine-planner/internal/model"
	"routine-planner/pkg/gcalendar"
	"routine-planner/pkg/timegrid"
)

// mirrorAssignment reflects an assignment into Google Calendar, one event
// per contiguous run of blocks. The mirror is best-effort: failures are
// logged and never fail the allocation.
func (uc *implUseCase) mirrorAssignment(ctx context.Context, userID string, task model.Task, blocks []model.BlockRef) {
	if uc.calendar == nil || len(blocks) == 0 {
		return
	}

	var eventIDs []string
	for _, run := range contiguousRuns(blocks) {
		start, err := timegrid.SlotStart(run[0].Date, run[0].Time, uc.loc)
		if err != nil {
			uc.l.Warnf(ctx, "mirror: bad block %v for task %s: %v", run[0], task.ID, err)
			continue
		}
		ev, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  uc.cfg.CalendarID,
			Summary:     task.Name,
			Description: task.Notes,
			StartTime:   start,
			EndTime:     start.Add(time.Duration(len(run)) * timegrid.SlotDuration),
			Timezone:    uc.cfg.Timezone,
		})
		if err != nil {
			uc.l.Warnf(ctx, "mirror: failed to create event for task %s: %v", task.ID, err)
			continue
		}
		eventIDs = append(eventIDs, ev.ID)
	}

	if len(eventIDs) == 0 {
		return
	}
	if err := uc.tasks.UpdateCalendarEvents(ctx, userID, task.ID, eventIDs); err != nil {
		uc.l.Warnf(ctx, "mirror: failed to record event ids for task %s: %v", task.ID, err)
	}
}

// unmirrorTask removes the task's mirrored events, best-effort.
func (uc *implUseCase) unmirrorTask(ctx context.Context, task model.Task) {
	if uc.calendar == nil {
		return
	}
	for _, id := range task.CalendarEventIDs {
		if err := uc.calendar.DeleteEvent(ctx, uc.cfg.CalendarID, id); err != nil {
			uc.l.Warnf(ctx, "mirror: failed to delete event %s for task %s: %v", id, task.ID, err)
		}
	}
}

// contiguousRuns groups sorted blocks into runs of back-to-back slots on the
// same date.
func contiguousRuns(blocks []model.BlockRef) [][]model.BlockRef {
	sorted := append([]model.BlockRef(nil), blocks...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date < sorted[j].Date
		}
		return sorted[i].Time < sorted[j].Time
	})

	var runs [][]model.BlockRef
	for _, b := range sorted {
		if n := len(runs); n > 0 {
			last := runs[n-1][len(runs[n-1])-1]
			if b.Date == last.Date && nextSlot(last.Time) == b.Time {
				runs[n-1] = append(runs[n-1], b)
				continue
			}
		}
		runs = append(runs, []model.BlockRef{b})
	}
	return runs
}

// nextSlot returns the "HH:MM" key 30 minutes after tod, or empty at the end
// of the day.
func nextSlot(tod string) string {
	times := timegrid.SlotTimes()
	for i, t := range times {
		if t == tod && i+1 < len(times) {
			return times[i+1]
		}
	}
	return ""
}
