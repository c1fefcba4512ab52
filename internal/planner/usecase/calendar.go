package usecase

import (
	"context"
	"fmt"
	"time"

	"routine-planner/internal/model"
	"routine-planner/internal/planner"
	"routine-planner/pkg/timegrid"
)

// GenerateCalendar materializes day schedules for the rolling horizon.
// Dates already present are skipped, so re-running the generator never
// alters an existing day.
func (uc *implUseCase) GenerateCalendar(ctx context.Context, sc model.Scope, input planner.GenerateCalendarInput) (planner.GenerateCalendarOutput, error) {
	unlock := uc.locks.acquire(sc.UserID)
	defer unlock()

	start := uc.today()
	if input.StartDate != "" {
		parsed, err := uc.parseDate(input.StartDate)
		if err != nil {
			return planner.GenerateCalendarOutput{}, fmt.Errorf("start date: %w", planner.ErrInvalidDeadlineFormat)
		}
		start = parsed
	}

	horizon := input.HorizonDays
	if horizon <= 0 {
		horizon = uc.cfg.HorizonDays
	}

	created := 0
	for offset := 0; offset < horizon; offset++ {
		date := start.AddDate(0, 0, offset)
		key := timegrid.DateString(date)

		_, found, err := uc.slots.GetDay(ctx, sc.UserID, key)
		if err != nil {
			return planner.GenerateCalendarOutput{}, err
		}
		if found {
			continue
		}

		if err := uc.slots.SetDay(ctx, sc.UserID, key, uc.buildDay(date)); err != nil {
			return planner.GenerateCalendarOutput{}, err
		}
		created++
	}

	uc.metrics.AddDaysGenerated(created)
	if created > 0 {
		uc.l.Infof(ctx, "calendar: generated %d day(s) for %s starting %s", created, sc.UserID, timegrid.DateString(start))
	}
	return planner.GenerateCalendarOutput{DaysCreated: created}, nil
}

// buildDay types all 48 slots of one date: the sleep window, the weekday's
// lecture blocks, free everywhere else.
func (uc *implUseCase) buildDay(date time.Time) model.DaySchedule {
	lectures := make(map[string]string)
	for _, lb := range uc.cfg.Lectures {
		if lb.Weekday != date.Weekday() {
			continue
		}
		for _, tod := range lb.Times {
			lectures[tod] = lb.Label
		}
	}

	sched := make(model.DaySchedule, timegrid.SlotsPerDay)
	for _, tod := range timegrid.SlotTimes() {
		if timegrid.Between(tod, uc.cfg.SleepStart, uc.cfg.SleepEnd) {
			sched[tod] = model.Slot{Kind: model.SlotSleep}
			continue
		}
		if label, ok := lectures[tod]; ok {
			sched[tod] = model.Slot{Kind: model.SlotLecture, Label: label}
			continue
		}
		sched[tod] = model.Slot{Kind: model.SlotFree}
	}
	return sched
}

// ensureDay reads one day schedule, generating it first if the date was
// never materialized.
func (uc *implUseCase) ensureDay(ctx context.Context, userID string, date time.Time) (model.DaySchedule, error) {
	key := timegrid.DateString(date)
	sched, found, err := uc.slots.GetDay(ctx, userID, key)
	if err != nil {
		return nil, err
	}
	if found {
		return sched, nil
	}

	sched = uc.buildDay(date)
	if err := uc.slots.SetDay(ctx, userID, key, sched); err != nil {
		return nil, err
	}
	uc.metrics.AddDaysGenerated(1)
	return sched, nil
}
