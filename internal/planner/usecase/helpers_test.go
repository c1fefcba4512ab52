package usecase_test

import (
	"context"
	"time"

	"routine-planner/internal/model"
	"routine-planner/internal/planner"
	"routine-planner/internal/planner/repository"
	"routine-planner/internal/planner/repository/memory"
	"routine-planner/internal/planner/usecase"
	"routine-planner/pkg/timegrid"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (mockLogger) Info(ctx context.Context, args ...any)                     {}
func (mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (mockLogger) Error(ctx context.Context, args ...any)                    {}
func (mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}

// testToday is a Monday; weekday-dependent tests rely on that.
var testToday = time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)

type engineFixture struct {
	uc    planner.UseCase
	slots repository.SlotRepository
	tasks repository.TaskRepository
	sc    model.Scope
}

func newEngine(cfg usecase.Config) *engineFixture {
	if cfg.Clock == nil {
		cfg.Clock = func() time.Time { return testToday }
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "UTC"
	}
	if cfg.HorizonDays == 0 {
		cfg.HorizonDays = 10
	}

	slots := memory.NewSlotRepository()
	tasks := memory.NewTaskRepository()
	return &engineFixture{
		uc:    usecase.New(mockLogger{}, slots, tasks, nil, nil, cfg),
		slots: slots,
		tasks: tasks,
		sc:    model.Scope{UserID: "u1"},
	}
}

func dateOffset(days int) string {
	return timegrid.DateString(testToday.AddDate(0, 0, days))
}

// dayWithFree builds a fully booked day except for the given free slot
// times. The sleep window stays sleep.
func dayWithFree(free ...string) model.DaySchedule {
	freeSet := make(map[string]bool, len(free))
	for _, tod := range free {
		freeSet[tod] = true
	}

	sched := make(model.DaySchedule, timegrid.SlotsPerDay)
	for _, tod := range timegrid.SlotTimes() {
		switch {
		case timegrid.Between(tod, "01:00", "07:30"):
			sched[tod] = model.Slot{Kind: model.SlotSleep}
		case freeSet[tod]:
			sched[tod] = model.Slot{Kind: model.SlotFree}
		default:
			sched[tod] = model.Slot{Kind: model.SlotOccupied, Task: "other"}
		}
	}
	return sched
}

// mustCreate persists a task through the engine and fails the test on error.
func (f *engineFixture) mustCreate(t interface {
	Helper()
	Fatalf(format string, args ...any)
}, input planner.CreateTaskInput) model.Task {
	t.Helper()
	task, err := f.uc.CreateTask(context.Background(), f.sc, input)
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	return task
}

// slotAt reads one slot directly from the store.
func (f *engineFixture) slotAt(t interface {
	Helper()
	Fatalf(format string, args ...any)
}, date, tod string) model.Slot {
	t.Helper()
	sched, found, err := f.slots.GetDay(context.Background(), f.sc.UserID, date)
	if err != nil || !found {
		t.Fatalf("day %s not readable: found=%v err=%v", date, found, err)
	}
	return sched[tod]
}
