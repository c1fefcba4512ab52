package model_test

import (
	"testing"

	"routine-planner/internal/model"
)

func TestPriorityWeightOrder(t *testing.T) {
	order := []model.Priority{
		model.PriorityUrgent,
		model.PriorityHigh,
		model.PriorityMedium,
		model.PriorityLow,
	}
	for i := 0; i < len(order)-1; i++ {
		if order[i].Weight() <= order[i+1].Weight() {
			t.Errorf("expected %s > %s, got %d <= %d",
				order[i], order[i+1], order[i].Weight(), order[i+1].Weight())
		}
	}

	if model.Priority("bogus").Valid() {
		t.Error("unknown priority should not be valid")
	}
	if !model.PriorityLow.Valid() {
		t.Error("low priority should be valid")
	}
}

func TestNeededBlocks(t *testing.T) {
	cases := []struct {
		hours float64
		want  int
	}{
		{0.5, 1},
		{1.0, 2},
		{1.5, 3},
		{1.2, 3}, // rounds up to the next half hour
		{2.0, 4},
		{0.1, 1},
	}

	for _, tc := range cases {
		task := model.Task{TimeRequiredHours: tc.hours}
		if got := task.NeededBlocks(); got != tc.want {
			t.Errorf("NeededBlocks(%v) = %d, want %d", tc.hours, got, tc.want)
		}
	}
}

func TestSlotAvailable(t *testing.T) {
	cases := []struct {
		kind model.SlotKind
		want bool
	}{
		{model.SlotFree, true},
		{model.SlotSleep, false},
		{model.SlotLecture, false},
		{model.SlotOccupied, false},
	}
	for _, tc := range cases {
		if got := (model.Slot{Kind: tc.kind}).Available(); got != tc.want {
			t.Errorf("Available(%s) = %v, want %v", tc.kind, got, tc.want)
		}
	}
}

func TestDayScheduleClone(t *testing.T) {
	orig := model.DaySchedule{
		"08:00": {Kind: model.SlotFree},
	}
	cp := orig.Clone()
	cp["08:00"] = model.Slot{Kind: model.SlotOccupied, Task: "t1"}

	if orig["08:00"].Kind != model.SlotFree {
		t.Error("mutating the clone must not touch the original")
	}
}
