package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"routine-planner/internal/model"
	"routine-planner/internal/planner"
	"routine-planner/internal/planner/usecase"
)

func TestCreateTaskValidation(t *testing.T) {
	f := newEngine(usecase.Config{})
	ctx := context.Background()

	valid := planner.CreateTaskInput{
		Name:              "write report",
		Priority:          model.PriorityHigh,
		TimeRequiredHours: 1.5,
		Deadline:          dateOffset(3),
	}

	cases := []struct {
		name    string
		mutate  func(*planner.CreateTaskInput)
		wantErr error
	}{
		{
			name:    "name too long",
			mutate:  func(in *planner.CreateTaskInput) { in.Name = strings.Repeat("x", 101) },
			wantErr: planner.ErrNameTooLong,
		},
		{
			name:    "zero duration",
			mutate:  func(in *planner.CreateTaskInput) { in.TimeRequiredHours = 0 },
			wantErr: planner.ErrInvalidDuration,
		},
		{
			name:    "negative duration",
			mutate:  func(in *planner.CreateTaskInput) { in.TimeRequiredHours = -1 },
			wantErr: planner.ErrInvalidDuration,
		},
		{
			name:    "bad deadline format",
			mutate:  func(in *planner.CreateTaskInput) { in.Deadline = "25.12.2025" },
			wantErr: planner.ErrInvalidDeadlineFormat,
		},
		{
			name:    "past deadline",
			mutate:  func(in *planner.CreateTaskInput) { in.Deadline = dateOffset(-1) },
			wantErr: planner.ErrPastDeadline,
		},
		{
			name:    "unknown priority",
			mutate:  func(in *planner.CreateTaskInput) { in.Priority = "critical" },
			wantErr: planner.ErrInvalidPriority,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := valid
			tc.mutate(&input)
			_, err := f.uc.CreateTask(ctx, f.sc, input)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("got %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestCreateTaskPersists(t *testing.T) {
	f := newEngine(usecase.Config{})
	ctx := context.Background()

	task, err := f.uc.CreateTask(ctx, f.sc, planner.CreateTaskInput{
		Name:              "  write report  ",
		Priority:          model.PriorityMedium,
		TimeRequiredHours: 1.0,
		Deadline:          dateOffset(0), // deadline today is allowed
		Notes:             "for the review",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if task.ID == "" {
		t.Fatal("expected a store-assigned ID")
	}
	if task.Name != "write report" {
		t.Errorf("name not trimmed: %q", task.Name)
	}

	stored, found, err := f.tasks.Get(ctx, f.sc.UserID, task.ID)
	if err != nil || !found {
		t.Fatalf("task not persisted: found=%v err=%v", found, err)
	}
	if stored.Deadline != dateOffset(0) || stored.Priority != model.PriorityMedium {
		t.Errorf("unexpected stored task: %+v", stored)
	}
	if len(stored.AssignedBlocks) != 0 {
		t.Error("creation must not assign blocks")
	}
}

func TestCreateTaskExactly100CharsAllowed(t *testing.T) {
	f := newEngine(usecase.Config{})

	_, err := f.uc.CreateTask(context.Background(), f.sc, planner.CreateTaskInput{
		Name:              strings.Repeat("a", 100),
		Priority:          model.PriorityLow,
		TimeRequiredHours: 0.5,
		Deadline:          dateOffset(1),
	})
	if err != nil {
		t.Errorf("100-character name should pass: %v", err)
	}
}

func TestCreateTaskDeadlineTodayWestOfUTC(t *testing.T) {
	// The reference clock reads 10:00 UTC, which is still 2025-03-03 in
	// New York. A same-day deadline must be accepted regardless of how the
	// zone's midnight relates to UTC midnight.
	f := newEngine(usecase.Config{Timezone: "America/New_York"})

	task, err := f.uc.CreateTask(context.Background(), f.sc, planner.CreateTaskInput{
		Name:              "same day",
		Priority:          model.PriorityHigh,
		TimeRequiredHours: 0.5,
		Deadline:          dateOffset(0),
	})
	if err != nil {
		t.Fatalf("same-day deadline rejected: %v", err)
	}
	if task.Deadline != dateOffset(0) {
		t.Errorf("deadline = %s, want %s", task.Deadline, dateOffset(0))
	}
}
