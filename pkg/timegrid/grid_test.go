package timegrid_test

import (
	"testing"
	"time"

	"routine-planner/pkg/timegrid"
)

func TestSlotTimes(t *testing.T) {
	times := timegrid.SlotTimes()
	if len(times) != timegrid.SlotsPerDay {
		t.Fatalf("expected %d slots, got %d", timegrid.SlotsPerDay, len(times))
	}
	if times[0] != "00:00" || times[len(times)-1] != "23:30" {
		t.Errorf("unexpected boundaries: first=%s last=%s", times[0], times[len(times)-1])
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			t.Fatalf("slot times not strictly ascending at %d: %s <= %s", i, times[i], times[i-1])
		}
	}
}

func TestValidTimeOfDay(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"00:00", true},
		{"23:30", true},
		{"08:00", true},
		{"08:15", false},
		{"24:00", false},
		{"8:00", false},
		{"08-00", false},
		{"", false},
		{"ab:cd", false},
	}
	for _, tc := range cases {
		if got := timegrid.ValidTimeOfDay(tc.in); got != tc.want {
			t.Errorf("ValidTimeOfDay(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestBlocksForHours(t *testing.T) {
	cases := []struct {
		hours float64
		want  int
	}{
		{0.5, 1},
		{1.0, 2},
		{1.5, 3},
		{1.75, 4},
		{2.0, 4},
	}
	for _, tc := range cases {
		if got := timegrid.BlocksForHours(tc.hours); got != tc.want {
			t.Errorf("BlocksForHours(%v) = %d, want %d", tc.hours, got, tc.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := timegrid.ParseDate("2025-03-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if timegrid.DateString(d) != "2025-03-01" {
		t.Errorf("round trip mismatch: %s", timegrid.DateString(d))
	}

	if _, err := timegrid.ParseDate("01.03.2025"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestSlotStart(t *testing.T) {
	got, err := timegrid.SlotStart("2025-03-01", "08:30", time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, 3, 1, 8, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("SlotStart = %v, want %v", got, want)
	}
}

func TestBetween(t *testing.T) {
	if !timegrid.Between("01:00", "01:00", "07:30") {
		t.Error("boundary start should be inclusive")
	}
	if !timegrid.Between("07:30", "01:00", "07:30") {
		t.Error("boundary end should be inclusive")
	}
	if timegrid.Between("08:00", "01:00", "07:30") {
		t.Error("08:00 is outside the sleep window")
	}
}
