// Package timegrid provides helpers for the half-hour slot grid the planner
// schedules against: date keys, time-of-day keys quantized to 30-minute
// boundaries, and block arithmetic.
package timegrid

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// DateLayout is the canonical date key format.
	DateLayout = "2006-01-02"
	// TimeLayout is the canonical time-of-day key format.
	TimeLayout = "15:04"
	// SlotsPerDay is the number of 30-minute slots in one day.
	SlotsPerDay = 48
	// SlotDuration is the length of one slot.
	SlotDuration = 30 * time.Minute
)

// SlotTimes returns the 48 time-of-day keys of a day in ascending order,
// "00:00" through "23:30".
func SlotTimes() []string {
	out := make([]string, 0, SlotsPerDay)
	for hour := 0; hour < 24; hour++ {
		for _, minute := range []int{0, 30} {
			out = append(out, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return out
}

// ParseDate validates and parses a "YYYY-MM-DD" date key.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// DateString formats t as a date key.
func DateString(t time.Time) string {
	return t.Format(DateLayout)
}

// ValidTimeOfDay reports whether s is an "HH:MM" key on a 30-minute boundary.
func ValidTimeOfDay(s string) bool {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || (minute != 0 && minute != 30) {
		return false
	}
	return true
}

// BlocksForHours converts a duration in hours to the number of 30-minute
// blocks needed, rounding up.
func BlocksForHours(hours float64) int {
	blocks := int(hours * 2)
	if float64(blocks) < hours*2 {
		blocks++
	}
	return blocks
}

// SlotStart combines a date key and a time-of-day key into the slot's start
// instant in the given location.
func SlotStart(date, timeOfDay string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+timeOfDay, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid slot reference %q %q: %w", date, timeOfDay, err)
	}
	return t, nil
}

// Between reports whether timeOfDay falls in [from, to] inclusive.
// All arguments must be "HH:MM" keys; lexicographic comparison is exact
// for this format.
func Between(timeOfDay, from, to string) bool {
	return timeOfDay >= from && timeOfDay <= to
}
