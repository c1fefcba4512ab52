package model

import (
	"time"

	"routine-planner/pkg/timegrid"
)

// Priority orders tasks for allocation and eviction decisions.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Weight returns the numeric rank used as the eviction comparator.
// Higher weight wins. Unknown priorities rank below everything.
func (p Priority) Weight() int {
	switch p {
	case PriorityUrgent:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Valid reports whether p is one of the four known priorities.
func (p Priority) Valid() bool {
	return p.Weight() > 0
}

// BlockRef identifies one assigned slot: a date plus a half-hour boundary.
type BlockRef struct {
	Date string `json:"date"` // "2006-01-02"
	Time string `json:"time"` // "15:04"
}

// Task is a unit of planned work backed by calendar slots.
//
// AssignedBlocks is the single source of truth for which slots belong to the
// task; the slots' back-references must stay consistent with it on every
// assign, evict and release.
type Task struct {
	ID                string     `json:"-"`
	Name              string     `json:"name"`
	Priority          Priority   `json:"priority"`
	TimeRequiredHours float64    `json:"time_required"`
	Deadline          string     `json:"deadline"` // "2006-01-02"
	Notes             string     `json:"notes,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	AssignedBlocks    []BlockRef `json:"assigned_blocks,omitempty"`
	CalendarEventIDs  []string   `json:"calendar_event_ids,omitempty"`
}

// NeededBlocks is the number of 30-minute slots the task requires.
func (t Task) NeededBlocks() int {
	return timegrid.BlocksForHours(t.TimeRequiredHours)
}
