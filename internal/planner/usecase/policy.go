package usecase

import (
	"fmt"

	"routine-planner/internal/model"
)

// ShortfallAction decides what happens when the greedy scan cannot cover a
// task's demand before its deadline.
type ShortfallAction int

const (
	// ActionConfirm reports the shortfall and waits for the caller's
	// explicit go-ahead before any eviction runs.
	ActionConfirm ShortfallAction = iota
	// ActionEvict immediately tries to relocate lower-priority tasks.
	ActionEvict
	// ActionReport returns the shortfall as-is, assigning nothing.
	ActionReport
)

// ShortfallPolicy maps a task's priority to its shortfall action.
type ShortfallPolicy func(model.Priority) ShortfallAction

// LegacyShortfallPolicy reproduces the historical mapping: high and medium
// ask for confirmation while urgent and low evict directly. The mapping
// looks inverted against deadline intuition but is kept as the default for
// behavioral compatibility; see StrictShortfallPolicy for the alternative.
func LegacyShortfallPolicy(p model.Priority) ShortfallAction {
	switch p {
	case model.PriorityHigh, model.PriorityMedium:
		return ActionConfirm
	default:
		return ActionEvict
	}
}

// StrictShortfallPolicy is the deadline-intuitive mapping: only urgent tasks
// evict on their own, high and medium ask for confirmation, and low simply
// reports the shortfall.
func StrictShortfallPolicy(p model.Priority) ShortfallAction {
	switch p {
	case model.PriorityUrgent:
		return ActionEvict
	case model.PriorityHigh, model.PriorityMedium:
		return ActionConfirm
	default:
		return ActionReport
	}
}

// PolicyByName resolves a configured policy name.
func PolicyByName(name string) (ShortfallPolicy, error) {
	switch name {
	case "", "legacy":
		return LegacyShortfallPolicy, nil
	case "strict":
		return StrictShortfallPolicy, nil
	}
	return nil, fmt.Errorf("unknown shortfall policy %q", name)
}

// Placement controls where an evicted task's work is relocated.
type Placement string

const (
	// PlacementAfterDeadline relocates evicted work past the victim's own
	// deadline. Historical behavior, kept as the default.
	PlacementAfterDeadline Placement = "after-deadline"
	// PlacementWithinDeadline only accepts relocations that still finish by
	// the victim's deadline, rejecting the candidate otherwise.
	PlacementWithinDeadline Placement = "within-deadline"
)

// PlacementByName resolves a configured placement name.
func PlacementByName(name string) (Placement, error) {
	switch name {
	case "", string(PlacementAfterDeadline):
		return PlacementAfterDeadline, nil
	case string(PlacementWithinDeadline):
		return PlacementWithinDeadline, nil
	}
	return "", fmt.Errorf("unknown eviction placement %q", name)
}
