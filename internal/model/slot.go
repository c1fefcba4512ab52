package model

// SlotKind classifies a 30-minute calendar slot.
type SlotKind string

const (
	SlotSleep    SlotKind = "sleep"
	SlotLecture  SlotKind = "lecture"
	SlotFree     SlotKind = "free"
	SlotOccupied SlotKind = "occupied"
)

// Slot is one 30-minute unit of a user's day.
//
// Task is the ID of the owning task and is set exactly when Kind is occupied.
// Label carries the fixed description of lecture slots. Sleep and lecture
// slots are never touched by the allocator.
type Slot struct {
	Kind  SlotKind `json:"kind"`
	Task  string   `json:"task,omitempty"`
	Label string   `json:"label,omitempty"`
}

// Available reports whether the allocator may claim this slot.
func (s Slot) Available() bool {
	return s.Kind == SlotFree
}

// DaySchedule maps "HH:MM" keys (48 half-hour boundaries) to slots
// for one user on one date.
type DaySchedule map[string]Slot

// Clone returns an independent copy of the schedule.
func (d DaySchedule) Clone() DaySchedule {
	if d == nil {
		return nil
	}
	out := make(DaySchedule, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
