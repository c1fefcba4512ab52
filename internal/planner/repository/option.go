package repository

import "routine-planner/internal/model"

// UpdateSlotFields holds the fields of one slot to merge. Nil pointers leave
// the stored field untouched; ClearTask removes the task back-reference.
type UpdateSlotFields struct {
	Kind      *model.SlotKind
	Task      *string
	ClearTask bool
}

// OccupySlot builds the field set that claims a slot for a task.
func OccupySlot(taskID string) UpdateSlotFields {
	kind := model.SlotOccupied
	return UpdateSlotFields{Kind: &kind, Task: &taskID}
}

// ReleaseSlot builds the field set that returns a slot to the free pool.
func ReleaseSlot() UpdateSlotFields {
	kind := model.SlotFree
	return UpdateSlotFields{Kind: &kind, ClearTask: true}
}
