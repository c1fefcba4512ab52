package planner

import "errors"

// Domain-specific errors for the planner package. Validation errors are
// reported back to the caller for re-entry; store failures wrap
// ErrStoreUnavailable and propagate verbatim.
var (
	ErrInvalidDuration        = errors.New("time required must be a positive number of hours")
	ErrInvalidDeadlineFormat  = errors.New("deadline must be formatted as YYYY-MM-DD")
	ErrPastDeadline           = errors.New("deadline is earlier than today")
	ErrNameTooLong            = errors.New("task name exceeds 100 characters")
	ErrInvalidPriority        = errors.New("unknown task priority")
	ErrMalformedSlotReference = errors.New("slot reference is malformed")
	ErrSlotUnavailable        = errors.New("slot is not free")
	ErrSlotAlreadySelected    = errors.New("slot already selected in this session")
	ErrNoManualSession        = errors.New("no manual selection session in progress")
	ErrTaskNotFound           = errors.New("task not found")
	ErrStoreUnavailable       = errors.New("store unavailable")
)
