package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"routine-planner/internal/planner"
	"routine-planner/pkg/response"
)

// respondError translates use-case errors into HTTP responses. Validation
// failures surface their message with 400 so the caller can fix the input;
// anything unrecognized is treated as an internal failure and hidden.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planner.ErrTaskNotFound):
		response.NotFound(c, err)

	case errors.Is(err, planner.ErrInvalidDuration),
		errors.Is(err, planner.ErrInvalidDeadlineFormat),
		errors.Is(err, planner.ErrPastDeadline),
		errors.Is(err, planner.ErrNameTooLong),
		errors.Is(err, planner.ErrInvalidPriority),
		errors.Is(err, planner.ErrMalformedSlotReference),
		errors.Is(err, planner.ErrSlotUnavailable),
		errors.Is(err, planner.ErrSlotAlreadySelected),
		errors.Is(err, planner.ErrNoManualSession):
		response.Error(c, err, nil)

	default:
		response.InternalError(c, err)
	}
}
