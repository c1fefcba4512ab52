package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"routine-planner/pkg/response"
)

// GenerateCalendar godoc
// @Summary     Generate day schedules
// @Description Materializes day schedules over the horizon. Existing days are left unchanged.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string      true  "Caller identity"
// @Param       body      body   generateReq false "Optional window override"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar/generate [POST]
func (h *handler) GenerateCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.GenerateCalendar(ctx, scopeFrom(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateCalendar: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, out)
}

// GetDaySchedule godoc
// @Summary     Get one day's slot map
// @Description Returns all 48 slots of a day, generating the day on demand.
// @Tags        Calendar
// @Produce     json
// @Param       X-User-ID header string true "Caller identity"
// @Param       date      path   string true "Day (YYYY-MM-DD)"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar/{date} [GET]
func (h *handler) GetDaySchedule(c *gin.Context) {
	ctx := c.Request.Context()
	date := c.Param("date")

	sched, err := h.uc.GetDaySchedule(ctx, scopeFrom(c), date)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetDaySchedule: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDayScheduleResp(date, sched))
}

// GetDailyPlan godoc
// @Summary     Get the occupied portion of a day
// @Description Returns the day's occupied slots joined with their tasks, in time order.
// @Tags        Calendar
// @Produce     json
// @Param       X-User-ID header string true "Caller identity"
// @Param       date      path   string true "Day (YYYY-MM-DD)"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar/{date}/plan [GET]
func (h *handler) GetDailyPlan(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.GetDailyPlan(ctx, scopeFrom(c), c.Param("date"))
	if err != nil {
		h.l.Errorf(ctx, "uc.GetDailyPlan: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, out)
}

// CreateTask godoc
// @Summary     Create a task
// @Description Validates and persists a task. Slot allocation is a separate call.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string        true "Caller identity"
// @Param       body      body   createTaskReq true "Task descriptor"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) CreateTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateTaskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	task, err := h.uc.CreateTask(ctx, scopeFrom(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateTask: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newTaskResp(task))
}

// ListTasks godoc
// @Summary     List tasks
// @Description Returns the caller's tasks split into active and overdue by deadline.
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string true "Caller identity"
// @Success     200 {object} response.Resp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.ListTasks(ctx, scopeFrom(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTasks: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newTaskListResp(out))
}

// DeleteTask godoc
// @Summary     Delete a task
// @Description Releases every slot the task holds, then removes the task.
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string true "Caller identity"
// @Param       id        path   string true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) DeleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.DeleteTask(ctx, scopeFrom(c), id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteTask: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// Allocate godoc
// @Summary     Allocate slots automatically
// @Description Greedily assigns free slots up to the task's deadline. On shortfall the result may request confirmation before evicting lower-priority tasks.
// @Tags        Allocation
// @Produce     json
// @Param       X-User-ID header string true "Caller identity"
// @Param       id        path   string true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/allocate [POST]
func (h *handler) Allocate(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.AllocateAuto(ctx, scopeFrom(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.AllocateAuto: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, out)
}

// ConfirmAllocation godoc
// @Summary     Confirm a pending allocation
// @Description Runs the eviction branch for a task whose allocation requested confirmation.
// @Tags        Allocation
// @Produce     json
// @Param       X-User-ID header string true "Caller identity"
// @Param       id        path   string true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/confirm [POST]
func (h *handler) ConfirmAllocation(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.ConfirmAllocation(ctx, scopeFrom(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ConfirmAllocation: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, out)
}

// StartManual godoc
// @Summary     Start manual slot selection
// @Description Opens an interactive selection session for the task. Any previous session is replaced.
// @Tags        Allocation
// @Produce     json
// @Param       X-User-ID header string true "Caller identity"
// @Param       id        path   string true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/manual [POST]
func (h *handler) StartManual(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.StartManual(ctx, scopeFrom(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.StartManual: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, out)
}

// SubmitBlock godoc
// @Summary     Submit one picked slot
// @Description Validates and records one slot for the open manual session. Accepting the last required block commits the selection.
// @Tags        Allocation
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string         true "Caller identity"
// @Param       body      body   submitBlockReq true "Picked slot"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/manual/blocks [POST]
func (h *handler) SubmitBlock(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSubmitBlockReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.SubmitBlock(ctx, scopeFrom(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SubmitBlock: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, out)
}

// CancelManual godoc
// @Summary     Cancel manual slot selection
// @Description Drops the caller's selection session. Cancelling with no session is a no-op.
// @Tags        Allocation
// @Produce     json
// @Param       X-User-ID header string true "Caller identity"
// @Success     200 {object} response.Resp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/manual [DELETE]
func (h *handler) CancelManual(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.CancelManual(ctx, scopeFrom(c)); err != nil {
		h.l.Errorf(ctx, "uc.CancelManual: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
