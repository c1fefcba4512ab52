package http

import (
	"time"

	"routine-planner/internal/model"
	"routine-planner/internal/planner"
)

// --- Request DTOs ---

type generateReq struct {
	StartDate   string `json:"start_date"  binding:"omitempty"`
	HorizonDays int    `json:"horizon_days" binding:"omitempty,min=1,max=365"`
}

func (r generateReq) toInput() planner.GenerateCalendarInput {
	return planner.GenerateCalendarInput{
		StartDate:   r.StartDate,
		HorizonDays: r.HorizonDays,
	}
}

type createTaskReq struct {
	Name         string  `json:"name"          binding:"required"`
	Priority     string  `json:"priority"      binding:"required"`
	TimeRequired float64 `json:"time_required" binding:"required"`
	Deadline     string  `json:"deadline"      binding:"required"`
	Notes        string  `json:"notes"`
}

func (r createTaskReq) toInput() planner.CreateTaskInput {
	return planner.CreateTaskInput{
		Name:              r.Name,
		Priority:          model.Priority(r.Priority),
		TimeRequiredHours: r.TimeRequired,
		Deadline:          r.Deadline,
		Notes:             r.Notes,
	}
}

type submitBlockReq struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

func (r submitBlockReq) toInput() planner.SubmitBlockInput {
	return planner.SubmitBlockInput{Date: r.Date, Time: r.Time}
}

// --- Response DTOs ---

type taskResp struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Priority       model.Priority   `json:"priority"`
	TimeRequired   float64          `json:"time_required"`
	Deadline       string           `json:"deadline"`
	Notes          string           `json:"notes,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	AssignedBlocks []model.BlockRef `json:"assigned_blocks,omitempty"`
}

func newTaskResp(task model.Task) taskResp {
	return taskResp{
		ID:             task.ID,
		Name:           task.Name,
		Priority:       task.Priority,
		TimeRequired:   task.TimeRequiredHours,
		Deadline:       task.Deadline,
		Notes:          task.Notes,
		CreatedAt:      task.CreatedAt,
		AssignedBlocks: task.AssignedBlocks,
	}
}

type taskListResp struct {
	Active  []taskResp `json:"active"`
	Overdue []taskResp `json:"overdue"`
}

func (h *handler) newTaskListResp(out planner.TaskListOutput) taskListResp {
	resp := taskListResp{
		Active:  make([]taskResp, len(out.Active)),
		Overdue: make([]taskResp, len(out.Overdue)),
	}
	for i, t := range out.Active {
		resp.Active[i] = newTaskResp(t)
	}
	for i, t := range out.Overdue {
		resp.Overdue[i] = newTaskResp(t)
	}
	return resp
}

type dayScheduleResp struct {
	Date  string            `json:"date"`
	Slots model.DaySchedule `json:"slots"`
}

func (h *handler) newDayScheduleResp(date string, sched model.DaySchedule) dayScheduleResp {
	return dayScheduleResp{Date: date, Slots: sched}
}
