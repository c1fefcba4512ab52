package http

import (
	"github.com/gin-gonic/gin"

	"routine-planner/internal/planner"
	"routine-planner/pkg/log"
)

// Handler is the public interface for the planner HTTP delivery layer.
type Handler interface {
	GenerateCalendar(c *gin.Context)
	GetDaySchedule(c *gin.Context)
	GetDailyPlan(c *gin.Context)
	CreateTask(c *gin.Context)
	ListTasks(c *gin.Context)
	DeleteTask(c *gin.Context)
	Allocate(c *gin.Context)
	ConfirmAllocation(c *gin.Context)
	StartManual(c *gin.Context)
	SubmitBlock(c *gin.Context)
	CancelManual(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc planner.UseCase
}

// New creates a new HTTP handler for the planner domain.
func New(l log.Logger, uc planner.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
