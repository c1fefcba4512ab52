package http

import (
	"github.com/gin-gonic/gin"

	"routine-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Every route
// requires a caller identity and runs behind the per-user rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.Use(mw.UserScope(), mw.RateLimit())

	calendar := rg.Group("/calendar")
	{
		calendar.POST("/generate", h.GenerateCalendar)
		calendar.GET("/:date", h.GetDaySchedule)
		calendar.GET("/:date/plan", h.GetDailyPlan)
	}

	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.CreateTask)
		tasks.GET("", h.ListTasks)
		tasks.DELETE("/:id", h.DeleteTask)
		tasks.POST("/:id/allocate", h.Allocate)
		tasks.POST("/:id/confirm", h.ConfirmAllocation)
		tasks.POST("/:id/manual", h.StartManual)
	}

	manual := rg.Group("/manual")
	{
		manual.POST("/blocks", h.SubmitBlock)
		manual.DELETE("", h.CancelManual)
	}
}
