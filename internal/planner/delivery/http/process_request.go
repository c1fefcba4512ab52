package http

import (
	"github.com/gin-gonic/gin"

	"routine-planner/internal/middleware"
	"routine-planner/internal/model"
)

// scopeFrom reads the caller identity placed on the context by the
// UserScope middleware.
func scopeFrom(c *gin.Context) model.Scope {
	return middleware.ScopeFrom(c)
}

// processGenerateReq binds the optional generation window body. An empty
// body means defaults.
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processCreateTaskReq binds the create task request body.
func (h *handler) processCreateTaskReq(c *gin.Context) (createTaskReq, error) {
	var req createTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSubmitBlockReq binds one manually picked slot.
func (h *handler) processSubmitBlockReq(c *gin.Context) (submitBlockReq, error) {
	var req submitBlockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
