package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"routine-planner/internal/model"
	"routine-planner/pkg/response"
)

const (
	userIDHeader   = "X-User-ID"
	usernameHeader = "X-Username"

	scopeKey = "planner.scope"
)

// UserScope requires a caller identity on every request and places it on
// the gin context for handlers to read back with ScopeFrom.
func (mw Middleware) UserScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(userIDHeader))
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{
			UserID:   userID,
			Username: strings.TrimSpace(c.GetHeader(usernameHeader)),
		})
		c.Next()
	}
}

// ScopeFrom returns the caller identity stored by UserScope. The zero
// Scope is returned on routes that skipped the middleware.
func ScopeFrom(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}
	}
	sc, _ := v.(model.Scope)
	return sc
}
