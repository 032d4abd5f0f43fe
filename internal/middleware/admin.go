package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse mirrors api.ErrorResponse to avoid an import cycle.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// AdminChecker reports whether the administrator view is unlocked.
type AdminChecker interface {
	IsAdmin() bool
}

// RequireAdmin rejects requests with 401 while the session flag is off.
// The flag is process-wide and carries no caller identity, so while it is on every
// client passes. It is a display gate, not authentication.
func RequireAdmin(session AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "Admin session required",
				Details: "Log in through /api/v1/session/login first",
			})
			return
		}
		c.Next()
	}
}
