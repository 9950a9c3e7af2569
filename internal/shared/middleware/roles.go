package middleware

import (
	"github.com/gin-gonic/gin"

	"bookcatalog-api/internal/shared/response"
)

// Role names seeded at bootstrap.
const (
	RoleAdministrator = "Administrator"
	RoleCustomer      = "Customer"
)

// RequireRole gates a route group on the role claim set by Auth.
func RequireRole(required string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get(CtxRole)
		if !exists {
			response.Forbidden(c, "access denied: "+required+" role required")
			c.Abort()
			return
		}

		role, ok := roleValue.(string)
		if !ok || role != required {
			response.Forbidden(c, "access denied: "+required+" role required")
			c.Abort()
			return
		}

		c.Next()
	}
}
