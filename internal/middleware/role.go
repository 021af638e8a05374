package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/salonbelle/booking-api/internal/httperr"
	"github.com/salonbelle/booking-api/internal/models"
)

func requireRole(c *gin.Context, roles ...string) {
	if CurrentIdentity(c) == nil {
		httperr.Unauthorized(c, "unauthorized", "Authentication required.")
		c.Abort()
		return
	}

	profile := CurrentProfile(c)
	if profile != nil {
		for _, role := range roles {
			if profile.Role == role {
				c.Next()
				return
			}
		}
	}

	httperr.Forbidden(c, "insufficient_role", "Access denied.")
	c.Abort()
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		requireRole(c, models.RoleAdmin)
	}
}

func RequireStylistOrAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		requireRole(c, models.RoleStylist, models.RoleAdmin)
	}
}
