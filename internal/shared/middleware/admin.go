package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Admin checks if the authenticated user has the admin role.
// Must run after Auth.
func Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleInterface, exists := c.Get(CtxRole)
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "Access denied: admin role required",
			})
			c.Abort()
			return
		}

		role, ok := roleInterface.(string)
		if !ok || role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "Access denied: admin role required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// Editorial admits admins and editors. Used for moderation and
// curation surfaces; fine-grained checks against the stored role happen
// in the services. Must run after Auth.
func Editorial() gin.HandlerFunc {
	return requireRoles("editorial", "admin", "editor")
}

// Staff admits anyone who produces content. Authors can reach the
// console but the services keep them away from publish and feature.
// Must run after Auth.
func Staff() gin.HandlerFunc {
	return requireRoles("staff", "admin", "editor", "author")
}

func requireRoles(label string, allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleInterface, _ := c.Get(CtxRole)
		role, _ := roleInterface.(string)

		for _, a := range allowed {
			if role == a {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   "Access denied: " + label + " role required",
		})
		c.Abort()
	}
}
