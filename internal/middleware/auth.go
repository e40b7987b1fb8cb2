// internal/middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UmairIqbal92/car-dealer-fork/internal/services"
)

// AdminRequired guards the back-office routes. The admin_session cookie is
// only honored while a matching unexpired server-side session row exists.
func AdminRequired(authService *services.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || authService.ValidateSession(token) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Not authenticated",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
