package middleware

import (
	"net/http"
	"strings"

	"brightsmile/services/admin"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware guards the back-office routes. It validates the
// bearer token against the revocation allow-list and puts the resolved
// admin user in the request context.
func AdminAuthMiddleware(authSvc admin.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		user, err := authSvc.CurrentUser(c, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("adminID", user.ID)
		c.Set("adminEmail", user.Email)
		c.Next()
	}
}
