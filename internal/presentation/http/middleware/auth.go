package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/application/services"
)

const contextKeyRole = "authRole"

// AdminAuth guards the admin API. Requests without a valid bearer token are
// rejected with 401; the resolved role is stored on the gin context.
func AdminAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := authService.ValidateToken(c.GetHeader("Authorization"))
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set(contextKeyRole, role)
		c.Next()
	}
}

// RoleFromContext returns the authenticated role set by AdminAuth, or "".
func RoleFromContext(c *gin.Context) string {
	role, _ := c.Get(contextKeyRole)
	s, _ := role.(string)
	return s
}
