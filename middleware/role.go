package middleware

import (
	"net/http"

	userRepo "akplaw/database/repository/user"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route group to users holding one of the given roles.
// Role is always read from the user document, never from the token, so a
// role change takes effect on the next request. Must run after
// JWTAuthUserMiddleware.
func RequireRole(users userRepo.UserRepository, roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		userID := c.GetString("userID")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		usr, err := users.GetByID(userID)
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
			return
		}
		if !allowed[usr.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.Set("userRole", usr.Role)
		c.Next()
	}
}
