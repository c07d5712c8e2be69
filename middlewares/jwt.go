package middlewares

import (
	"net/http"
	"strings"

	"coolenergy/utils"

	"github.com/gin-gonic/gin"
)

// JWT authenticates a request from the Authorization header (API clients)
// or the Bearer cookie (browser) and stores the role in the context. Any
// verification failure is a hard 401; there is no secondary check to fall
// back to.
func JWT(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			tokenCookie, err := c.Request.Cookie("Bearer")
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"success": false,
					"error":   "Authorization token required",
				})
				return
			}
			tokenString = tokenCookie.Value
		}

		claims, err := utils.VerifyToken(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Invalid token",
			})
			return
		}

		c.Set("role", claims.Role)
		c.Next()
	}
}

// AdminOnly gates a route on the admin role set by JWT.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "User role not found",
			})
			return
		}
		if err := utils.AuthorizeRole(role.(string), "admin"); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "User unauthorized",
			})
			return
		}
		c.Next()
	}
}
