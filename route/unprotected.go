package route

import (
	"coolenergy/controller"

	"github.com/gin-gonic/gin"
)

// Unprotected wires the public surface. Login additionally passes through
// the stricter auth limiter before the password is even looked at.
func Unprotected(router *gin.Engine, h *controller.Handler, apiLimiter, authLimiter gin.HandlerFunc) {
	router.GET("/health", h.Health)

	api := router.Group("/api")
	api.Use(apiLimiter)
	api.GET("/images", h.ListImages)
	api.GET("/images/fallback", h.ListFallbackImages)
	api.POST("/auth/login", authLimiter, h.Login)
	api.POST("/analytics/pageview", h.RecordPageview)
	api.POST("/analytics/event", h.RecordEvent)
}
