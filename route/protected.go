package route

import (
	"coolenergy/controller"
	mw "coolenergy/middlewares"

	"github.com/gin-gonic/gin"
)

// Protected wires the admin surface. Guard order per request: rate limit,
// token verification, role gate, then input validation. Signature and
// delete validate inside the handler and answer their own structured 503
// on a degraded host, so an invalid body stays a 400 regardless of host
// availability; only stats, which takes no input, sits behind the precheck
// middleware.
func Protected(router *gin.Engine, h *controller.Handler, jwtSecret string, hostConfigured bool, apiLimiter gin.HandlerFunc) {
	admin := router.Group("/api")
	admin.Use(apiLimiter, mw.JWT(jwtSecret), mw.AdminOnly())

	admin.GET("/analytics/summary", h.AnalyticsSummary)
	admin.POST("/upload/signature", h.UploadSignature)
	admin.DELETE("/images/*publicId", h.DeleteImage)

	host := admin.Group("/")
	host.Use(mw.RequireImageHost(hostConfigured))
	host.GET("/stats", h.GetStats)
}
