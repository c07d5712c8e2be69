package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireImageHost short-circuits host-dependent routes with a structured
// 503 when credentials are absent, instead of letting a raw transport error
// surface. The public read path does not use this: it degrades to the
// fallback catalog instead.
func RequireImageHost(configured bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !configured {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"error":   "Servicio de imágenes no configurado",
			})
			return
		}
		c.Next()
	}
}
