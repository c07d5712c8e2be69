package controller

import (
	"errors"
	"net/http"
	"strings"

	"coolenergy/apperrors"
	"coolenergy/models"

	"github.com/gin-gonic/gin"
)

// ListImages is the combined read path: image host first, static catalog
// when the host is empty or unreachable. It never answers with a host error.
func (h *Handler) ListImages(c *gin.Context) {
	category := c.DefaultQuery("category", "all")

	resp, err := h.resolver.Resolve(c.Request.Context(), category)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCategory) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Categoría inválida"})
			return
		}
		h.log.Errorw("resolve failed", "category", category, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListFallbackImages exposes the fallback tier on its own so the client can
// retry against it directly when the primary call fails in transit.
func (h *Handler) ListFallbackImages(c *gin.Context) {
	category := c.DefaultQuery("category", "all")

	images, err := h.fallback.List(c.Request.Context(), category)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Categoría inválida"})
		return
	}

	c.JSON(http.StatusOK, models.ImagesResponse{
		Success: true,
		Images:  images,
		Source:  h.fallback.Name(),
	})
}

// UploadSignature issues a folder-scoped, timestamp-bound grant for one
// direct browser upload. Admin only; no fallback tier on the write path.
func (h *Handler) UploadSignature(c *gin.Context) {
	var req models.SignatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Validation failed", "details": err.Error()})
		return
	}

	sig, err := h.cloud.SignUpload(req.Category)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCategory) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Categoría inválida"})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "Servicio de imágenes no configurado"})
		return
	}

	c.JSON(http.StatusOK, sig)
}

// DeleteImage destroys one host asset. The namespace prefix is enforced
// before any network call.
func (h *Handler) DeleteImage(c *gin.Context) {
	publicID := strings.TrimPrefix(c.Param("publicId"), "/")

	err := h.cloud.Delete(c.Request.Context(), publicID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Imagen eliminada"})
	case errors.Is(err, apperrors.ErrInvalidIdentifier):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Identificador inválido"})
	case errors.Is(err, apperrors.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "Servicio de imágenes no configurado"})
	default:
		h.log.Warnw("delete rejected by host", "public_id", publicID, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No se pudo eliminar la imagen"})
	}
}

// GetStats reports per-category asset counts under the base namespace.
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.cloud.CountByCategory(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "Servicio de imágenes no configurado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}
