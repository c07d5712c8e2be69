package controller

import (
	"net/http"
	"time"

	"coolenergy/models"
	"coolenergy/utils"

	"github.com/gin-gonic/gin"
)

// Login exchanges the admin password for a 24h session token. Wrong
// passwords and a missing configured hash look identical to the caller.
func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Validation failed", "details": err.Error()})
		return
	}

	if h.cfg.AdminPasswordHash == "" {
		h.log.Warnw("login attempted with no admin hash configured")
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Password incorrecto"})
		return
	}
	if err := utils.ComparePass(req.Password, h.cfg.AdminPasswordHash); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Password incorrecto"})
		return
	}

	token, err := utils.SignedToken("admin", h.cfg.JWTSecret)
	if err != nil {
		h.log.Errorw("token signing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "Bearer",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}
