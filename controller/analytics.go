package controller

import (
	"net/http"

	"coolenergy/models"

	"github.com/gin-gonic/gin"
)

// RecordPageview is fire-and-forget: validated, counted, acknowledged.
func (h *Handler) RecordPageview(c *gin.Context) {
	var req models.PageviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Validation failed", "details": err.Error()})
		return
	}

	h.analytics.RecordPageview(req.Page, req.SessionID)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) RecordEvent(c *gin.Context) {
	var req models.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Validation failed", "details": err.Error()})
		return
	}

	h.analytics.RecordEvent(req.Event, req.Data)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AnalyticsSummary snapshots the in-memory aggregate for the admin panel.
func (h *Handler) AnalyticsSummary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "analytics": h.analytics.Snapshot()})
}
