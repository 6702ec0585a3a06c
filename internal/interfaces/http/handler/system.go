package handler

import (
	"time"

	"github.com/gin-gonic/gin"
)

// SystemHandler handles health and metadata endpoints
type SystemHandler struct {
	BaseHandler
	appName string
	env     string
	started time.Time
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(appName, env string) *SystemHandler {
	return &SystemHandler{
		appName: appName,
		env:     env,
		started: time.Now(),
	}
}

// Health handles GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	h.Success(c, gin.H{
		"status":  "ok",
		"service": h.appName,
		"env":     h.env,
		"uptime":  time.Since(h.started).Round(time.Second).String(),
	})
}
