package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"tripwise/pkg/utils"
)

type HealthController struct {
	startedAt time.Time
}

func NewHealthController() *HealthController {
	return &HealthController{startedAt: time.Now()}
}

// Health godoc
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Router /api/health [get]
func (h *HealthController) Health(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{
		"status": "ok",
		"uptime": time.Since(h.startedAt).Round(time.Second).String(),
	}, "Service is healthy")
}
