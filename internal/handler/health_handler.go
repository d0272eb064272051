package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/starterkit/render-starter/internal/common"
	"github.com/starterkit/render-starter/internal/service"
)

// HealthHandler handles the health probes
type HealthHandler struct {
	service *service.HealthService
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(service *service.HealthService) *HealthHandler {
	return &HealthHandler{service: service}
}

// Health handles GET /health. It never fails.
// @Summary Liveness summary with uptime
// @Tags health
// @Produce json
// @Success 200 {object} common.Response
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	common.Success(c, gin.H{
		"status":         "ok",
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
		"uptime_seconds": h.service.Uptime().Seconds(),
	})
}

// Live handles GET /health/live
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} common.Response
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	common.Success(c, gin.H{
		"status":    "alive",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Ready handles GET /health/ready
// Returns 503 when a dependency check fails
// @Summary Readiness probe
// @Tags health
// @Produce json
// @Success 200 {object} common.Response
// @Failure 503 {object} common.Response
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ready, checks := h.service.Ready(c.Request.Context())
	data := gin.H{
		"status":    "ready",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks":    checks,
	}
	if !ready {
		data["status"] = "not ready"
		common.ErrorWithData(c, http.StatusServiceUnavailable, "Service not ready", data)
		return
	}
	common.Success(c, data)
}

// Detailed handles GET /health/detailed
// @Summary Process and dependency report
// @Tags health
// @Produce json
// @Success 200 {object} common.Response{data=service.Details}
// @Failure 503 {object} common.Response{data=service.Details}
// @Router /health/detailed [get]
func (h *HealthHandler) Detailed(c *gin.Context) {
	ready, details := h.service.Detailed(c.Request.Context())
	if !ready {
		common.ErrorWithData(c, http.StatusServiceUnavailable, "One or more dependencies are unavailable", details)
		return
	}
	common.Success(c, details)
}
