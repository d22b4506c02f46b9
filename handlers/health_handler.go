package handlers

import (
	"net/http"

	"github.com/VoyageGenie/voyage-backend/services"
	"github.com/VoyageGenie/voyage-backend/types"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthService *services.HealthService
}

func NewHealthHandler(healthService *services.HealthService) *HealthHandler {
	return &HealthHandler{healthService: healthService}
}

// Liveness reports that the process is running. No dependency checks.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": types.HealthStatusUp})
}

// Readiness reports whether the service can take traffic.
func (h *HealthHandler) Readiness(c *gin.Context) {
	check := h.healthService.CheckHealth(c.Request.Context())

	status := http.StatusOK
	if check.Status == types.HealthStatusDown {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"status": check.Status})
}

// Detailed returns the full per-component health breakdown.
func (h *HealthHandler) Detailed(c *gin.Context) {
	check := h.healthService.CheckHealth(c.Request.Context())

	status := http.StatusOK
	if check.Status == types.HealthStatusDown {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, check)
}
