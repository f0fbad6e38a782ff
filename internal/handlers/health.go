package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/worldscribe/worldscribe/internal/config"
	"github.com/worldscribe/worldscribe/internal/services"
	"gorm.io/gorm"
)

// HealthHandler handles the liveness route
type HealthHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// GetHealth handles GET /api/health
// @Summary Service and database health
// @Tags Health
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	result := services.HealthCheck(h.Cfg, h.DB)
	status := fiber.StatusOK
	if result.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}
