package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/idms/employee-portal/internal/service"
)

// AnalyticsHandler exposes the dashboard analytics summary.
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
}

// NewAnalyticsHandler constructs handler.
func NewAnalyticsHandler(analytics *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Summary handles GET /api/analytics/summary.
func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.analytics.Summary(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": summary})
}
