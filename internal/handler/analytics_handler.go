package handler

import (
	"github.com/gofiber/fiber/v2"

	"missing-person-tracker/internal/service/analytics"
)

type AnalyticsHandler struct {
	analyticsService analytics.Service
}

func NewAnalyticsHandler(analyticsService analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.analyticsService.GetDashboard(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}
