package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"missing-person-tracker/internal/domain"
	"missing-person-tracker/internal/middleware"
	"missing-person-tracker/internal/service/location"
)

type LocationHandler struct {
	locationService location.Service
}

func NewLocationHandler(locationService location.Service) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

func (h *LocationHandler) Update(c *fiber.Ctx) error {
	var fix domain.LocationFixInput
	if err := c.BodyParser(&fix); err != nil {
		return middleware.BadRequest("Invalid coordinates")
	}

	if err := h.locationService.Update(c.Context(), middleware.GetUserID(c), fix); err != nil {
		return middleware.MapError(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Location updated successfully",
	})
}

func (h *LocationHandler) History(c *fiber.Ctx) error {
	var target *uuid.UUID
	if raw := c.Query("userId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return middleware.BadRequest("Invalid userId")
		}
		target = &id
	}

	history, err := h.locationService.History(c.Context(), middleware.GetActor(c), target,
		c.QueryInt("limit", domain.DefaultHistoryLimit))
	if err != nil {
		return middleware.MapError(err)
	}
	return c.JSON(fiber.Map{"history": history})
}

func (h *LocationHandler) ActiveUsers(c *fiber.Ctx) error {
	locations, err := h.locationService.ActiveUsers(c.Context(), middleware.GetActor(c))
	if err != nil {
		return middleware.MapError(err)
	}
	return c.JSON(fiber.Map{
		"locations": locations,
		"count":     len(locations),
	})
}
