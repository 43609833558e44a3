package handler

import (
	"github.com/gofiber/fiber/v2"

	"missing-person-tracker/internal/domain"
	"missing-person-tracker/internal/middleware"
	"missing-person-tracker/internal/service/notification"
)

type NotificationHandler struct {
	notificationService notification.Service
}

func NewNotificationHandler(notificationService notification.Service) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	notifications, err := h.notificationService.List(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": notifications})
}

// MarkRead marks one notification when notification_id is given, otherwise
// all of the caller's notifications.
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	var input domain.MarkReadInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return middleware.BadRequest("Invalid request body")
		}
	}

	userID := middleware.GetUserID(c)
	var err error
	if input.NotificationID != nil {
		err = h.notificationService.MarkAsRead(c.Context(), userID, *input.NotificationID)
	} else {
		err = h.notificationService.MarkAllAsRead(c.Context(), userID)
	}
	if err != nil {
		return middleware.MapError(err)
	}

	return c.JSON(fiber.Map{"message": "Notification(s) marked as read"})
}

func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	count, err := h.notificationService.UnreadCount(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"count": count})
}
