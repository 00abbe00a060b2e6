package handlers

import (
	"trusttrade_backend/models"
	"trusttrade_backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type NotificationHandler struct {
	DB *gorm.DB
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{DB: db}
}

// GetNotifications - GET /api/notifications
func (h *NotificationHandler) GetNotifications(c *fiber.Ctx) error {
	var notifications []models.WasteNotification
	if err := h.DB.Where("recipient_id = ?", utils.UserID(c)).
		Order("created_at desc").
		Find(&notifications).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch notifications"})
	}
	return c.JSON(fiber.Map{"data": notifications})
}

// MarkNotificationRead - POST /api/notifications/:id/read
func (h *NotificationHandler) MarkNotificationRead(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid notification ID"})
	}

	var notification models.WasteNotification
	if err := h.DB.First(&notification, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Notification not found"})
	}
	if notification.RecipientID != utils.UserID(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not your notification"})
	}

	if err := h.DB.Model(&notification).Update("read", true).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update notification"})
	}

	return c.JSON(fiber.Map{"message": "Notification marked as read"})
}
