package handlers

import (
	"sort"

	"trusttrade_backend/internal/metrics"
	"trusttrade_backend/internal/ws"
	"trusttrade_backend/models"
	"trusttrade_backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MessageHandler struct {
	DB  *gorm.DB
	Hub *ws.Hub
}

func NewMessageHandler(db *gorm.DB, hub *ws.Hub) *MessageHandler {
	return &MessageHandler{DB: db, Hub: hub}
}

// SendMessageRequest
type SendMessageRequest struct {
	To      uint   `json:"to"`
	Content string `json:"content"`
}

// SendMessage - POST /api/messages
func (h *MessageHandler) SendMessage(c *fiber.Ctx) error {
	userID := utils.UserID(c)

	var req SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Content is required"})
	}
	if req.To == userID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot message yourself"})
	}

	var recipient models.User
	if err := h.DB.First(&recipient, req.To).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Recipient not found"})
	}

	message := models.Message{
		FromID:  userID,
		ToID:    req.To,
		Content: req.Content,
		// Defaulting to English for now; the language picker never shipped.
		Language: "en",
	}

	if err := h.DB.Create(&message).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not send message"})
	}

	metrics.MessagesSent.Inc()
	if h.Hub != nil {
		h.Hub.SendToUser(req.To, fiber.Map{"type": "message", "data": message})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Message sent", "data": message})
}

// ListMessages - GET /api/messages/:otherUserId
// The conversation is two indexed directional lookups merged and sorted by
// creation time. No pagination.
func (h *MessageHandler) ListMessages(c *fiber.Ctx) error {
	userID := utils.UserID(c)

	otherID, err := c.ParamsInt("otherUserId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	var sent []models.Message
	if err := h.DB.Where("from_id = ? AND to_id = ?", userID, otherID).Find(&sent).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch messages"})
	}

	var received []models.Message
	if err := h.DB.Where("from_id = ? AND to_id = ?", otherID, userID).Find(&received).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch messages"})
	}

	conversation := append(sent, received...)
	sort.Slice(conversation, func(i, j int) bool {
		if conversation[i].CreatedAt.Equal(conversation[j].CreatedAt) {
			return conversation[i].ID < conversation[j].ID
		}
		return conversation[i].CreatedAt.Before(conversation[j].CreatedAt)
	})

	return c.JSON(fiber.Map{"data": conversation})
}
