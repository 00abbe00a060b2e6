package handlers

import (
	"trusttrade_backend/models"
	"trusttrade_backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserHandler struct {
	DB *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{DB: db}
}

// UpdateProfileRequest completes or updates a profile
type UpdateProfileRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// UpdateProfile - PUT /api/users/profile
// First completion grants the default trust score of 100.
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID := utils.UserID(c)

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if !models.ValidRole(req.Role) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown role"})
	}

	var user models.User
	if err := h.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	user.Name = req.Name
	user.Role = req.Role
	if user.TrustScore == nil {
		defaultScore := 100.0
		user.TrustScore = &defaultScore
	}

	if err := h.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update profile"})
	}

	return c.JSON(fiber.Map{"message": "Profile updated", "data": user})
}

// Me - GET /api/users/me
func (h *UserHandler) Me(c *fiber.Ctx) error {
	var user models.User
	if err := h.DB.First(&user, utils.UserID(c)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(fiber.Map{"data": user})
}

// GetAllUsers - GET /api/users
// Everyone except the caller, for picking a message recipient.
func (h *UserHandler) GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := h.DB.Where("id != ?", utils.UserID(c)).Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch users"})
	}
	return c.JSON(fiber.Map{"data": users})
}

// SearchUsers - GET /api/users/search?q=
func (h *UserHandler) SearchUsers(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Query parameter 'q' is required",
		})
	}

	var users []models.User
	err := h.DB.Select("id, name, email, role, trust_score").
		Where("(name LIKE ? OR email LIKE ?) AND id != ?", "%"+query+"%", "%"+query+"%", utils.UserID(c)).
		Limit(10).
		Find(&users).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not search users",
		})
	}

	return c.JSON(fiber.Map{"data": users})
}
