package handlers

import (
	"trusttrade_backend/models"
	"trusttrade_backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SupplierHandler struct {
	DB *gorm.DB
}

func NewSupplierHandler(db *gorm.DB) *SupplierHandler {
	return &SupplierHandler{DB: db}
}

// CreateSupplierRequest
type CreateSupplierRequest struct {
	Name           string  `json:"name"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	DeliveryRadius float64 `json:"delivery_radius"`
}

// CreateSupplier - POST /api/suppliers (wholesaler only)
func (h *SupplierHandler) CreateSupplier(c *fiber.Ctx) error {
	var req CreateSupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}

	supplier := models.Supplier{
		Name:           req.Name,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		DeliveryRadius: req.DeliveryRadius,
		OwnerID:        utils.UserID(c),
	}

	if err := h.DB.Create(&supplier).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create supplier"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Supplier created", "data": supplier})
}

// GetAllSuppliers - GET /api/suppliers
func (h *SupplierHandler) GetAllSuppliers(c *fiber.Ctx) error {
	var suppliers []models.Supplier
	if err := h.DB.Find(&suppliers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch suppliers"})
	}
	return c.JSON(fiber.Map{"data": suppliers})
}

// GetMySuppliers - GET /api/my-suppliers
func (h *SupplierHandler) GetMySuppliers(c *fiber.Ctx) error {
	var suppliers []models.Supplier
	if err := h.DB.Where("owner_id = ?", utils.UserID(c)).Find(&suppliers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch suppliers"})
	}
	return c.JSON(fiber.Map{"data": suppliers})
}
