package handlers

import (
	"trusttrade_backend/models"
	"trusttrade_backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProductHandler struct {
	DB *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{DB: db}
}

// CreateProductRequest
type CreateProductRequest struct {
	Name      string   `json:"name"`
	BulkPrice float64  `json:"bulk_price"`
	Discount  *float64 `json:"discount"`
	Stock     float64  `json:"stock"`
	Unit      string   `json:"unit"`
}

// CreateProduct - POST /api/products (wholesaler only)
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if req.Name == "" || req.BulkPrice <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name and a positive bulk price are required"})
	}
	if req.Stock < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Stock cannot be negative"})
	}
	if !models.ValidUnit(req.Unit) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unit must be kg, pieces, liters or grams"})
	}

	product := models.Product{
		Name:      req.Name,
		OwnerID:   utils.UserID(c),
		BulkPrice: req.BulkPrice,
		Discount:  req.Discount,
		Stock:     req.Stock,
		Unit:      req.Unit,
	}

	if err := h.DB.Create(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create product"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Product created", "data": product})
}

// GetAllProducts - GET /api/products
func (h *ProductHandler) GetAllProducts(c *fiber.Ctx) error {
	var products []models.Product
	if err := h.DB.Order("created_at desc").Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch products"})
	}
	return c.JSON(fiber.Map{"data": products})
}

// GetMyProducts - GET /api/my-products
func (h *ProductHandler) GetMyProducts(c *fiber.Ctx) error {
	var products []models.Product
	if err := h.DB.Where("owner_id = ?", utils.UserID(c)).
		Order("created_at desc").
		Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch products"})
	}
	return c.JSON(fiber.Map{"data": products})
}
