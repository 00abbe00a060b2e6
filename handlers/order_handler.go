package handlers

import (
	"trusttrade_backend/models"
	"trusttrade_backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type OrderHandler struct {
	DB *gorm.DB
}

func NewOrderHandler(db *gorm.DB) *OrderHandler {
	return &OrderHandler{DB: db}
}

// CreateOrderRequest
type CreateOrderRequest struct {
	ProductID  uint    `json:"product_id"`
	Quantity   float64 `json:"quantity"`
	IsGroupBuy bool    `json:"is_group_buy"`
}

// UpdateOrderStatusRequest
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// CreateOrder - POST /api/orders (vendor only)
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if req.Quantity <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Quantity must be positive"})
	}

	var product models.Product
	if err := h.DB.First(&product, req.ProductID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}

	order := models.Order{
		VendorID:   utils.UserID(c),
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		IsGroupBuy: req.IsGroupBuy,
		Status:     models.OrderStatusPending,
	}

	if err := h.DB.Create(&order).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create order"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Order created", "data": order})
}

// GetMyOrders - GET /api/my-orders
func (h *OrderHandler) GetMyOrders(c *fiber.Ctx) error {
	var orders []models.Order
	if err := h.DB.Where("vendor_id = ?", utils.UserID(c)).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch orders"})
	}
	return c.JSON(fiber.Map{"data": orders})
}

// UpdateOrderStatus - PUT /api/orders/:id/status
func (h *OrderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	var req UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if !models.ValidOrderStatus(req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Status must be pending, completed or cancelled"})
	}

	var order models.Order
	if err := h.DB.First(&order, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	}
	if order.VendorID != utils.UserID(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not your order"})
	}

	if err := h.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update order"})
	}

	return c.JSON(fiber.Map{"message": "Order updated", "data": order})
}
