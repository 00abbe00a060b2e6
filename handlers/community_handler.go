package handlers

import (
	"trusttrade_backend/models"
	"trusttrade_backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CommunityHandler struct {
	DB *gorm.DB
}

func NewCommunityHandler(db *gorm.DB) *CommunityHandler {
	return &CommunityHandler{DB: db}
}

// CreateCommunityItemRequest
type CreateCommunityItemRequest struct {
	ItemName string  `json:"item_name"`
	Quantity float64 `json:"quantity"`
	Type     string  `json:"type"`
}

// CommunityItemResponse carries the vendor name for display.
type CommunityItemResponse struct {
	models.CommunityItem
	VendorName string `json:"vendor_name"`
}

// CreateCommunityItem - POST /api/community-items (vendor only)
func (h *CommunityHandler) CreateCommunityItem(c *fiber.Ctx) error {
	var req CreateCommunityItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if req.ItemName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Item name is required"})
	}
	if req.Type != models.CommunityItemExchange && req.Type != models.CommunityItemRequest {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Type must be exchange or request"})
	}

	item := models.CommunityItem{
		VendorID: utils.UserID(c),
		ItemName: req.ItemName,
		Quantity: req.Quantity,
		Type:     req.Type,
	}

	if err := h.DB.Create(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create community item"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Community item created", "data": item})
}

// GetAllCommunityItems - GET /api/community-items
func (h *CommunityHandler) GetAllCommunityItems(c *fiber.Ctx) error {
	var items []models.CommunityItem
	if err := h.DB.Order("created_at desc").Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch community items"})
	}

	vendorIDs := make([]uint, 0, len(items))
	for _, item := range items {
		vendorIDs = append(vendorIDs, item.VendorID)
	}

	names := make(map[uint]string, len(vendorIDs))
	if len(vendorIDs) > 0 {
		var vendors []models.User
		if err := h.DB.Where("id IN ?", vendorIDs).Find(&vendors).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch community items"})
		}
		for _, v := range vendors {
			names[v.ID] = v.Name
		}
	}

	enriched := make([]CommunityItemResponse, 0, len(items))
	for _, item := range items {
		name, ok := names[item.VendorID]
		if !ok {
			name = "Unknown Vendor"
		}
		enriched = append(enriched, CommunityItemResponse{CommunityItem: item, VendorName: name})
	}

	return c.JSON(fiber.Map{"data": enriched})
}
