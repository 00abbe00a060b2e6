package handlers

import (
	"errors"

	"trusttrade_backend/internal/metrics"
	"trusttrade_backend/models"
	"trusttrade_backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type GroupBuyHandler struct {
	DB *gorm.DB
}

func NewGroupBuyHandler(db *gorm.DB) *GroupBuyHandler {
	return &GroupBuyHandler{DB: db}
}

// errStaleGroupBuy means another join landed between our read and our write.
var errStaleGroupBuy = errors.New("group buy was modified concurrently")

// CreateGroupBuyRequest
type CreateGroupBuyRequest struct {
	ProductID      uint    `json:"product_id"`
	TargetQuantity float64 `json:"target_quantity"`
	PricePerUnit   float64 `json:"price_per_unit"`
}

// JoinGroupBuyRequest
type JoinGroupBuyRequest struct {
	Quantity float64 `json:"quantity"`
}

// GroupBuyResponse enriches a group buy with display fields for the dashboard.
type GroupBuyResponse struct {
	models.GroupBuy
	ProductName      string `json:"product_name"`
	ParticipantCount int    `json:"participant_count"`
}

// CreateGroupBuy - POST /api/group-buys
// The creator is the first participant; quantity starts at zero.
func (h *GroupBuyHandler) CreateGroupBuy(c *fiber.Ctx) error {
	userID := utils.UserID(c)

	var req CreateGroupBuyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if req.TargetQuantity <= 0 || req.PricePerUnit <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Target quantity and price per unit must be positive"})
	}

	var product models.Product
	if err := h.DB.First(&product, req.ProductID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}

	groupBuy := models.GroupBuy{
		ProductID:       req.ProductID,
		TargetQuantity:  req.TargetQuantity,
		CurrentQuantity: 0,
		PricePerUnit:    req.PricePerUnit,
		Participants:    datatypes.JSONSlice[uint]{userID},
		Status:          models.GroupBuyStatusOpen,
		CreatedBy:       userID,
	}

	if err := h.DB.Create(&groupBuy).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create group buy"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Group buy created", "data": groupBuy})
}

// JoinGroupBuy - POST /api/group-buys/:id/join
// Appends the caller and their quantity, closing the group buy once the
// target is reached. The write is conditional on the quantity we read, so
// two concurrent joins cannot both count from the same snapshot.
func (h *GroupBuyHandler) JoinGroupBuy(c *fiber.Ctx) error {
	userID := utils.UserID(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid group buy ID"})
	}

	var req JoinGroupBuyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if req.Quantity <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Quantity must be positive"})
	}

	var groupBuy models.GroupBuy
	if err := h.DB.First(&groupBuy, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Group buy not found"})
	}

	if groupBuy.Status != models.GroupBuyStatusOpen {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Group buy is not open for new participants"})
	}
	if groupBuy.HasParticipant(userID) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You are already participating in this group buy"})
	}

	if err := h.applyJoin(&groupBuy, userID, req.Quantity); err != nil {
		if errors.Is(err, errStaleGroupBuy) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Group buy changed, please retry"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not join group buy"})
	}

	metrics.GroupBuyJoins.Inc()
	if groupBuy.Status == models.GroupBuyStatusClosed {
		metrics.GroupBuysClosed.Inc()
	}

	return c.JSON(fiber.Map{"message": "Joined group buy", "data": groupBuy})
}

// applyJoin writes the new participant set and quantity with a conditional
// update keyed on the snapshot's current_quantity. RowsAffected == 0 means a
// concurrent join won; the caller sees a retryable conflict instead of a
// silently lost update. On success gb reflects the written state.
func (h *GroupBuyHandler) applyJoin(gb *models.GroupBuy, userID uint, quantity float64) error {
	participants := append(datatypes.JSONSlice[uint]{}, gb.Participants...)
	participants = append(participants, userID)

	newQuantity := gb.CurrentQuantity + quantity
	status := gb.Status
	if newQuantity >= gb.TargetQuantity {
		status = models.GroupBuyStatusClosed
	}

	res := h.DB.Model(&models.GroupBuy{}).
		Where("id = ? AND status = ? AND current_quantity = ?",
			gb.ID, models.GroupBuyStatusOpen, gb.CurrentQuantity).
		Updates(map[string]interface{}{
			"participants":     participants,
			"current_quantity": newQuantity,
			"status":           status,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errStaleGroupBuy
	}

	gb.Participants = participants
	gb.CurrentQuantity = newQuantity
	gb.Status = status
	return nil
}

// GetAllGroupBuys - GET /api/group-buys
func (h *GroupBuyHandler) GetAllGroupBuys(c *fiber.Ctx) error {
	var groupBuys []models.GroupBuy
	if err := h.DB.Order("created_at desc").Find(&groupBuys).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch group buys"})
	}

	enriched, err := h.enrich(groupBuys)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch group buys"})
	}
	return c.JSON(fiber.Map{"data": enriched})
}

// GetMyGroupBuys - GET /api/my-group-buys
// Group buys the caller created or joined.
func (h *GroupBuyHandler) GetMyGroupBuys(c *fiber.Ctx) error {
	userID := utils.UserID(c)

	var all []models.GroupBuy
	if err := h.DB.Order("created_at desc").Find(&all).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch group buys"})
	}

	// Participants live in a JSON column, so membership is filtered here
	// rather than in SQL.
	mine := make([]models.GroupBuy, 0, len(all))
	for _, gb := range all {
		if gb.CreatedBy == userID || gb.HasParticipant(userID) {
			mine = append(mine, gb)
		}
	}

	enriched, err := h.enrich(mine)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch group buys"})
	}
	return c.JSON(fiber.Map{"data": enriched})
}

// enrich attaches product names with a single batch fetch instead of one
// lookup per row.
func (h *GroupBuyHandler) enrich(groupBuys []models.GroupBuy) ([]GroupBuyResponse, error) {
	productIDs := make([]uint, 0, len(groupBuys))
	for _, gb := range groupBuys {
		productIDs = append(productIDs, gb.ProductID)
	}

	names := make(map[uint]string, len(productIDs))
	if len(productIDs) > 0 {
		var products []models.Product
		if err := h.DB.Where("id IN ?", productIDs).Find(&products).Error; err != nil {
			return nil, err
		}
		for _, p := range products {
			names[p.ID] = p.Name
		}
	}

	enriched := make([]GroupBuyResponse, 0, len(groupBuys))
	for _, gb := range groupBuys {
		name, ok := names[gb.ProductID]
		if !ok {
			name = "Unknown Product"
		}
		enriched = append(enriched, GroupBuyResponse{
			GroupBuy:         gb,
			ProductName:      name,
			ParticipantCount: len(gb.Participants),
		})
	}
	return enriched, nil
}
