package handlers

import (
	"fmt"
	"time"

	"trusttrade_backend/internal/notifier"
	"trusttrade_backend/internal/ws"
	"trusttrade_backend/models"
	"trusttrade_backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type WasteHandler struct {
	DB       *gorm.DB
	Hub      *ws.Hub
	Notifier *notifier.Notifier
}

func NewWasteHandler(db *gorm.DB, hub *ws.Hub, n *notifier.Notifier) *WasteHandler {
	return &WasteHandler{DB: db, Hub: hub, Notifier: n}
}

// CreateListingRequest
type CreateListingRequest struct {
	ItemName    string   `json:"item_name"`
	Quantity    float64  `json:"quantity"`
	Unit        string   `json:"unit"`
	ExpiryDate  *string  `json:"expiry_date"` // RFC 3339
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Address     *string  `json:"address"`
	DesiredSwap string   `json:"desired_swap"`
	Category    *string  `json:"category"`
}

// WasteListingResponse carries the vendor name for display.
type WasteListingResponse struct {
	models.WasteListing
	VendorName string `json:"vendor_name"`
}

// CreateListing - POST /api/waste-listings
// Urgency is derived from the expiry date once, here, and never recomputed.
// The new-listing fan-out runs asynchronously after the insert.
func (h *WasteHandler) CreateListing(c *fiber.Ctx) error {
	var req CreateListingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if req.ItemName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Item name is required"})
	}
	if !models.ValidUnit(req.Unit) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unit must be kg, pieces, liters or grams"})
	}

	var expiry *time.Time
	if req.ExpiryDate != nil && *req.ExpiryDate != "" {
		parsed, err := time.Parse(time.RFC3339, *req.ExpiryDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Expiry date must be RFC 3339"})
		}
		expiry = &parsed
	}

	listing := models.WasteListing{
		VendorID:    utils.UserID(c),
		ItemName:    req.ItemName,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		ExpiryDate:  expiry,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Address:     req.Address,
		DesiredSwap: req.DesiredSwap,
		Status:      models.ListingStatusAvailable,
		Urgency:     models.UrgencyForExpiry(expiry, time.Now()),
		Category:    req.Category,
	}

	if err := h.DB.Create(&listing).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create listing"})
	}

	if h.Notifier != nil {
		h.Notifier.ListingCreated(listing.ID)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Listing created", "data": listing})
}

// GetAvailableListings - GET /api/waste-listings
func (h *WasteHandler) GetAvailableListings(c *fiber.Ctx) error {
	var listings []models.WasteListing
	if err := h.DB.Where("status = ?", models.ListingStatusAvailable).
		Order("created_at desc").
		Find(&listings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch listings"})
	}

	vendorIDs := make([]uint, 0, len(listings))
	for _, l := range listings {
		vendorIDs = append(vendorIDs, l.VendorID)
	}

	names := make(map[uint]string, len(vendorIDs))
	if len(vendorIDs) > 0 {
		var vendors []models.User
		if err := h.DB.Where("id IN ?", vendorIDs).Find(&vendors).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch listings"})
		}
		for _, v := range vendors {
			names[v.ID] = v.Name
		}
	}

	enriched := make([]WasteListingResponse, 0, len(listings))
	for _, l := range listings {
		name, ok := names[l.VendorID]
		if !ok {
			name = "Unknown Vendor"
		}
		enriched = append(enriched, WasteListingResponse{WasteListing: l, VendorName: name})
	}

	return c.JSON(fiber.Map{"data": enriched})
}

// GetMyListings - GET /api/my-waste-listings
func (h *WasteHandler) GetMyListings(c *fiber.Ctx) error {
	var listings []models.WasteListing
	if err := h.DB.Where("vendor_id = ?", utils.UserID(c)).
		Order("created_at desc").
		Find(&listings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch listings"})
	}
	return c.JSON(fiber.Map{"data": listings})
}

// ExpressInterest - POST /api/waste-listings/:id/interest
// Notifies the listing owner. The listing itself is not reserved; its status
// stays available until a pickup flow exists.
func (h *WasteHandler) ExpressInterest(c *fiber.Ctx) error {
	userID := utils.UserID(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid listing ID"})
	}

	var listing models.WasteListing
	if err := h.DB.First(&listing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Listing not found"})
	}

	var sender models.User
	if err := h.DB.First(&sender, userID).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}

	senderName := sender.Name
	if senderName == "" {
		senderName = "Someone"
	}

	notification := models.WasteNotification{
		RecipientID: listing.VendorID,
		SenderID:    userID,
		ListingID:   listing.ID,
		Type:        models.NotificationInterest,
		Message:     fmt.Sprintf("%s is interested in your %s", senderName, listing.ItemName),
		Read:        false,
	}

	if err := h.DB.Create(&notification).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not express interest"})
	}

	if h.Hub != nil {
		h.Hub.SendToUser(listing.VendorID, fiber.Map{"type": "notification", "data": notification})
	}

	return c.JSON(fiber.Map{"message": "Interest sent to the listing owner"})
}

// GetGreenPoints - GET /api/green-points
// The balance is the sum of the caller's ledger rows, computed at read time.
func (h *WasteHandler) GetGreenPoints(c *fiber.Ctx) error {
	var total int64
	if err := h.DB.Model(&models.GreenPoint{}).
		Where("user_id = ?", utils.UserID(c)).
		Select("COALESCE(SUM(points), 0)").
		Scan(&total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch green points"})
	}
	return c.JSON(fiber.Map{"points": total})
}
