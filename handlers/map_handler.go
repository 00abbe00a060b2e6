package handlers

import (
	"trusttrade_backend/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MapHandler struct {
	DB *gorm.DB
}

func NewMapHandler(db *gorm.DB) *MapHandler {
	return &MapHandler{DB: db}
}

type mapLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type mapPin struct {
	ID       uint        `json:"id"`
	Name     string      `json:"name"`
	Location mapLocation `json:"location"`
}

// GetMapData - GET /api/map
// Projects supplier warehouses and located vendors onto the map. Vendors
// without a stored location are omitted.
func (h *MapHandler) GetMapData(c *fiber.Ctx) error {
	var suppliers []models.Supplier
	if err := h.DB.Find(&suppliers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch map data"})
	}

	var vendors []models.User
	if err := h.DB.Where("role = ?", models.RoleVendor).Find(&vendors).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch map data"})
	}

	wholesalerPins := make([]mapPin, 0, len(suppliers))
	for _, s := range suppliers {
		wholesalerPins = append(wholesalerPins, mapPin{
			ID:       s.ID,
			Name:     s.Name,
			Location: mapLocation{Lat: s.Latitude, Lng: s.Longitude},
		})
	}

	vendorPins := make([]mapPin, 0, len(vendors))
	for _, v := range vendors {
		if v.Latitude == nil || v.Longitude == nil {
			continue
		}
		vendorPins = append(vendorPins, mapPin{
			ID:       v.ID,
			Name:     v.Name,
			Location: mapLocation{Lat: *v.Latitude, Lng: *v.Longitude},
		})
	}

	return c.JSON(fiber.Map{
		"wholesalers": wholesalerPins,
		"vendors":     vendorPins,
	})
}
