package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"trusttrade_backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func groupBuyJoinPath(id uint) string {
	return fmt.Sprintf("/api/group-buys/%d/join", id)
}

func TestCreateGroupBuyProductMissing(t *testing.T) {
	app, db := setupTestApp(t)
	vendor := createTestUser(t, db, "Raju", models.RoleVendor)

	resp := doRequest(t, app, http.MethodPost, "/api/group-buys", tokenFor(t, vendor), fiber.Map{
		"product_id":      9999,
		"target_quantity": 100,
		"price_per_unit":  10,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateGroupBuyRequiresAuth(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/group-buys", "", fiber.Map{
		"product_id":      1,
		"target_quantity": 100,
		"price_per_unit":  10,
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGroupBuyThresholdScenario(t *testing.T) {
	app, db := setupTestApp(t)

	wholesaler := createTestUser(t, db, "Mumbai Masala Co.", models.RoleWholesaler)
	creator := createTestUser(t, db, "Raju", models.RoleVendor)
	second := createTestUser(t, db, "Priya", models.RoleVendor)
	third := createTestUser(t, db, "Sanjay", models.RoleVendor)

	product := models.Product{Name: "Potatoes (per kg)", OwnerID: wholesaler.ID, BulkPrice: 30, Stock: 5000, Unit: models.UnitKg}
	require.NoError(t, db.Create(&product).Error)

	resp := doRequest(t, app, http.MethodPost, "/api/group-buys", tokenFor(t, creator), fiber.Map{
		"product_id":      product.ID,
		"target_quantity": 100,
		"price_per_unit":  10,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var gb models.GroupBuy
	require.NoError(t, db.First(&gb).Error)
	assert.Equal(t, models.GroupBuyStatusOpen, gb.Status)
	assert.Equal(t, float64(0), gb.CurrentQuantity)
	assert.Equal(t, []uint{creator.ID}, []uint(gb.Participants))

	// First join stays below the target.
	resp = doRequest(t, app, http.MethodPost, groupBuyJoinPath(gb.ID), tokenFor(t, second), fiber.Map{"quantity": 60})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&gb, gb.ID).Error)
	assert.Equal(t, models.GroupBuyStatusOpen, gb.Status)
	assert.Equal(t, float64(60), gb.CurrentQuantity)
	assert.Len(t, gb.Participants, 2)

	// Second join reaches the target and closes the group buy.
	resp = doRequest(t, app, http.MethodPost, groupBuyJoinPath(gb.ID), tokenFor(t, third), fiber.Map{"quantity": 40})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&gb, gb.ID).Error)
	assert.Equal(t, models.GroupBuyStatusClosed, gb.Status)
	assert.Equal(t, float64(100), gb.CurrentQuantity)

	// Joins after closure must fail.
	late := createTestUser(t, db, "Late Vendor", models.RoleVendor)
	resp = doRequest(t, app, http.MethodPost, groupBuyJoinPath(gb.ID), tokenFor(t, late), fiber.Map{"quantity": 5})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestJoinGroupBuyDuplicateParticipantRejected(t *testing.T) {
	app, db := setupTestApp(t)

	wholesaler := createTestUser(t, db, "Wholesaler", models.RoleWholesaler)
	creator := createTestUser(t, db, "Creator", models.RoleVendor)
	joiner := createTestUser(t, db, "Joiner", models.RoleVendor)

	product := models.Product{Name: "Onions (per kg)", OwnerID: wholesaler.ID, BulkPrice: 40, Stock: 3000, Unit: models.UnitKg}
	require.NoError(t, db.Create(&product).Error)

	gb := models.GroupBuy{
		ProductID: product.ID, TargetQuantity: 500, PricePerUnit: 35,
		Participants: datatypes.JSONSlice[uint]{creator.ID},
		Status:       models.GroupBuyStatusOpen, CreatedBy: creator.ID,
	}
	require.NoError(t, db.Create(&gb).Error)

	resp := doRequest(t, app, http.MethodPost, groupBuyJoinPath(gb.ID), tokenFor(t, joiner), fiber.Map{"quantity": 50})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, groupBuyJoinPath(gb.ID), tokenFor(t, joiner), fiber.Map{"quantity": 50})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// The creator counts as a participant from creation.
	resp = doRequest(t, app, http.MethodPost, groupBuyJoinPath(gb.ID), tokenFor(t, creator), fiber.Map{"quantity": 10})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

// The original flow read the counter and wrote it back unguarded, so two
// simultaneous joins could both count from the same snapshot. This
// implementation deliberately closes that gap: the write is conditional on
// the snapshot still being current, and the loser gets a retryable conflict.
func TestJoinGroupBuyStaleSnapshotRejected(t *testing.T) {
	_, db := setupTestApp(t)
	h := NewGroupBuyHandler(db)

	wholesaler := createTestUser(t, db, "Wholesaler", models.RoleWholesaler)
	creator := createTestUser(t, db, "Creator", models.RoleVendor)
	first := createTestUser(t, db, "First", models.RoleVendor)
	second := createTestUser(t, db, "Second", models.RoleVendor)

	product := models.Product{Name: "Besan (per kg)", OwnerID: wholesaler.ID, BulkPrice: 80, Stock: 2000, Unit: models.UnitKg}
	require.NoError(t, db.Create(&product).Error)

	gb := models.GroupBuy{
		ProductID: product.ID, TargetQuantity: 1000, PricePerUnit: 75,
		Participants: datatypes.JSONSlice[uint]{creator.ID},
		Status:       models.GroupBuyStatusOpen, CreatedBy: creator.ID,
	}
	require.NoError(t, db.Create(&gb).Error)

	// Both callers read the same snapshot.
	snapshotA := gb
	snapshotB := gb

	require.NoError(t, h.applyJoin(&snapshotA, first.ID, 100))

	err := h.applyJoin(&snapshotB, second.ID, 50)
	assert.ErrorIs(t, err, errStaleGroupBuy)

	// Only the first join landed.
	var stored models.GroupBuy
	require.NoError(t, db.First(&stored, gb.ID).Error)
	assert.Equal(t, float64(100), stored.CurrentQuantity)
	assert.Len(t, stored.Participants, 2)
}

func TestGetGroupBuysEnrichment(t *testing.T) {
	app, db := setupTestApp(t)

	wholesaler := createTestUser(t, db, "Wholesaler", models.RoleWholesaler)
	creator := createTestUser(t, db, "Creator", models.RoleVendor)
	other := createTestUser(t, db, "Other", models.RoleVendor)

	product := models.Product{Name: "Cooking Oil (per litre)", OwnerID: wholesaler.ID, BulkPrice: 150, Stock: 1500, Unit: models.UnitLiters}
	require.NoError(t, db.Create(&product).Error)

	gb := models.GroupBuy{
		ProductID: product.ID, TargetQuantity: 300, PricePerUnit: 140,
		Participants: datatypes.JSONSlice[uint]{creator.ID, other.ID},
		Status:       models.GroupBuyStatusOpen, CreatedBy: creator.ID,
	}
	require.NoError(t, db.Create(&gb).Error)

	resp := doRequest(t, app, http.MethodGet, "/api/group-buys", tokenFor(t, other), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data []GroupBuyResponse `json:"data"`
	}
	decodeBody(t, resp, &body)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Cooking Oil (per litre)", body.Data[0].ProductName)
	assert.Equal(t, 2, body.Data[0].ParticipantCount)

	// getByUser filters to creator or participant.
	stranger := createTestUser(t, db, "Stranger", models.RoleVendor)
	resp = doRequest(t, app, http.MethodGet, "/api/my-group-buys", tokenFor(t, stranger), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &body)
	assert.Empty(t, body.Data)

	resp = doRequest(t, app, http.MethodGet, "/api/my-group-buys", tokenFor(t, other), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &body)
	assert.Len(t, body.Data, 1)
}
