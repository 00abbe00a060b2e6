package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"trusttrade_backend/internal/notifier"
	"trusttrade_backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createListingBody(itemName string, expiry *time.Time) fiber.Map {
	body := fiber.Map{
		"item_name":    itemName,
		"quantity":     10,
		"unit":         models.UnitKg,
		"desired_swap": "barter",
	}
	if expiry != nil {
		body["expiry_date"] = expiry.Format(time.RFC3339)
	}
	return body
}

func TestCreateListingUrgencyDerivation(t *testing.T) {
	app, db := setupTestApp(t)
	vendor := createTestUser(t, db, "Raju", models.RoleVendor)
	token := tokenFor(t, vendor)

	cases := []struct {
		name  string
		hours float64
		want  string
	}{
		{"three hours out is high", 3, models.UrgencyHigh},
		{"twenty hours out is medium", 20, models.UrgencyMedium},
		{"thirty hours out is low", 30, models.UrgencyLow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			expiry := time.Now().Add(time.Duration(tc.hours * float64(time.Hour)))
			resp := doRequest(t, app, http.MethodPost, "/api/waste-listings", token,
				createListingBody(tc.name, &expiry))
			require.Equal(t, http.StatusCreated, resp.StatusCode)

			var listing models.WasteListing
			require.NoError(t, db.Where("item_name = ?", tc.name).First(&listing).Error)
			assert.Equal(t, tc.want, listing.Urgency)
			assert.Equal(t, models.ListingStatusAvailable, listing.Status)
		})
	}

	// No expiry date means low urgency.
	resp := doRequest(t, app, http.MethodPost, "/api/waste-listings", token, createListingBody("no expiry", nil))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var listing models.WasteListing
	require.NoError(t, db.Where("item_name = ?", "no expiry").First(&listing).Error)
	assert.Equal(t, models.UrgencyLow, listing.Urgency)
}

func TestFanOutCapsAtFiveOtherUsers(t *testing.T) {
	_, db := setupTestApp(t)

	lister := createTestUser(t, db, "Lister", models.RoleVendor)
	for i := 0; i < 7; i++ {
		createTestUser(t, db, fmt.Sprintf("Vendor %d", i), models.RoleVendor)
	}

	listing := models.WasteListing{
		VendorID: lister.ID, ItemName: "Leftover Buns", Quantity: 12, Unit: models.UnitPieces,
		DesiredSwap: "barter", Status: models.ListingStatusAvailable, Urgency: models.UrgencyMedium,
	}
	require.NoError(t, db.Create(&listing).Error)

	n := notifier.New(db, nil)
	require.NoError(t, n.FanOut(listing.ID))

	var notifications []models.WasteNotification
	require.NoError(t, db.Where("type = ?", models.NotificationNewListing).Find(&notifications).Error)
	require.Len(t, notifications, 5)

	for _, notification := range notifications {
		assert.NotEqual(t, lister.ID, notification.RecipientID, "lister must not be notified of their own listing")
		assert.Equal(t, lister.ID, notification.SenderID)
		assert.Equal(t, listing.ID, notification.ListingID)
		assert.False(t, notification.Read)
		assert.Contains(t, notification.Message, "Leftover Buns")
		assert.Contains(t, notification.Message, "medium urgency")
	}
}

func TestExpressInterestNotifiesOwnerWithoutReserving(t *testing.T) {
	app, db := setupTestApp(t)

	owner := createTestUser(t, db, "Owner", models.RoleVendor)
	interested := createTestUser(t, db, "Interested Vendor", models.RoleVendor)

	listing := models.WasteListing{
		VendorID: owner.ID, ItemName: "Spare Tomatoes", Quantity: 4, Unit: models.UnitKg,
		DesiredSwap: "cash", Status: models.ListingStatusAvailable, Urgency: models.UrgencyLow,
	}
	require.NoError(t, db.Create(&listing).Error)

	resp := doRequest(t, app, http.MethodPost, fmt.Sprintf("/api/waste-listings/%d/interest", listing.ID),
		tokenFor(t, interested), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var notification models.WasteNotification
	require.NoError(t, db.Where("type = ?", models.NotificationInterest).First(&notification).Error)
	assert.Equal(t, owner.ID, notification.RecipientID)
	assert.Equal(t, interested.ID, notification.SenderID)
	assert.Contains(t, notification.Message, "Interested Vendor is interested in your Spare Tomatoes")

	// Interest never reserves the listing.
	var stored models.WasteListing
	require.NoError(t, db.First(&stored, listing.ID).Error)
	assert.Equal(t, models.ListingStatusAvailable, stored.Status)
}

func TestGetGreenPointsSumsLedger(t *testing.T) {
	app, db := setupTestApp(t)
	user := createTestUser(t, db, "Collector", models.RoleVendor)
	other := createTestUser(t, db, "Other", models.RoleVendor)

	entries := []models.GreenPoint{
		{UserID: user.ID, Points: 5, EarnedFrom: "waste_exchange"},
		{UserID: user.ID, Points: 3, EarnedFrom: "successful_pickup"},
		{UserID: user.ID, Points: -1, EarnedFrom: "adjustment"},
		{UserID: other.ID, Points: 50, EarnedFrom: "waste_exchange"},
	}
	require.NoError(t, db.Create(&entries).Error)

	resp := doRequest(t, app, http.MethodGet, "/api/green-points", tokenFor(t, user), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Points int64 `json:"points"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, int64(7), body.Points)
}

func TestNotificationReadFlow(t *testing.T) {
	app, db := setupTestApp(t)

	recipient := createTestUser(t, db, "Recipient", models.RoleVendor)
	sender := createTestUser(t, db, "Sender", models.RoleVendor)

	notification := models.WasteNotification{
		RecipientID: recipient.ID, SenderID: sender.ID, ListingID: 1,
		Type: models.NotificationNewListing, Message: "New waste listing", Read: false,
	}
	require.NoError(t, db.Create(&notification).Error)

	// Only the recipient may mark it read.
	resp := doRequest(t, app, http.MethodPost, fmt.Sprintf("/api/notifications/%d/read", notification.ID),
		tokenFor(t, sender), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, fmt.Sprintf("/api/notifications/%d/read", notification.ID),
		tokenFor(t, recipient), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stored models.WasteNotification
	require.NoError(t, db.First(&stored, notification.ID).Error)
	assert.True(t, stored.Read)
}
