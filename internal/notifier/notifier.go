package notifier

import (
	"context"
	"fmt"
	"log"

	"trusttrade_backend/internal/metrics"
	"trusttrade_backend/internal/ws"
	"trusttrade_backend/models"

	"gorm.io/gorm"
)

// Notifier runs the asynchronous fan-out that follows waste listing creation.
// Recipients are the first five other users regardless of proximity; the
// location-based matching hinted at in the product copy was never built.
type Notifier struct {
	DB  *gorm.DB
	Hub *ws.Hub

	jobs chan uint
}

const fanOutLimit = 5

func New(db *gorm.DB, hub *ws.Hub) *Notifier {
	return &Notifier{
		DB:   db,
		Hub:  hub,
		jobs: make(chan uint, 64),
	}
}

// ListingCreated enqueues a fan-out for the given listing. It never blocks
// the creating request; if the queue is full the fan-out is dropped with a
// log line, mirroring the fire-and-forget scheduling of the original flow.
func (n *Notifier) ListingCreated(listingID uint) {
	select {
	case n.jobs <- listingID:
	default:
		log.Printf("Notification queue full, dropping fan-out for listing %d", listingID)
	}
}

// Run processes fan-out jobs until the context is cancelled.
func (n *Notifier) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case listingID := <-n.jobs:
			if err := n.FanOut(listingID); err != nil {
				log.Printf("Fan-out for listing %d failed: %v", listingID, err)
			}
		}
	}
}

// FanOut creates new_listing notifications for up to five users other than
// the lister and pushes them over the websocket hub.
func (n *Notifier) FanOut(listingID uint) error {
	var listing models.WasteListing
	if err := n.DB.First(&listing, listingID).Error; err != nil {
		return err
	}

	var recipients []models.User
	if err := n.DB.Where("id != ?", listing.VendorID).
		Order("id").
		Limit(fanOutLimit).
		Find(&recipients).Error; err != nil {
		return err
	}

	for _, recipient := range recipients {
		notification := models.WasteNotification{
			RecipientID: recipient.ID,
			SenderID:    listing.VendorID,
			ListingID:   listing.ID,
			Type:        models.NotificationNewListing,
			Message: fmt.Sprintf("New waste listing: %s (%g %s) - %s urgency",
				listing.ItemName, listing.Quantity, listing.Unit, listing.Urgency),
			Read: false,
		}
		if err := n.DB.Create(&notification).Error; err != nil {
			return err
		}
		metrics.NotificationsSent.Inc()

		if n.Hub != nil {
			n.Hub.SendToUser(recipient.ID, pushEvent("notification", notification))
		}
	}

	return nil
}

func pushEvent(eventType string, data interface{}) map[string]interface{} {
	return map[string]interface{}{
		"type": eventType,
		"data": data,
	}
}
