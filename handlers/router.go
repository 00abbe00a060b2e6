package handlers

import (
	"trusttrade_backend/internal/notifier"
	"trusttrade_backend/internal/ws"
	"trusttrade_backend/models"
	"trusttrade_backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RegisterRoutes wires every API endpoint. hub and n may be nil in tests;
// handlers skip push delivery and fan-out scheduling when they are.
func RegisterRoutes(app *fiber.App, db *gorm.DB, hub *ws.Hub, n *notifier.Notifier) {
	authHandler := NewAuthHandler(db)
	userHandler := NewUserHandler(db)
	productHandler := NewProductHandler(db)
	supplierHandler := NewSupplierHandler(db)
	groupBuyHandler := NewGroupBuyHandler(db)
	loanHandler := NewLoanHandler(db)
	communityHandler := NewCommunityHandler(db)
	wasteHandler := NewWasteHandler(db, hub, n)
	notificationHandler := NewNotificationHandler(db)
	messageHandler := NewMessageHandler(db, hub)
	orderHandler := NewOrderHandler(db)
	reviewHandler := NewReviewHandler(db)
	mapHandler := NewMapHandler(db)

	api := app.Group("/api")

	// Public
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)

	// Everything below requires a signed-in caller
	api.Use(utils.AuthMiddleware)

	api.Get("/users/me", userHandler.Me)
	api.Put("/users/profile", userHandler.UpdateProfile)
	api.Get("/users/search", userHandler.SearchUsers)
	api.Get("/users", userHandler.GetAllUsers)

	api.Post("/products", utils.RequireRole(db, models.RoleWholesaler), productHandler.CreateProduct)
	api.Get("/products", productHandler.GetAllProducts)
	api.Get("/my-products", productHandler.GetMyProducts)

	api.Post("/suppliers", utils.RequireRole(db, models.RoleWholesaler), supplierHandler.CreateSupplier)
	api.Get("/suppliers", supplierHandler.GetAllSuppliers)
	api.Get("/my-suppliers", supplierHandler.GetMySuppliers)
	api.Get("/suppliers/:id/reviews", reviewHandler.GetSupplierReviews)
	api.Post("/reviews", utils.RequireRole(db, models.RoleVendor), reviewHandler.CreateReview)

	api.Post("/group-buys", groupBuyHandler.CreateGroupBuy)
	api.Post("/group-buys/:id/join", groupBuyHandler.JoinGroupBuy)
	api.Get("/group-buys", groupBuyHandler.GetAllGroupBuys)
	api.Get("/my-group-buys", groupBuyHandler.GetMyGroupBuys)

	api.Post("/loans", utils.RequireRole(db, models.RoleVendor), loanHandler.CreateLoan)
	api.Get("/loans/open", loanHandler.GetOpenLoans)
	api.Post("/loans/:id/fund", utils.RequireRole(db, models.RoleInvestor), loanHandler.FundLoan)
	api.Get("/my-investments", loanHandler.GetMyInvestments)

	api.Post("/community-items", utils.RequireRole(db, models.RoleVendor), communityHandler.CreateCommunityItem)
	api.Get("/community-items", communityHandler.GetAllCommunityItems)

	api.Post("/waste-listings", wasteHandler.CreateListing)
	api.Get("/waste-listings", wasteHandler.GetAvailableListings)
	api.Get("/my-waste-listings", wasteHandler.GetMyListings)
	api.Post("/waste-listings/:id/interest", wasteHandler.ExpressInterest)
	api.Get("/green-points", wasteHandler.GetGreenPoints)

	api.Get("/notifications", notificationHandler.GetNotifications)
	api.Post("/notifications/:id/read", notificationHandler.MarkNotificationRead)

	api.Post("/messages", messageHandler.SendMessage)
	api.Get("/messages/:otherUserId", messageHandler.ListMessages)

	api.Post("/orders", utils.RequireRole(db, models.RoleVendor), orderHandler.CreateOrder)
	api.Get("/my-orders", orderHandler.GetMyOrders)
	api.Put("/orders/:id/status", orderHandler.UpdateOrderStatus)

	api.Get("/map", mapHandler.GetMapData)

	if hub != nil {
		wsHandler := NewWSHandler(hub)
		app.Get("/ws", wsHandler.UpgradeMiddleware, wsHandler.Handler())
	}
}
