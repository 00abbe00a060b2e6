package config

import (
	"log"

	"trusttrade_backend/models"
	"trusttrade_backend/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func f64(v float64) *float64 { return &v }

// SeedAll creates the demo marketplace: street-food vendors around Mumbai and
// Delhi, two wholesalers, one investor, and the listings that connect them.
func SeedAll(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		log.Println("Seed data already present, skipping.")
		return
	}

	log.Println("🌱 Seeding demo data...")

	password, _ := utils.HashPassword("password123")

	vendor1 := models.User{Name: "Raju's Chaat Corner", Email: "raju.chaat@example.com", Password: password,
		Role: models.RoleVendor, TrustScore: f64(85), Latitude: f64(19.079), Longitude: f64(72.875)}
	vendor2 := models.User{Name: "Priya's Vada Pav", Email: "priya.vada@example.com", Password: password,
		Role: models.RoleVendor, TrustScore: f64(92), Latitude: f64(19.073), Longitude: f64(72.88)}
	vendor3 := models.User{Name: "Sanjay's Samosas", Email: "sanjay.samosa@example.com", Password: password,
		Role: models.RoleVendor, TrustScore: f64(78), Latitude: f64(28.7041), Longitude: f64(77.1025)}

	wholesaler1 := models.User{Name: "Mumbai Masala Co.", Email: "contact@mumbaimasala.com", Password: password,
		Role: models.RoleWholesaler}
	wholesaler2 := models.User{Name: "Delhi Daily Grocers", Email: "sales@delhigrocers.com", Password: password,
		Role: models.RoleWholesaler}

	investor1 := models.User{Name: "Anjali Investments", Email: "anjali.m@invest.com", Password: password,
		Role: models.RoleInvestor}

	for _, u := range []*models.User{&vendor1, &vendor2, &vendor3, &wholesaler1, &wholesaler2, &investor1} {
		if err := db.Create(u).Error; err != nil {
			log.Printf("Failed to seed user %s: %v", u.Name, err)
			return
		}
	}

	suppliers := []models.Supplier{
		{Name: "Mumbai Masala Co. Warehouse", Latitude: 19.076, Longitude: 72.8777, DeliveryRadius: 50, OwnerID: wholesaler1.ID},
		{Name: "Delhi Daily Grocers Depot", Latitude: 28.7041, Longitude: 77.1025, DeliveryRadius: 75, OwnerID: wholesaler2.ID},
	}
	db.Create(&suppliers)

	potato := models.Product{Name: "Potatoes (per kg)", OwnerID: wholesaler2.ID, BulkPrice: 30, Stock: 5000, Unit: models.UnitKg}
	besan := models.Product{Name: "Gram Flour (Besan) (per kg)", OwnerID: wholesaler1.ID, BulkPrice: 80, Stock: 2000, Unit: models.UnitKg}
	db.Create(&potato)
	db.Create(&besan)
	db.Create(&[]models.Product{
		{Name: "Cooking Oil (per litre)", OwnerID: wholesaler1.ID, BulkPrice: 150, Stock: 1500, Unit: models.UnitLiters},
		{Name: "Onions (per kg)", OwnerID: wholesaler2.ID, BulkPrice: 40, Stock: 3000, Unit: models.UnitKg},
		{Name: "Mixed Spices (Chaat Masala) (per kg)", OwnerID: wholesaler1.ID, BulkPrice: 400, Stock: 500, Unit: models.UnitKg},
	})

	db.Create(&[]models.GroupBuy{
		{ProductID: potato.ID, TargetQuantity: 500, CurrentQuantity: 120, PricePerUnit: 25,
			Participants: datatypes.JSONSlice[uint]{vendor1.ID, vendor2.ID}, Status: models.GroupBuyStatusOpen, CreatedBy: vendor1.ID},
		{ProductID: besan.ID, TargetQuantity: 200, CurrentQuantity: 200, PricePerUnit: 75,
			Participants: datatypes.JSONSlice[uint]{vendor1.ID, vendor2.ID, vendor3.ID}, Status: models.GroupBuyStatusClosed, CreatedBy: vendor2.ID},
	})

	db.Create(&[]models.LoanRequest{
		{VendorID: vendor2.ID, Amount: 25000, RepaymentStatus: models.RepaymentStatusPending},
		{VendorID: vendor3.ID, Amount: 15000, RepaymentStatus: models.RepaymentStatusPending, InvestorID: &investor1.ID},
	})

	db.Create(&[]models.CommunityItem{
		{VendorID: vendor1.ID, ItemName: "Extra Mint Chutney", Quantity: 5, Type: models.CommunityItemExchange},
		{VendorID: vendor3.ID, ItemName: "Need fresh Paneer (5kg)", Quantity: 5, Type: models.CommunityItemRequest},
	})

	log.Println("✅ Seeding complete.")
}
