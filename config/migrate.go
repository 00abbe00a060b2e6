package config

import (
	"log"

	"trusttrade_backend/models"

	"gorm.io/gorm"
)

func allModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Supplier{},
		&models.Product{},
		&models.Order{},
		&models.GroupBuy{},
		&models.LoanRequest{},
		&models.CommunityItem{},
		&models.WasteListing{},
		&models.GreenPoint{},
		&models.WasteNotification{},
		&models.Message{},
		&models.Review{},
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(allModels()...); err != nil {
		log.Printf("Failed to migrate database schema: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully...")
	return nil
}

// ResetAndMigrate drops every table, remigrates and reseeds the demo data.
// This is the only path that ever deletes records.
func ResetAndMigrate(db *gorm.DB) error {
	if err := db.Migrator().DropTable(allModels()...); err != nil {
		log.Printf("Failed to drop tables: %v", err)
		return err
	}

	log.Println("All tables dropped successfully.")

	if err := db.AutoMigrate(allModels()...); err != nil {
		log.Printf("Failed to auto migrate: %v", err)
		return err
	}

	SeedAll(db)

	log.Println("Database reset and migration completed successfully.")
	return nil
}
