package config

import (
	"log"

	"gorm.io/gorm"

	"github.com/Rashmika-Bandara/Save2Serve/models"
)

func Migrate(db *gorm.DB) error {
	// Migrate the schema
	err := db.AutoMigrate(
		&models.User{},
		&models.FoodListing{},
		&models.Request{},
		&models.Feedback{},
	)

	if err != nil {
		log.Printf("Failed to migrate database schema: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully...")

	return nil
}

func ResetAndMigrate(db *gorm.DB) error {
	// Drop all tables
	entities := []interface{}{
		&models.User{},
		&models.FoodListing{},
		&models.Request{},
		&models.Feedback{},
	}

	if err := db.Migrator().DropTable(entities...); err != nil {
		log.Printf("Failed to drop tables: %v", err)
		return err
	}

	log.Println("All tables dropped successfully.")

	if err := db.AutoMigrate(entities...); err != nil {
		log.Printf("Failed to auto migrate: %v", err)
		return err
	}

	SeedUsers(db)
	SeedListings(db)

	log.Println("Database reset and migration completed successfully.")
	return nil
}
