package config

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/Rashmika-Bandara/Save2Serve/models"
	"github.com/Rashmika-Bandara/Save2Serve/utils"
)

func SeedUsers(db *gorm.DB) {
	log.Println("🌱 Seeding users...")

	password, _ := utils.HashPassword("password123")

	users := []models.User{
		{
			FullName: "Demo Seller",
			GoodName: "Demo Seller",
			Email:    "seller@example.com",
			Password: password,
			Phone:    "0711111111",
			DOB:      time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
			Role:     models.RoleSeller,
		},
		{
			FullName: "Demo Buyer",
			GoodName: "Demo Buyer",
			Email:    "buyer@example.com",
			Password: password,
			Phone:    "0722222222",
			DOB:      time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC),
			Role:     models.RoleBuyer,
		},
	}

	for _, user := range users {
		var existingUser models.User
		if err := db.Where("email = ?", user.Email).First(&existingUser).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&user).Error; err != nil {
					log.Printf("Failed to seed user %s: %v", user.Email, err)
				} else {
					log.Printf("User seeded: %s (ID: %s)", user.Email, user.ID)
				}
			}
		} else {
			log.Printf("User already exists: %s", user.Email)
		}
	}

	log.Println("✅ Seeding complete.")
}

func SeedListings(db *gorm.DB) {
	log.Println("🌱 Seeding listings...")

	var seller models.User
	if err := db.Where("email = ? AND role = ?", "seller@example.com", models.RoleSeller).First(&seller).Error; err != nil {
		log.Println("No demo seller to attach listings to, skipping")
		return
	}

	listings := []models.FoodListing{
		{
			Name:        "Vegetable rice packets",
			Quantity:    "5 packets",
			ExpiryTime:  time.Now().Add(8 * time.Hour),
			Description: "Freshly cooked this morning, surplus from an office order.",
			PriceTier:   models.PriceTierFree,
			Price:       0,
			Location:    "Colombo 07",
			SellerID:    seller.ID,
			SellerName:  seller.GoodName,
			Available:   true,
			CreatedAt:   time.Now(),
		},
		{
			Name:        "Bakery bread loaves",
			Quantity:    "10 loaves",
			ExpiryTime:  time.Now().Add(24 * time.Hour),
			Description: "Day-old bread in good condition.",
			PriceTier:   models.PriceTierLowCost,
			Price:       50,
			Location:    "Kandy",
			SellerID:    seller.ID,
			SellerName:  seller.GoodName,
			Available:   true,
			CreatedAt:   time.Now(),
		},
	}

	for _, listing := range listings {
		var existing models.FoodListing
		if err := db.Where("name = ? AND seller_id = ?", listing.Name, listing.SellerID).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&listing).Error; err != nil {
					log.Printf("Failed to seed listing %s: %v", listing.Name, err)
				} else {
					log.Printf("Listing seeded: %s (ID: %s)", listing.Name, listing.ID)
				}
			}
		} else {
			log.Printf("Listing already exists: %s", listing.Name)
		}
	}

	log.Println("✅ Seeding complete.")
}
