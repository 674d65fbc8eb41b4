package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Price tiers for a listing. A free listing always has price 0.
const (
	PriceTierFree    = "free"
	PriceTierLowCost = "low-cost"
)

type FoodListing struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Quantity    string    `gorm:"size:100;not null" json:"quantity"` // free text, e.g. "2 boxes"
	ExpiryTime  time.Time `gorm:"not null" json:"expiry_time"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Image       string    `json:"image"`
	PriceTier   string    `gorm:"size:20;default:'free'" json:"price_tier"` // free, low-cost
	Price       float64   `gorm:"default:0" json:"price"`
	Location    string    `gorm:"size:255;not null" json:"location"`

	SellerID   string `gorm:"index;size:36;not null" json:"seller_id"`
	SellerName string `gorm:"size:100;not null" json:"seller_name"` // snapshot taken at creation, not kept in sync

	Available bool      `gorm:"default:true" json:"available"`
	CreatedAt time.Time `json:"created_at"`
}

func (l *FoodListing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
