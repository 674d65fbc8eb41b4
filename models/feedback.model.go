package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Feedback is immutable once created. It references a listing/seller pair as
// supplied by the buyer; a prior request is not required.
type Feedback struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	ListingID string `gorm:"index;size:36;not null" json:"listing_id"`

	BuyerID   string `gorm:"index;size:36;not null" json:"buyer_id"`
	BuyerName string `gorm:"size:100;not null" json:"buyer_name"` // snapshot taken at creation

	SellerID string `gorm:"index;size:36;not null" json:"seller_id"`

	Rating  int    `gorm:"not null" json:"rating"` // integer 1-5
	Comment string `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
