package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Request statuses. There is no transition table: the owning seller may set
// any of these at any time, including moving backward.
const (
	RequestPending   = "pending"
	RequestAccepted  = "accepted"
	RequestCompleted = "completed"
	RequestCancelled = "cancelled"
)

// ValidRequestStatus reports whether s is one of the four request statuses.
func ValidRequestStatus(s string) bool {
	switch s {
	case RequestPending, RequestAccepted, RequestCompleted, RequestCancelled:
		return true
	}
	return false
}

type Request struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	ListingID string `gorm:"index;size:36;not null" json:"listing_id"`

	BuyerID   string `gorm:"index;size:36;not null" json:"buyer_id"`
	BuyerName string `gorm:"size:100;not null" json:"buyer_name"` // snapshot taken at creation

	// Copied from the caller at creation and never re-derived from the
	// listing, even if the listing is later updated or deleted.
	SellerID string `gorm:"index;size:36;not null" json:"seller_id"`

	Status  string `gorm:"size:20;default:'pending'" json:"status"`
	Message string `gorm:"type:text" json:"message"`

	CreatedAt time.Time `json:"created_at"`
}

func (r *Request) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
