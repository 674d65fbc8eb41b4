package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles. A user picks one at signup and keeps it.
const (
	RoleSeller = "Seller"
	RoleBuyer  = "Buyer"
)

type User struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	// Login information
	Email    string `gorm:"unique;not null;size:100" json:"email"`
	Password string `gorm:"not null" json:"-"`

	// Profile
	FullName string    `gorm:"size:100;not null" json:"full_name"`
	GoodName string    `gorm:"size:100;not null" json:"good_name"` // preferred display name, shown on listings and requests
	Phone    string    `gorm:"size:20;not null" json:"phone"`
	DOB      time.Time `json:"dob"`

	Role string `gorm:"size:20;not null" json:"role"` // Seller, Buyer

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
