package engine

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Rashmika-Bandara/Save2Serve/models"
	"github.com/Rashmika-Bandara/Save2Serve/store"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "engine.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.FoodListing{},
		&models.Request{},
		&models.Feedback{},
	))

	return New(store.NewListingStore(db), store.NewRequestStore(db), store.NewFeedbackStore(db))
}

func validListing() NewListing {
	return NewListing{
		Name:        "Vegetable rice packets",
		Quantity:    "3 packets",
		ExpiryTime:  time.Now().Add(6 * time.Hour),
		Description: "Surplus lunch packets from an office order",
		PriceTier:   models.PriceTierFree,
		Location:    "Colombo 07",
		SellerName:  "Seller One",
	}
}

func mustCreateListing(t *testing.T, e *Engine, sellerID string, in NewListing) *models.FoodListing {
	t.Helper()
	listing, err := e.CreateListing(sellerID, models.RoleSeller, in)
	require.NoError(t, err)
	return listing
}
