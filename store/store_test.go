package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Rashmika-Bandara/Save2Serve/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "store.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.FoodListing{},
		&models.Request{},
		&models.Feedback{},
	))
	return db
}

func seedListing(t *testing.T, s *ListingStore, sellerID, name string) *models.FoodListing {
	t.Helper()
	listing := &models.FoodListing{
		Name:        name,
		Quantity:    "1 box",
		ExpiryTime:  time.Now().Add(4 * time.Hour),
		Description: "test listing",
		PriceTier:   models.PriceTierFree,
		Location:    "Galle",
		SellerID:    sellerID,
		SellerName:  "Seller",
		Available:   true,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, s.Insert(listing))
	return listing
}

func TestListingGetOwnedScopesToSeller(t *testing.T) {
	s := NewListingStore(newTestDB(t))
	listing := seedListing(t, s, "seller-1", "Rice")

	found, err := s.GetOwned(listing.ID, "seller-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, listing.ID, found.ID)

	// Wrong owner and missing id both come back as a plain miss.
	found, err = s.GetOwned(listing.ID, "seller-2")
	require.NoError(t, err)
	assert.Nil(t, found)

	found, err = s.GetOwned("no-such-id", "seller-1")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestListingDeleteOwned(t *testing.T) {
	s := NewListingStore(newTestDB(t))
	listing := seedListing(t, s, "seller-1", "Rice")

	deleted, err := s.DeleteOwned(listing.ID, "seller-2")
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = s.DeleteOwned(listing.ID, "seller-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = s.DeleteOwned(listing.ID, "seller-1")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestListingGetByIDsToleratesMisses(t *testing.T) {
	s := NewListingStore(newTestDB(t))
	a := seedListing(t, s, "seller-1", "Rice")
	b := seedListing(t, s, "seller-1", "Bread")

	got, err := s.GetByIDs([]string{a.ID, "gone", b.ID})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, a.Name, got[a.ID].Name)
	assert.Equal(t, b.Name, got[b.ID].Name)

	got, err = s.GetByIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRequestGetOwnedUsesSellerSnapshot(t *testing.T) {
	db := newTestDB(t)
	s := NewRequestStore(db)

	req := &models.Request{
		ListingID: "listing-1",
		BuyerID:   "buyer-1",
		BuyerName: "Buyer",
		SellerID:  "seller-1",
		Status:    models.RequestPending,
		CreatedAt: time.Now(),
	}
	require.NoError(t, s.Insert(req))

	found, err := s.GetOwned(req.ID, "seller-1")
	require.NoError(t, err)
	require.NotNil(t, found)

	found, err = s.GetOwned(req.ID, "seller-2")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestFeedbackListBySellerNewestFirst(t *testing.T) {
	db := newTestDB(t)
	s := NewFeedbackStore(db)

	older := &models.Feedback{
		ListingID: "listing-1",
		BuyerID:   "buyer-1",
		BuyerName: "Buyer",
		SellerID:  "seller-1",
		Rating:    3,
		CreatedAt: time.Now().Add(-time.Minute),
	}
	newer := &models.Feedback{
		ListingID: "listing-2",
		BuyerID:   "buyer-2",
		BuyerName: "Buyer Two",
		SellerID:  "seller-1",
		Rating:    5,
		CreatedAt: time.Now(),
	}
	require.NoError(t, s.Insert(older))
	require.NoError(t, s.Insert(newer))

	entries, err := s.ListBySeller("seller-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, newer.ID, entries[0].ID)
	assert.Equal(t, older.ID, entries[1].ID)

	entries, err = s.ListBySeller("seller-2")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
