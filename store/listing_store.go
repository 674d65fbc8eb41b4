// Package store holds the gorm-backed implementations of the engine's store
// interfaces. Every method maps to a single statement, so each write is
// atomic at the database and concurrent whole-row writes resolve
// last-write-wins.
package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/Rashmika-Bandara/Save2Serve/models"
)

type ListingStore struct {
	db *gorm.DB
}

func NewListingStore(db *gorm.DB) *ListingStore {
	return &ListingStore{db: db}
}

func (s *ListingStore) Insert(listing *models.FoodListing) error {
	if err := s.db.Create(listing).Error; err != nil {
		return errors.Wrap(err, "insert listing")
	}
	return nil
}

func (s *ListingStore) ListAvailable() ([]models.FoodListing, error) {
	var listings []models.FoodListing
	err := s.db.Where("available = ?", true).Order("created_at desc").Find(&listings).Error
	if err != nil {
		return nil, errors.Wrap(err, "list available listings")
	}
	return listings, nil
}

func (s *ListingStore) ListBySeller(sellerID string) ([]models.FoodListing, error) {
	var listings []models.FoodListing
	err := s.db.Where("seller_id = ?", sellerID).Order("created_at desc").Find(&listings).Error
	if err != nil {
		return nil, errors.Wrap(err, "list seller listings")
	}
	return listings, nil
}

// GetOwned looks a listing up by id and owner in one query, so a listing
// owned by someone else is indistinguishable from a missing one.
func (s *ListingStore) GetOwned(id, sellerID string) (*models.FoodListing, error) {
	var listing models.FoodListing
	err := s.db.Where("id = ? AND seller_id = ?", id, sellerID).First(&listing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "get listing")
	}
	return &listing, nil
}

func (s *ListingStore) Save(listing *models.FoodListing) error {
	if err := s.db.Save(listing).Error; err != nil {
		return errors.Wrap(err, "save listing")
	}
	return nil
}

func (s *ListingStore) DeleteOwned(id, sellerID string) (bool, error) {
	res := s.db.Where("id = ? AND seller_id = ?", id, sellerID).Delete(&models.FoodListing{})
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "delete listing")
	}
	return res.RowsAffected > 0, nil
}

func (s *ListingStore) GetByIDs(ids []string) (map[string]models.FoodListing, error) {
	out := make(map[string]models.FoodListing, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var listings []models.FoodListing
	if err := s.db.Where("id IN ?", ids).Find(&listings).Error; err != nil {
		return nil, errors.Wrap(err, "batch get listings")
	}
	for _, l := range listings {
		out[l.ID] = l
	}
	return out, nil
}
