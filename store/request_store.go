package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/Rashmika-Bandara/Save2Serve/models"
)

type RequestStore struct {
	db *gorm.DB
}

func NewRequestStore(db *gorm.DB) *RequestStore {
	return &RequestStore{db: db}
}

func (s *RequestStore) Insert(req *models.Request) error {
	if err := s.db.Create(req).Error; err != nil {
		return errors.Wrap(err, "insert request")
	}
	return nil
}

func (s *RequestStore) ListBySeller(sellerID string) ([]models.Request, error) {
	var reqs []models.Request
	err := s.db.Where("seller_id = ?", sellerID).Order("created_at desc").Find(&reqs).Error
	if err != nil {
		return nil, errors.Wrap(err, "list seller requests")
	}
	return reqs, nil
}

func (s *RequestStore) ListByBuyer(buyerID string) ([]models.Request, error) {
	var reqs []models.Request
	err := s.db.Where("buyer_id = ?", buyerID).Order("created_at desc").Find(&reqs).Error
	if err != nil {
		return nil, errors.Wrap(err, "list buyer requests")
	}
	return reqs, nil
}

// GetOwned scopes the lookup to the seller id snapshot stored on the
// request, not the listing's current seller.
func (s *RequestStore) GetOwned(id, sellerID string) (*models.Request, error) {
	var req models.Request
	err := s.db.Where("id = ? AND seller_id = ?", id, sellerID).First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "get request")
	}
	return &req, nil
}

func (s *RequestStore) Save(req *models.Request) error {
	if err := s.db.Save(req).Error; err != nil {
		return errors.Wrap(err, "save request")
	}
	return nil
}
