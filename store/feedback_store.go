package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/Rashmika-Bandara/Save2Serve/models"
)

type FeedbackStore struct {
	db *gorm.DB
}

func NewFeedbackStore(db *gorm.DB) *FeedbackStore {
	return &FeedbackStore{db: db}
}

func (s *FeedbackStore) Insert(fb *models.Feedback) error {
	if err := s.db.Create(fb).Error; err != nil {
		return errors.Wrap(err, "insert feedback")
	}
	return nil
}

func (s *FeedbackStore) ListBySeller(sellerID string) ([]models.Feedback, error) {
	var entries []models.Feedback
	err := s.db.Where("seller_id = ?", sellerID).Order("created_at desc").Find(&entries).Error
	if err != nil {
		return nil, errors.Wrap(err, "list seller feedback")
	}
	return entries, nil
}
