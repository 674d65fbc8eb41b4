package engine

import (
	"github.com/Rashmika-Bandara/Save2Serve/models"
)

// Store interfaces implemented by the gorm layer. Every write is a whole-row
// write, so concurrent writers to the same id resolve last-write-wins at the
// database. Lookups that take an owner id are ownership-scoped: a record
// owned by someone else looks the same as one that does not exist.

type ListingStore interface {
	Insert(listing *models.FoodListing) error
	ListAvailable() ([]models.FoodListing, error)
	ListBySeller(sellerID string) ([]models.FoodListing, error)
	// GetOwned returns (nil, nil) when no listing with this id is owned by
	// sellerID.
	GetOwned(id, sellerID string) (*models.FoodListing, error)
	Save(listing *models.FoodListing) error
	// DeleteOwned reports whether a row was deleted.
	DeleteOwned(id, sellerID string) (bool, error)
	// GetByIDs returns the listings that still exist, keyed by id. Missing
	// ids are simply absent from the map.
	GetByIDs(ids []string) (map[string]models.FoodListing, error)
}

type RequestStore interface {
	Insert(req *models.Request) error
	ListBySeller(sellerID string) ([]models.Request, error)
	ListByBuyer(buyerID string) ([]models.Request, error)
	GetOwned(id, sellerID string) (*models.Request, error)
	Save(req *models.Request) error
}

type FeedbackStore interface {
	Insert(fb *models.Feedback) error
	ListBySeller(sellerID string) ([]models.Feedback, error)
}
