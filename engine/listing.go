package engine

import (
	"time"

	"github.com/Rashmika-Bandara/Save2Serve/models"
)

// NewListing carries the caller-supplied fields for CreateListing.
type NewListing struct {
	Name        string
	Quantity    string
	ExpiryTime  time.Time
	Description string
	Image       string
	PriceTier   string
	Price       float64
	Location    string
	SellerName  string
}

// ListingUpdate carries a partial overwrite for UpdateListing. Nil fields
// keep their current values.
type ListingUpdate struct {
	Name        *string
	Quantity    *string
	ExpiryTime  *time.Time
	Description *string
	Image       *string
	PriceTier   *string
	Price       *float64
	Location    *string
	Available   *bool
}

// CreateListing publishes a new listing for the calling seller. The price is
// forced to 0 for free listings regardless of what the caller sent.
func (e *Engine) CreateListing(callerID, callerRole string, in NewListing) (*models.FoodListing, error) {
	if callerRole != models.RoleSeller {
		return nil, ErrForbidden
	}
	if in.Name == "" || in.Quantity == "" || in.ExpiryTime.IsZero() || in.Description == "" || in.Location == "" {
		return nil, validationf("name, quantity, expiry time, description and location are required")
	}
	if in.PriceTier == "" {
		in.PriceTier = models.PriceTierFree
	}
	if in.PriceTier != models.PriceTierFree && in.PriceTier != models.PriceTierLowCost {
		return nil, validationf("price tier must be %q or %q", models.PriceTierFree, models.PriceTierLowCost)
	}
	if in.Price < 0 {
		return nil, validationf("price must not be negative")
	}

	price := in.Price
	if in.PriceTier == models.PriceTierFree {
		price = 0
	}

	listing := &models.FoodListing{
		Name:        in.Name,
		Quantity:    in.Quantity,
		ExpiryTime:  in.ExpiryTime,
		Description: in.Description,
		Image:       in.Image,
		PriceTier:   in.PriceTier,
		Price:       price,
		Location:    in.Location,
		SellerID:    callerID,
		SellerName:  in.SellerName,
		Available:   true,
		CreatedAt:   time.Now(),
	}
	if err := e.listings.Insert(listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// ListAvailable returns every listing still marked available, newest first.
func (e *Engine) ListAvailable() ([]models.FoodListing, error) {
	return e.listings.ListAvailable()
}

// ListBySeller returns the caller's own listings, newest first, available or
// not.
func (e *Engine) ListBySeller(callerID string) ([]models.FoodListing, error) {
	return e.listings.ListBySeller(callerID)
}

// UpdateListing overlays the supplied fields onto the caller's listing and
// persists the whole row. A listing owned by someone else yields ErrNotFound.
// The free-tier price rule is re-applied on every write, so an update that
// flips the tier to free without touching the price still zeroes it.
func (e *Engine) UpdateListing(callerID, listingID string, in ListingUpdate) (*models.FoodListing, error) {
	listing, err := e.listings.GetOwned(listingID, callerID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrNotFound
	}

	if in.PriceTier != nil && *in.PriceTier != models.PriceTierFree && *in.PriceTier != models.PriceTierLowCost {
		return nil, validationf("price tier must be %q or %q", models.PriceTierFree, models.PriceTierLowCost)
	}
	if in.Price != nil && *in.Price < 0 {
		return nil, validationf("price must not be negative")
	}

	if in.Name != nil {
		listing.Name = *in.Name
	}
	if in.Quantity != nil {
		listing.Quantity = *in.Quantity
	}
	if in.ExpiryTime != nil {
		listing.ExpiryTime = *in.ExpiryTime
	}
	if in.Description != nil {
		listing.Description = *in.Description
	}
	if in.Image != nil {
		listing.Image = *in.Image
	}
	if in.PriceTier != nil {
		listing.PriceTier = *in.PriceTier
	}
	if in.Price != nil {
		listing.Price = *in.Price
	}
	if in.Location != nil {
		listing.Location = *in.Location
	}
	if in.Available != nil {
		listing.Available = *in.Available
	}

	if listing.PriceTier == models.PriceTierFree {
		listing.Price = 0
	}

	if err := e.listings.Save(listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// DeleteListing hard-deletes the caller's listing. Requests and feedback
// referencing it are left in place; reads join against it best-effort.
func (e *Engine) DeleteListing(callerID, listingID string) error {
	deleted, err := e.listings.DeleteOwned(listingID, callerID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
