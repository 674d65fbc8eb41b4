package engine

import (
	"time"

	"github.com/Rashmika-Bandara/Save2Serve/models"
)

// NewRequest carries the caller-supplied fields for CreateRequest.
type NewRequest struct {
	ListingID string
	SellerID  string
	BuyerName string
	Message   string
}

// RequestWithListing pairs a request with the current state of the listing
// it references. Listing is nil when the listing has since been deleted.
type RequestWithListing struct {
	models.Request
	Listing *models.FoodListing `json:"listing"`
}

// CreateRequest records a buyer's claim against a listing. The listing is
// not looked up: listing id and seller id are persisted as supplied, and the
// seller id snapshot is what all later ownership checks run against.
func (e *Engine) CreateRequest(callerID, callerRole string, in NewRequest) (*models.Request, error) {
	if callerRole != models.RoleBuyer {
		return nil, ErrForbidden
	}
	if in.ListingID == "" || in.SellerID == "" {
		return nil, validationf("listing id and seller id are required")
	}

	req := &models.Request{
		ListingID: in.ListingID,
		BuyerID:   callerID,
		BuyerName: in.BuyerName,
		SellerID:  in.SellerID,
		Status:    models.RequestPending,
		Message:   in.Message,
		CreatedAt: time.Now(),
	}
	if err := e.requests.Insert(req); err != nil {
		return nil, err
	}
	return req, nil
}

// RequestsForSeller returns requests addressed to the caller, newest first,
// each joined with its listing's current fields.
func (e *Engine) RequestsForSeller(callerID string) ([]RequestWithListing, error) {
	reqs, err := e.requests.ListBySeller(callerID)
	if err != nil {
		return nil, err
	}
	return e.joinListings(reqs)
}

// RequestsForBuyer returns requests the caller has made, newest first, each
// joined with its listing's current fields.
func (e *Engine) RequestsForBuyer(callerID string) ([]RequestWithListing, error) {
	reqs, err := e.requests.ListByBuyer(callerID)
	if err != nil {
		return nil, err
	}
	return e.joinListings(reqs)
}

// joinListings batch-fetches the referenced listings and attaches them.
// Requests whose listing has disappeared are kept with a nil Listing.
func (e *Engine) joinListings(reqs []models.Request) ([]RequestWithListing, error) {
	ids := make([]string, 0, len(reqs))
	seen := make(map[string]bool, len(reqs))
	for _, r := range reqs {
		if !seen[r.ListingID] {
			seen[r.ListingID] = true
			ids = append(ids, r.ListingID)
		}
	}
	listings, err := e.listings.GetByIDs(ids)
	if err != nil {
		return nil, err
	}

	out := make([]RequestWithListing, len(reqs))
	for i, r := range reqs {
		out[i] = RequestWithListing{Request: r}
		if l, ok := listings[r.ListingID]; ok {
			l := l
			out[i].Listing = &l
		}
	}
	return out, nil
}

// UpdateRequestStatus sets the status of a request owned by the calling
// seller. Any of the four statuses is accepted regardless of the current
// one; there is no transition table, matching the system's original
// behavior.
func (e *Engine) UpdateRequestStatus(callerID, requestID, status string) (*models.Request, error) {
	if !models.ValidRequestStatus(status) {
		return nil, validationf("status must be one of pending, accepted, completed, cancelled")
	}

	req, err := e.requests.GetOwned(requestID, callerID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrNotFound
	}

	req.Status = status
	if err := e.requests.Save(req); err != nil {
		return nil, err
	}
	return req, nil
}
