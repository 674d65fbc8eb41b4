package engine

import (
	"time"

	"github.com/Rashmika-Bandara/Save2Serve/models"
)

// NewFeedback carries the caller-supplied fields for CreateFeedback.
type NewFeedback struct {
	ListingID string
	SellerID  string
	BuyerName string
	Rating    int
	Comment   string
}

// FeedbackWithListing pairs a feedback entry with the current state of the
// listing it references. Listing is nil when the listing has been deleted.
type FeedbackWithListing struct {
	models.Feedback
	Listing *models.FoodListing `json:"listing"`
}

// CreateFeedback records a buyer's rating for a listing/seller pair. The
// pair is taken as supplied: no prior accepted or completed request is
// required, and the listing is not looked up.
func (e *Engine) CreateFeedback(callerID, callerRole string, in NewFeedback) (*models.Feedback, error) {
	if callerRole != models.RoleBuyer {
		return nil, ErrForbidden
	}
	if in.ListingID == "" || in.SellerID == "" {
		return nil, validationf("listing id and seller id are required")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, validationf("rating must be an integer between 1 and 5")
	}

	fb := &models.Feedback{
		ListingID: in.ListingID,
		BuyerID:   callerID,
		BuyerName: in.BuyerName,
		SellerID:  in.SellerID,
		Rating:    in.Rating,
		Comment:   in.Comment,
		CreatedAt: time.Now(),
	}
	if err := e.feedback.Insert(fb); err != nil {
		return nil, err
	}
	return fb, nil
}

// FeedbackForSeller returns the caller's feedback newest first, joined with
// listing fields, together with the average rating. The average is derived
// on every read, never stored; it is 0 when there is no feedback.
func (e *Engine) FeedbackForSeller(callerID string) ([]FeedbackWithListing, float64, error) {
	entries, err := e.feedback.ListBySeller(callerID)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]string, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, f := range entries {
		if !seen[f.ListingID] {
			seen[f.ListingID] = true
			ids = append(ids, f.ListingID)
		}
	}
	listings, err := e.listings.GetByIDs(ids)
	if err != nil {
		return nil, 0, err
	}

	out := make([]FeedbackWithListing, len(entries))
	sum := 0
	for i, f := range entries {
		out[i] = FeedbackWithListing{Feedback: f}
		if l, ok := listings[f.ListingID]; ok {
			l := l
			out[i].Listing = &l
		}
		sum += f.Rating
	}

	average := 0.0
	if len(entries) > 0 {
		average = float64(sum) / float64(len(entries))
	}
	return out, average, nil
}
