// Package engine implements the listing/request/feedback lifecycle rules:
// who may create or mutate each entity and how the three stay consistent.
// It is transport-agnostic; handlers translate its typed failures into HTTP
// status codes.
package engine

// Engine orchestrates the three entity stores. No operation writes to more
// than one store, so there are no cross-store transactions.
type Engine struct {
	listings ListingStore
	requests RequestStore
	feedback FeedbackStore
}

func New(listings ListingStore, requests RequestStore, feedback FeedbackStore) *Engine {
	return &Engine{
		listings: listings,
		requests: requests,
		feedback: feedback,
	}
}
