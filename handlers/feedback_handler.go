package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Rashmika-Bandara/Save2Serve/engine"
)

type FeedbackHandler struct {
	Engine *engine.Engine
}

func NewFeedbackHandler(e *engine.Engine) *FeedbackHandler {
	return &FeedbackHandler{Engine: e}
}

// CreateFeedbackRequest
type CreateFeedbackRequest struct {
	ListingID string `json:"listing_id"`
	SellerID  string `json:"seller_id"`
	BuyerName string `json:"buyer_name"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// CreateFeedback - POST /feedback
func (h *FeedbackHandler) CreateFeedback(c *fiber.Ctx) error {
	var req CreateFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	userID, name, role := caller(c)
	if req.BuyerName == "" {
		req.BuyerName = name
	}

	created, err := h.Engine.CreateFeedback(userID, role, engine.NewFeedback{
		ListingID: req.ListingID,
		SellerID:  req.SellerID,
		BuyerName: req.BuyerName,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return respondEngineError(c, err, "Feedback not found")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Feedback submitted successfully", "data": created})
}

// GetSellerFeedback - GET /seller/feedback
func (h *FeedbackHandler) GetSellerFeedback(c *fiber.Ctx) error {
	userID, _, _ := caller(c)
	entries, average, err := h.Engine.FeedbackForSeller(userID)
	if err != nil {
		return respondEngineError(c, err, "Feedback not found")
	}
	return c.JSON(fiber.Map{"data": entries, "average_rating": average})
}
