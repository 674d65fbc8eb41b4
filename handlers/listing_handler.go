package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Rashmika-Bandara/Save2Serve/engine"
)

type ListingHandler struct {
	Engine *engine.Engine
}

func NewListingHandler(e *engine.Engine) *ListingHandler {
	return &ListingHandler{Engine: e}
}

// CreateListingRequest
type CreateListingRequest struct {
	Name        string    `json:"name"`
	Quantity    string    `json:"quantity"`
	ExpiryTime  time.Time `json:"expiry_time"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	PriceTier   string    `json:"price_tier"`
	Price       float64   `json:"price"`
	Location    string    `json:"location"`
	SellerName  string    `json:"seller_name"`
}

// UpdateListingRequest carries a partial update; omitted fields keep their
// current values.
type UpdateListingRequest struct {
	Name        *string    `json:"name"`
	Quantity    *string    `json:"quantity"`
	ExpiryTime  *time.Time `json:"expiry_time"`
	Description *string    `json:"description"`
	Image       *string    `json:"image"`
	PriceTier   *string    `json:"price_tier"`
	Price       *float64   `json:"price"`
	Location    *string    `json:"location"`
	Available   *bool      `json:"available"`
}

// GetListings - GET /listings
func (h *ListingHandler) GetListings(c *fiber.Ctx) error {
	listings, err := h.Engine.ListAvailable()
	if err != nil {
		return respondEngineError(c, err, "Listing not found")
	}
	return c.JSON(fiber.Map{"data": listings})
}

// GetMyListings - GET /my-listings
func (h *ListingHandler) GetMyListings(c *fiber.Ctx) error {
	userID, _, _ := caller(c)
	listings, err := h.Engine.ListBySeller(userID)
	if err != nil {
		return respondEngineError(c, err, "Listing not found")
	}
	return c.JSON(fiber.Map{"data": listings})
}

// CreateListing - POST /listings
func (h *ListingHandler) CreateListing(c *fiber.Ctx) error {
	var req CreateListingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	userID, name, role := caller(c)
	if req.SellerName == "" {
		req.SellerName = name
	}

	listing, err := h.Engine.CreateListing(userID, role, engine.NewListing{
		Name:        req.Name,
		Quantity:    req.Quantity,
		ExpiryTime:  req.ExpiryTime,
		Description: req.Description,
		Image:       req.Image,
		PriceTier:   req.PriceTier,
		Price:       req.Price,
		Location:    req.Location,
		SellerName:  req.SellerName,
	})
	if err != nil {
		return respondEngineError(c, err, "Listing not found")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Listing created successfully", "data": listing})
}

// UpdateListing - PUT /listings/:id
func (h *ListingHandler) UpdateListing(c *fiber.Ctx) error {
	var req UpdateListingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	userID, _, _ := caller(c)
	listing, err := h.Engine.UpdateListing(userID, c.Params("id"), engine.ListingUpdate{
		Name:        req.Name,
		Quantity:    req.Quantity,
		ExpiryTime:  req.ExpiryTime,
		Description: req.Description,
		Image:       req.Image,
		PriceTier:   req.PriceTier,
		Price:       req.Price,
		Location:    req.Location,
		Available:   req.Available,
	})
	if err != nil {
		return respondEngineError(c, err, "Listing not found")
	}

	return c.JSON(fiber.Map{"message": "Listing updated successfully", "data": listing})
}

// DeleteListing - DELETE /listings/:id
func (h *ListingHandler) DeleteListing(c *fiber.Ctx) error {
	userID, _, _ := caller(c)
	if err := h.Engine.DeleteListing(userID, c.Params("id")); err != nil {
		return respondEngineError(c, err, "Listing not found")
	}
	return c.JSON(fiber.Map{"message": "Listing deleted successfully"})
}
