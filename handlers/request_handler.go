package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Rashmika-Bandara/Save2Serve/engine"
)

type RequestHandler struct {
	Engine *engine.Engine
}

func NewRequestHandler(e *engine.Engine) *RequestHandler {
	return &RequestHandler{Engine: e}
}

// CreateRequestRequest
type CreateRequestRequest struct {
	ListingID string `json:"listing_id"`
	SellerID  string `json:"seller_id"`
	BuyerName string `json:"buyer_name"`
	Message   string `json:"message"`
}

// UpdateRequestStatusRequest
type UpdateRequestStatusRequest struct {
	Status string `json:"status"`
}

// CreateRequest - POST /requests
func (h *RequestHandler) CreateRequest(c *fiber.Ctx) error {
	var req CreateRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	userID, name, role := caller(c)
	if req.BuyerName == "" {
		req.BuyerName = name
	}

	created, err := h.Engine.CreateRequest(userID, role, engine.NewRequest{
		ListingID: req.ListingID,
		SellerID:  req.SellerID,
		BuyerName: req.BuyerName,
		Message:   req.Message,
	})
	if err != nil {
		return respondEngineError(c, err, "Request not found")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Request sent successfully", "data": created})
}

// GetSellerRequests - GET /seller/requests
func (h *RequestHandler) GetSellerRequests(c *fiber.Ctx) error {
	userID, _, _ := caller(c)
	requests, err := h.Engine.RequestsForSeller(userID)
	if err != nil {
		return respondEngineError(c, err, "Request not found")
	}
	return c.JSON(fiber.Map{"data": requests})
}

// GetBuyerRequests - GET /buyer/requests
func (h *RequestHandler) GetBuyerRequests(c *fiber.Ctx) error {
	userID, _, _ := caller(c)
	requests, err := h.Engine.RequestsForBuyer(userID)
	if err != nil {
		return respondEngineError(c, err, "Request not found")
	}
	return c.JSON(fiber.Map{"data": requests})
}

// UpdateRequestStatus - PUT /requests/:id
func (h *RequestHandler) UpdateRequestStatus(c *fiber.Ctx) error {
	var req UpdateRequestStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	userID, _, _ := caller(c)
	updated, err := h.Engine.UpdateRequestStatus(userID, c.Params("id"), req.Status)
	if err != nil {
		return respondEngineError(c, err, "Request not found")
	}

	return c.JSON(fiber.Map{"message": "Request updated successfully", "data": updated})
}
