package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/Rashmika-Bandara/Save2Serve/engine"
)

// caller pulls the authenticated identity the auth middleware stored on the
// request context.
func caller(c *fiber.Ctx) (userID, name, role string) {
	userID, _ = c.Locals("user_id").(string)
	name, _ = c.Locals("user_name").(string)
	role, _ = c.Locals("role").(string)
	return
}

// respondEngineError maps an engine failure onto a JSON error reply.
// notFoundMsg names the entity so 404s read like "Listing not found".
func respondEngineError(c *fiber.Ctx, err error, notFoundMsg string) error {
	var verr *engine.ValidationError
	switch {
	case errors.Is(err, engine.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not authorized"})
	case errors.Is(err, engine.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": notFoundMsg})
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": verr.Message})
	default:
		log.Printf("engine error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
}
