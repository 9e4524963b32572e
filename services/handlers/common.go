package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gopherpath/gopherpath_api/shared"
)

// identityFromContext reads the claims the auth middleware stashed in locals.
func identityFromContext(c *fiber.Ctx) shared.Identity {
	identity := shared.Identity{}
	if v, ok := c.Locals(shared.UserID).(string); ok {
		identity.UserID = v
	}
	if v, ok := c.Locals(shared.UserEmail).(string); ok {
		identity.Email = v
	}
	if v, ok := c.Locals(shared.UserName).(string); ok {
		identity.Name = v
	}
	return identity
}
