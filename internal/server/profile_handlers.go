package server

import (
	"github.com/gokulsivas/ThinkSync/internal/models"
	"github.com/gokulsivas/ThinkSync/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /api/profiles/:id
func (s *Server) GetProfile(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	identity := s.identity(c)
	view, svcErr := s.profileService.GetView(c.Context(), identity.UserID, identity.Role == models.RoleAdmin, targetID)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"profile": view,
	})
}

// UpdateProfile handles PUT /api/profiles/:id. Only the profile's owner
// may update it; admins go through moderation tooling, not other
// people's profiles.
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	identity := s.identity(c)
	if targetID != identity.UserID {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("You can only update your own profile"))
	}

	var req service.UpdateProfileInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	view, err := s.profileService.Update(c.Context(), identity.UserID, req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"profile": view,
	})
}
