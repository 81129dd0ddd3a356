package server

import (
	"fittrack/internal/models"
	"fittrack/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPreferences handles GET /api/preferences. First access creates the
// default settings row.
func (s *Server) GetPreferences(c *fiber.Ctx) error {
	userID, err := s.currentUserID(c)
	if err != nil {
		return nil
	}

	prefs, err := s.prefService.Get(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(prefs)
}

// UpdatePreferences handles PUT /api/preferences.
func (s *Server) UpdatePreferences(c *fiber.Ctx) error {
	userID, err := s.currentUserID(c)
	if err != nil {
		return nil
	}

	var req service.UpdatePreferencesInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}
	req.UserID = userID

	prefs, err := s.prefService.Update(c.Context(), req)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(prefs)
}
