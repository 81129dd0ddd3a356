package server

import (
	"errors"

	"fittrack/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers seeing it must return nil so Fiber's
// ErrorHandler does not overwrite the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter as a positive uint. On failure it
// writes a 400 response and returns errResponseWritten.
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, models.NewValidationError("Invalid ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// currentUserID reads the authenticated user id placed in locals by the auth
// middleware. Routes registered behind AuthRequired always have it; the
// error path guards against wiring mistakes.
func (s *Server) currentUserID(c *fiber.Ctx) (uint, error) {
	uid, ok := c.Locals("userID").(uint)
	if !ok || uid == 0 {
		_ = models.RespondWithError(c, models.NewUnauthenticatedError("Authorization required"))
		return 0, errResponseWritten
	}
	return uid, nil
}

// queryCategoryID parses the optional category_id query parameter.
func queryCategoryID(c *fiber.Ctx) (*uint, error) {
	raw := c.Query("category_id")
	if raw == "" {
		return nil, nil
	}
	id := c.QueryInt("category_id")
	if id <= 0 {
		_ = models.RespondWithError(c, models.NewValidationError("Invalid category ID"))
		return nil, errResponseWritten
	}
	uid := uint(id)
	return &uid, nil
}
