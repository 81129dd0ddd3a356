package server

import (
	"fittrack/internal/middleware"
	"fittrack/internal/models"
	"fittrack/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Signup handles POST /api/auth/signup.
func (s *Server) Signup(c *fiber.Ctx) error {
	var req service.RegisterInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	session, err := s.authService.Register(c.Context(), req)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "user registered", "user_id", session.User.ID)
	return c.Status(fiber.StatusCreated).JSON(session)
}

// Login handles POST /api/auth/login.
func (s *Server) Login(c *fiber.Ctx) error {
	var req service.Credentials
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	session, err := s.authService.Authenticate(c.Context(), req)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(session)
}

// Logout handles POST /api/auth/logout. Tokens are stateless bearer tokens;
// the endpoint exists so clients have a uniform place to end a session.
func (s *Server) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// CheckSession handles GET /api/auth/check. The auth middleware has already
// verified the token; this resolves the id back to an account.
func (s *Server) CheckSession(c *fiber.Ctx) error {
	userID, err := s.currentUserID(c)
	if err != nil {
		return nil
	}

	user, err := s.authService.Me(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"authenticated": true, "user": user})
}

// GetMyProfile handles GET /api/auth/profile.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID, err := s.currentUserID(c)
	if err != nil {
		return nil
	}

	user, err := s.authService.Me(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/auth/profile.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	userID, err := s.currentUserID(c)
	if err != nil {
		return nil
	}

	var req service.UpdateProfileInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}
	req.UserID = userID

	user, err := s.authService.UpdateProfile(c.Context(), req)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(user)
}

// GetMyStats handles GET /api/auth/stats.
func (s *Server) GetMyStats(c *fiber.Ctx) error {
	userID, err := s.currentUserID(c)
	if err != nil {
		return nil
	}

	overview, err := s.statsService.Overview(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(overview)
}
