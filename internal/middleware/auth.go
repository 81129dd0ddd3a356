package middleware

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"fittrack/internal/models"
	"fittrack/internal/token"

	"github.com/gofiber/fiber/v2"
)

// SessionValidator resolves a bearer token to the account it was issued for.
// Resolution must fail when the user row no longer exists, not just when the
// signature or expiry is bad.
type SessionValidator interface {
	ValidateSession(ctx context.Context, raw string) (*models.User, error)
}

// AuthRequired returns a middleware that enforces authentication for
// protected routes. Expired, invalid, and dangling-user tokens are
// distinguished in the logs; the client sees the standard error response for
// the failure's code.
func AuthRequired(sessions SessionValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return models.RespondWithError(c,
				models.NewUnauthenticatedError("Authorization header required"))
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return models.RespondWithError(c,
				models.NewUnauthenticatedError("Invalid authorization header format"))
		}

		user, err := sessions.ValidateSession(c.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, token.ErrExpired):
				Logger.DebugContext(c.UserContext(), "rejected expired session token",
					slog.String("path", c.Path()))
			case models.IsCode(err, models.CodeNotFound):
				Logger.WarnContext(c.UserContext(), "rejected token for deleted user",
					slog.String("path", c.Path()))
			default:
				Logger.DebugContext(c.UserContext(), "rejected invalid session token",
					slog.String("path", c.Path()))
			}
			return models.RespondWithError(c, err)
		}

		c.Locals("userID", user.ID)
		return c.Next()
	}
}

// UserID extracts the authenticated user id stored by AuthRequired.
func UserID(c *fiber.Ctx) (uint, bool) {
	uid, ok := c.Locals("userID").(uint)
	return uid, ok
}
