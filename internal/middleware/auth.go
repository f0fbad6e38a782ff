package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/worldscribe/worldscribe/internal/config"
	"github.com/worldscribe/worldscribe/internal/services"
	"github.com/worldscribe/worldscribe/internal/types"
)

// Context keys set by RequireAuth.
const (
	CtxUserIDKey   = "user_id"
	CtxUsernameKey = "username"
)

// RequireAuth validates the bearer token on gated endpoints and stores the
// acting user's id and username in request locals. Reads are not gated;
// routes opt in to this middleware explicitly.
func RequireAuth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: "missing bearer token",
				Type:    "auth.token.missing",
			}
		}

		claims, err := services.ParseToken(cfg, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: "invalid or expired token",
				Type:    "auth.token.invalid",
			}
		}

		userID, err := services.UserIDFromClaims(claims)
		if err != nil {
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: "invalid token subject",
				Type:    "auth.token.invalid",
			}
		}

		c.Locals(CtxUserIDKey, userID)
		c.Locals(CtxUsernameKey, claims.Username)

		return c.Next()
	}
}
