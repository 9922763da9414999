package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"parkex/pkg/httperror"
)

// NewIdentityMiddleware trusts the identity headers injected by the edge
// proxy and copies them into the request's user context.
func NewIdentityMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := strings.TrimSpace(c.Get("User-ID"))
		userEmail := strings.TrimSpace(c.Get("User-Email"))
		authorization := strings.TrimSpace(c.Get("Authorization"))

		if userID == "" || userEmail == "" || authorization == "" {
			return unauthorized(c)
		}

		userCtx := c.UserContext()
		if userCtx == nil {
			userCtx = context.Background()
		}

		userCtx = context.WithValue(userCtx, "UserID", userID)
		userCtx = context.WithValue(userCtx, "UserEmail", userEmail)
		userCtx = context.WithValue(userCtx, "Jwt", authorization)

		c.SetUserContext(userCtx)
		return c.Next()
	}
}

// NewOptionalIdentityMiddleware attaches identity when the headers are
// present but lets anonymous requests through. Used for feedback.
func NewOptionalIdentityMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := strings.TrimSpace(c.Get("User-ID"))
		userEmail := strings.TrimSpace(c.Get("User-Email"))

		if userID == "" {
			return c.Next()
		}

		userCtx := c.UserContext()
		if userCtx == nil {
			userCtx = context.Background()
		}

		userCtx = context.WithValue(userCtx, "UserID", userID)
		userCtx = context.WithValue(userCtx, "UserEmail", userEmail)

		c.SetUserContext(userCtx)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	err := httperror.Unauthorized(
		"parkex.identity.unauthorized",
		"Identity headers missing or incomplete",
		nil,
	)

	return c.Status(err.Status).JSON(fiber.Map{
		"code":    err.Code,
		"message": err.Message,
	})
}
