package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tracepoint/tracepoint/internal/auth"
	"github.com/tracepoint/tracepoint/internal/httpx"
)

// BearerAuth validates the Authorization bearer token and stores the caller's
// identity in request locals. Write operations sit behind this guard.
func BearerAuth(tokens *auth.Tokens) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			return httpx.Unauthorized("missing bearer token")
		}
		tokenStr := strings.TrimSpace(authz[len("Bearer "):])

		claims, err := tokens.Verify(tokenStr)
		if err != nil {
			return httpx.Unauthorized("invalid token")
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("phone", claims.Phone)
		return c.Next()
	}
}
