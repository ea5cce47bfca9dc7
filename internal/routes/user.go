package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tracepoint/tracepoint/internal/exposure"
	"github.com/tracepoint/tracepoint/internal/user"
)

// RegisterUserRoutes wires user endpoints. Reads stay public; every mutation
// sits behind the bearer token guard.
func RegisterUserRoutes(r fiber.Router, users *user.Handler, diagnoses *exposure.Handler, guard fiber.Handler, loginLimiter fiber.Handler) {
	group := r.Group("/user")

	group.Get("/", users.List)
	group.Post("/signup", users.Signup)
	if loginLimiter != nil {
		group.Post("/login", loginLimiter, users.Login)
	} else {
		group.Post("/login", users.Login)
	}

	group.Patch("/:userId", guard, users.Update)
	group.Post("/diagnosed", guard, diagnoses.Diagnose)
	group.Post("/startup", guard, users.Startup)
}
