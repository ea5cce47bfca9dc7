package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tracepoint/tracepoint/internal/checkin"
)

// RegisterCheckInRoutes wires check-in history endpoints.
func RegisterCheckInRoutes(r fiber.Router, h *checkin.Handler, guard fiber.Handler) {
	group := r.Group("/history")

	group.Post("/", guard, h.Create)
	group.Get("/user/:userId", h.ListByUser)
	group.Get("/shop/:shopId", h.ListByShop)
}
