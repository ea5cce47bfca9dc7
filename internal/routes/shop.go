package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tracepoint/tracepoint/internal/shop"
)

// RegisterShopRoutes wires shop CRUD endpoints.
func RegisterShopRoutes(r fiber.Router, h *shop.Handler, guard fiber.Handler) {
	group := r.Group("/shop")

	group.Get("/", h.List)
	group.Get("/:shopId", h.Get)

	group.Post("/", guard, h.Create)
	group.Patch("/:shopId", guard, h.Update)
	group.Delete("/:shopId", guard, h.Delete)
}
