package checkin

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/tracepoint/tracepoint/internal/httpx"
)

// Handler exposes check-in endpoints.
type Handler struct {
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs a check-in HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service, validate: validator.New()}
}

type createRequest struct {
	UserID string `json:"userId" validate:"required"`
	ShopID string `json:"shopId" validate:"required"`
	At     string `json:"checkedInAt"`
}

// Create records a visit. The timestamp is optional and defaults to now.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.Validation(err.Error())
	}
	if err := h.validate.Struct(&req); err != nil {
		return httpx.Validation(err.Error())
	}

	var at time.Time
	if req.At != "" {
		parsed, err := time.Parse(time.RFC3339, req.At)
		if err != nil {
			return httpx.Validation("checkedInAt must be RFC 3339")
		}
		at = parsed
	}

	created, err := h.service.Create(c.UserContext(), CreateInput{
		UserID: req.UserID,
		ShopID: req.ShopID,
		At:     at,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "check-in recorded successfully",
		"data":    created,
	})
}

// ListByUser returns all check-ins for one user.
func (h *Handler) ListByUser(c *fiber.Ctx) error {
	out, err := h.service.ListByUser(c.UserContext(), c.Params("userId"))
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "check-ins returned successfully",
		"data":    out,
	})
}

// ListByShop returns all check-ins recorded at one shop.
func (h *Handler) ListByShop(c *fiber.Ctx) error {
	out, err := h.service.ListByShop(c.UserContext(), c.Params("shopId"))
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "check-ins returned successfully",
		"data":    out,
	})
}
