package exposure

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/tracepoint/tracepoint/internal/httpx"
)

// Handler exposes the diagnosis endpoint.
type Handler struct {
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs the diagnosis HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service, validate: validator.New()}
}

type diagnoseRequest struct {
	UserID string `json:"userId" validate:"required"`
}

// Diagnose marks a user Diagnosed and propagates exposure. The affected set
// is not returned to the caller.
func (h *Handler) Diagnose(c *fiber.Ctx) error {
	var req diagnoseRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.Validation(err.Error())
	}
	if err := h.validate.Struct(&req); err != nil {
		return httpx.Validation("userId is required")
	}

	if err := h.service.Diagnose(c.UserContext(), req.UserID); err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "affected users updated successfully",
	})
}
