package shop

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/tracepoint/tracepoint/internal/httpx"
)

// Handler exposes shop endpoints.
type Handler struct {
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs a shop HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service, validate: validator.New()}
}

type createRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
}

type updateRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.Validation(err.Error())
	}
	if err := h.validate.Struct(&req); err != nil {
		return httpx.Validation(err.Error())
	}

	created, err := h.service.Create(c.UserContext(), CreateInput{Name: req.Name, Address: req.Address})
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "shop created successfully",
		"data":    created,
	})
}

func (h *Handler) List(c *fiber.Ctx) error {
	shops, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "shops returned successfully",
		"data":    shops,
	})
}

func (h *Handler) Get(c *fiber.Ctx) error {
	s, err := h.service.Get(c.UserContext(), c.Params("shopId"))
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "shop returned successfully",
		"data":    s,
	})
}

func (h *Handler) Update(c *fiber.Ctx) error {
	var req updateRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.Validation(err.Error())
	}

	s, err := h.service.Update(c.UserContext(), c.Params("shopId"), UpdateInput{Name: req.Name, Address: req.Address})
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "shop updated successfully",
		"data":    s,
	})
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("shopId")); err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "shop deleted successfully",
	})
}
