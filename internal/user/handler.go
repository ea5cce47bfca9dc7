package user

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/tracepoint/tracepoint/internal/httpx"
)

// Handler exposes user endpoints.
type Handler struct {
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs a user HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service, validate: validator.New()}
}

type signupRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required,min=4"`
	Name     string `json:"name"`
	Gender   string `json:"gender"`
	Status   string `json:"status"`
}

type loginRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updateRequest struct {
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
	Name     *string `json:"name"`
	Gender   *string `json:"gender"`
	Status   *string `json:"status"`
}

// List returns every registered user.
func (h *Handler) List(c *fiber.Ctx) error {
	users, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "users returned successfully",
		"data":    users,
	})
}

// Signup registers a new user.
func (h *Handler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.Validation(err.Error())
	}
	if err := h.validate.Struct(&req); err != nil {
		return httpx.Validation(err.Error())
	}

	u, token, err := h.service.Signup(c.UserContext(), SignupInput{
		Phone:    req.Phone,
		Password: req.Password,
		Name:     req.Name,
		Gender:   req.Gender,
		Status:   Status(req.Status),
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "user created successfully",
		"data":    fiber.Map{"user": u, "token": token},
	})
}

// Login authenticates a user and returns a fresh token.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.Validation(err.Error())
	}
	if err := h.validate.Struct(&req); err != nil {
		return httpx.Unauthorized(invalidCredentials)
	}

	u, token, err := h.service.Login(c.UserContext(), req.Phone, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "authentication successful",
		"data":    fiber.Map{"user": u, "token": token},
	})
}

// Update applies a partial update to a user.
func (h *Handler) Update(c *fiber.Ctx) error {
	var req updateRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.Validation(err.Error())
	}

	input := UpdateInput{
		Phone:    req.Phone,
		Password: req.Password,
		Name:     req.Name,
		Gender:   req.Gender,
	}
	if req.Status != nil {
		status := Status(*req.Status)
		input.Status = &status
	}

	u, err := h.service.Update(c.UserContext(), c.Params("userId"), input)
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "user updated successfully",
		"data":    fiber.Map{"user": u},
	})
}

// Startup wipes all users and check-ins. Destructive; gated by the bearer
// token guard at the route layer.
func (h *Handler) Startup(c *fiber.Ctx) error {
	if err := h.service.Reset(c.UserContext()); err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "store reset",
	})
}
