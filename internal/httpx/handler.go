package httpx

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders every error through the shared envelope:
//
//	{"error": {"message": "..."}}
//
// with the status derived from the error kind. Plain *fiber.Error values keep
// their own status so framework middlewares compose cleanly.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := Status(err)
	message := err.Error()

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
		message = fiberErr.Message
	}

	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{"message": message},
	})
}
