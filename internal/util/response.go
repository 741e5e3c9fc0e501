package util

import (
	"errors"

	"github.com/SWATISONAWANE63/resume-ai-matchmaker-29/internal/apperror"
	"github.com/SWATISONAWANE63/resume-ai-matchmaker-29/internal/config"
	"github.com/gofiber/fiber/v2"
)

type ErrorBody struct {
	Error      string `json:"error"`
	Category   string `json:"category,omitempty"`
	DevMessage string `json:"dev_message,omitempty"`
}

// ErrorHandler is the app-wide fiber error handler. Pipeline errors carry a
// category that maps to a status; everything else falls back to fiber's own
// code or a plain 500. The response body is always {"error": "..."}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	body := ErrorBody{Error: "Internal Server Error"}

	var appErr *apperror.Error
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &appErr):
		code = appErr.HTTPStatus()
		body.Error = appErr.Message
		body.Category = string(appErr.Category)
		if config.LoadAppConfig().Env != "production" && appErr.Err != nil {
			body.DevMessage = appErr.Err.Error()
		}
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		body.Error = fiberErr.Message
	default:
		if err != nil && err.Error() != "" {
			body.Error = err.Error()
		}
	}

	return c.Status(code).JSON(body)
}
