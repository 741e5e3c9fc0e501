package apperror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Category labels the failure classes of the analysis pipeline. Every error
// leaving a usecase carries exactly one category; handlers map it to a status.
type Category string

const (
	InsufficientContent  Category = "insufficient_content"
	ModelInvocationError Category = "model_invocation_error"
	MalformedModelOutput Category = "malformed_model_output"
	NotFoundOrForbidden  Category = "not_found_or_forbidden"
	PersistenceError     Category = "persistence_error"
	Unauthorized         Category = "unauthorized"
)

type Error struct {
	Category Category
	Message  string
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(category Category, message string) *Error {
	return &Error{Category: category, Message: message}
}

func Wrap(category Category, message string, err error) *Error {
	return &Error{Category: category, Message: message, Err: err}
}

// Is reports whether err carries the given category.
func Is(err error, category Category) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Category == category
	}
	return false
}

func (e *Error) HTTPStatus() int {
	switch e.Category {
	case InsufficientContent:
		return fiber.StatusUnprocessableEntity
	case Unauthorized:
		return fiber.StatusUnauthorized
	case NotFoundOrForbidden:
		return fiber.StatusNotFound
	case ModelInvocationError:
		return fiber.StatusBadGateway
	case MalformedModelOutput:
		return fiber.StatusBadGateway
	case PersistenceError:
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusInternalServerError
	}
}
