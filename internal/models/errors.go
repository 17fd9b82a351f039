package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes carried by AppError.
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeInternal   = "INTERNAL_ERROR"
)

// Response is the JSON envelope returned by every API endpoint.
// Exactly one of Message or Posts is set.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
	Posts   []Post `json:"posts,omitempty"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError reports bad client input.
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

// NewNotFoundError reports a referenced entity that does not exist.
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: message,
	}
}

// NewInternalError wraps a store or runtime failure. The wrapped error is
// never sent to clients.
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: MsgInternalError,
		Err:     err,
	}
}

// StatusFor maps an error to the HTTP status it should be reported with.
func StatusFor(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case CodeValidation:
		return fiber.StatusBadRequest
	case CodeNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// RespondWithError writes the {status, message} envelope for err.
// Anything other than a client-facing AppError is reported as a generic 500.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	message := MsgInternalError

	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != CodeInternal {
		message = appErr.Message
	}
	if status >= fiber.StatusInternalServerError {
		message = MsgInternalError
	}

	return c.Status(status).JSON(Response{Status: status, Message: message})
}

// RespondWithMessage writes a {status, message} envelope.
func RespondWithMessage(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Response{Status: status, Message: message})
}
