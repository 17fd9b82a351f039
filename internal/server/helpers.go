package server

import (
	"bytes"
	"errors"
	"log/slog"

	"postboard/internal/models"
	"postboard/internal/observability"
	"postboard/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// decodeBody parses a JSON body into dst. A missing body or a non-JSON
// content type leaves dst untouched, so every field reads as absent.
func decodeBody(c *fiber.Ctx, dst any) error {
	if len(bytes.TrimSpace(c.Body())) == 0 || !c.Is("json") {
		return nil
	}
	if err := c.BodyParser(dst); err != nil {
		return models.NewValidationError(models.MsgInvalidBody)
	}
	return nil
}

// requiredText returns the text of a body field and whether it counts as
// present. Falsy values and non-scalar values are absent.
func requiredText(v any) (string, bool) {
	if validation.IsFalsy(v) {
		return "", false
	}
	s, ok := validation.Text(v)
	return s, ok && s != ""
}

// respondServiceError writes the envelope for an error returned by a
// service, logging anything that is not the client's fault.
func respondServiceError(c *fiber.Ctx, err error) error {
	status := models.StatusFor(err)
	if status >= fiber.StatusInternalServerError {
		observability.Logger.ErrorContext(c.UserContext(), "request failed",
			slog.String("path", c.Path()),
			slog.String("error", err.Error()),
		)
	}
	return models.RespondWithError(c, status, err)
}

// ErrorHandler turns errors that escape handlers (unknown routes, panics
// caught by recover, oversized bodies) into the JSON envelope. A known path
// hit with the wrong method is reported as a plain 404.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		switch {
		case fe.Code == fiber.StatusNotFound, fe.Code == fiber.StatusMethodNotAllowed:
			return models.RespondWithMessage(c, fiber.StatusNotFound, models.MsgRouteNotFound)
		case fe.Code < fiber.StatusInternalServerError:
			return models.RespondWithMessage(c, fe.Code, fe.Message)
		}
	}

	observability.Logger.ErrorContext(c.UserContext(), "unhandled error",
		slog.String("path", c.Path()),
		slog.String("error", err.Error()),
	)
	return models.RespondWithMessage(c, fiber.StatusInternalServerError, models.MsgInternalError)
}
