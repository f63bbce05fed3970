// Package common holds the response envelope, RFC 9457 problem details and
// request validation shared by the HTTP handlers.
package common

import (
	"errors"
	"net/http"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // Human-readable explanation
	Data    any    `json:"data,omitempty"` // Response data
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // A URI reference that identifies the problem type
	Title    string `json:"title"`              // Short, human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation
	Instance string `json:"instance,omitempty"` // URI reference that identifies the specific occurrence
	Errors   any    `json:"errors,omitempty"`   // Optional: additional error details
}

// internalDetail replaces the message of unclassified failures.
const internalDetail = "An unexpected error occurred"

// SuccessResponseJSON writes the standard success envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ProblemDetailsJSON writes an RFC 9457 problem. The optional args may carry
// a detail string and a status code; without a status the code is derived
// from err. Server errors never expose err to the caller.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, args ...any) error {
	status := 0
	detail := ""
	for _, arg := range args {
		switch v := arg.(type) {
		case int:
			status = v
		case string:
			detail = v
		}
	}
	if status == 0 {
		status = fiber.StatusBadRequest
		if err != nil {
			status = ErrorToStatusCode(err)
		}
	}

	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.OriginalURL(),
	}
	var fe *fiber.Error
	switch {
	case status >= fiber.StatusInternalServerError:
		if err != nil {
			log.Errorw("Request failed", "path", c.Path(), "method", c.Method(), "error", err)
		}
		if pd.Detail == "" {
			pd.Detail = internalDetail
		}
	case err == nil:
	case errors.As(err, new(validator.ValidationErrors)):
		pd.Errors = FieldErrors(err)
		if pd.Detail == "" {
			pd.Detail = "One or more fields are invalid"
		}
	case errors.As(err, &fe):
		if pd.Detail == "" {
			pd.Detail = fe.Message
		}
	default:
		if pd.Detail == "" {
			pd.Detail = err.Error()
		}
	}
	return c.Status(status).JSON(pd, "application/problem+json")
}

// ErrorResponse writes err as a problem titled after its status code.
func ErrorResponse(c *fiber.Ctx, err error) error {
	status := ErrorToStatusCode(err)
	return ProblemDetailsJSON(c, http.StatusText(status), err, status)
}

// ErrorToStatusCode maps domain errors to appropriate HTTP status codes.
func ErrorToStatusCode(err error) int {
	var fe *fiber.Error
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.As(err, &fe):
		return fe.Code
	case errors.As(err, new(validator.ValidationErrors)):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler is the Fiber error handler rendering every returned error as
// a problem.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return ErrorResponse(c, err)
}
