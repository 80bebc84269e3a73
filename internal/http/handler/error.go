package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"docsign/internal/completion"
	"docsign/internal/http/middleware"
	"docsign/internal/pagination"
	"docsign/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "MISSING_FIELD", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// writeServiceError translates known service sentinels into their HTTP
// status and error code. Unknown errors collapse into a 500 so internal
// detail never reaches the client.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrNoUpdateFields),
		errors.Is(err, service.ErrSignatureRequired),
		errors.Is(err, service.ErrSignerIDRequired),
		errors.Is(err, service.ErrJobTitleRequired),
		errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, "MISSING_FIELD", err.Error())
	case errors.Is(err, pagination.ErrInvalidArgument):
		return writeError(c, fiber.StatusBadRequest, "INVALID_PAGINATION", "page and limit must be positive integers")
	case errors.Is(err, service.ErrUnsupportedMediaType):
		return writeError(c, fiber.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", "only PDF files are accepted")
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
	case errors.Is(err, service.ErrOwnerNotFound):
		return writeError(c, fiber.StatusNotFound, "OWNER_NOT_FOUND", "owner not found")
	case errors.Is(err, service.ErrSignerNotFound):
		return writeError(c, fiber.StatusNotFound, "SIGNER_NOT_FOUND", "signer not found")
	case errors.Is(err, service.ErrStorage):
		return writeError(c, fiber.StatusInternalServerError, "STORAGE_ERROR", "artifact storage failed")
	case errors.Is(err, completion.ErrTimeout):
		return writeError(c, fiber.StatusGatewayTimeout, "DEPENDENCY_TIMEOUT", "completion provider timed out")
	case errors.Is(err, completion.ErrDependency):
		return writeError(c, fiber.StatusBadGateway, "DEPENDENCY_FAILURE", "completion provider failed")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
