// common.go
//
// Shared handler plumbing: id parsing, acting-user extraction, and the
// single place service errors are translated into HTTP statuses.

package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/worldscribe/worldscribe/internal/middleware"
	"github.com/worldscribe/worldscribe/internal/services"
	"github.com/worldscribe/worldscribe/internal/utils"
)

// actingUserID extracts the authenticated user id set by the auth middleware.
func actingUserID(c *fiber.Ctx) (uint64, error) {
	id, ok := c.Locals(middleware.CtxUserIDKey).(uint64)
	if !ok {
		return 0, fmt.Errorf("user not found in context")
	}
	return id, nil
}

// parseID reads a numeric path parameter.
func parseID(c *fiber.Ctx, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

// uploadedFile returns the uploaded image, or nil when the request carries
// none. An absent or empty upload is legal and means "keep the current asset".
func uploadedFile(c *fiber.Ctx) *multipart.FileHeader {
	file, err := c.FormFile("uploaded-file")
	if err != nil {
		return nil
	}
	return file
}

// serviceError maps the service-layer error taxonomy onto HTTP responses.
// Raw internal faults are never forwarded verbatim to the caller.
func serviceError(c *fiber.Ctx, err error, errorType string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFoundResponse(c, "Resource not found")
	case errors.Is(err, services.ErrDenied):
		return utils.ErrorResponse(c, "Not the owner of the target resource", fiber.StatusForbidden, errorType)
	case errors.Is(err, services.ErrValidation):
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, errorType)
	case errors.Is(err, services.ErrConflict):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusConflict, errorType)
	case errors.Is(err, services.ErrInvalidCredential):
		return utils.ErrorResponse(c, "Invalid credentials", fiber.StatusUnauthorized, errorType)
	case errors.Is(err, services.ErrAssetIO):
		return utils.ErrorResponse(c, "Failed to store uploaded image", fiber.StatusInternalServerError, errorType)
	default:
		return utils.ErrorResponse(c, "Internal error", fiber.StatusInternalServerError, errorType)
	}
}
