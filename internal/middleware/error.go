package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"missing-person-tracker/internal/domain"
	"missing-person-tracker/internal/pkg/validation"
	"missing-person-tracker/internal/service/media"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	TraceID string `json:"trace_id,omitempty"`
}

func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	errorCode := "INTERNAL_ERROR"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message

		switch code {
		case fiber.StatusBadRequest:
			errorCode = "BAD_REQUEST"
		case fiber.StatusUnauthorized:
			errorCode = "UNAUTHORIZED"
		case fiber.StatusForbidden:
			errorCode = "FORBIDDEN"
		case fiber.StatusNotFound:
			errorCode = "NOT_FOUND"
		case fiber.StatusConflict:
			errorCode = "CONFLICT"
		case fiber.StatusRequestEntityTooLarge:
			errorCode = "PAYLOAD_TOO_LARGE"
		case fiber.StatusUnsupportedMediaType:
			errorCode = "UNSUPPORTED_MEDIA_TYPE"
		case fiber.StatusServiceUnavailable:
			errorCode = "SERVICE_UNAVAILABLE"
		case fiber.StatusInternalServerError:
			message = "Internal server error"
		}
	}

	traceID := uuid.New().String()[:8]

	if code >= fiber.StatusInternalServerError {
		logrus.WithError(err).WithFields(logrus.Fields{
			"trace_id": traceID,
			"method":   c.Method(),
			"path":     c.Path(),
		}).Error("request failed")
	}

	return c.Status(code).JSON(ErrorResponse{
		Error:   message,
		Code:    errorCode,
		TraceID: traceID,
	})
}

// MapError translates service errors into HTTP errors. Unknown errors pass
// through and are rendered as 500 by ErrorHandler.
func MapError(err error) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return BadRequest(verr.Error())
	}
	var ferr *domain.FieldError
	if errors.As(err, &ferr) {
		return BadRequest(ferr.Error())
	}

	switch {
	case errors.Is(err, domain.ErrCaseNotFound):
		return NotFound("Missing person not found")
	case errors.Is(err, domain.ErrUserNotFound):
		return NotFound("User not found")
	case errors.Is(err, domain.ErrNotificationNotFound):
		return NotFound("Notification not found")
	case errors.Is(err, domain.ErrNotCaseOwner):
		return Forbidden("You can only update your own reports")
	case errors.Is(err, domain.ErrAdminOnly):
		return Forbidden("Forbidden - Admin access required")
	case errors.Is(err, domain.ErrForbidden):
		return Forbidden("Forbidden")
	case errors.Is(err, domain.ErrEmailExists):
		return Conflict("Email already registered")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return Unauthorized("Invalid credentials")
	case errors.Is(err, domain.ErrInvalidToken):
		return Unauthorized("Invalid token")
	case errors.Is(err, domain.ErrNoFieldsToUpdate):
		return BadRequest("No fields to update")
	case errors.Is(err, domain.ErrStatusRequired):
		return BadRequest("Status is required")
	case errors.Is(err, domain.ErrInvalidStatus):
		return BadRequest("Invalid status")
	case errors.Is(err, domain.ErrIllegalTransition):
		return BadRequest("Status transition not allowed")
	case errors.Is(err, domain.ErrInvalidCoordinates):
		return BadRequest("Invalid coordinates")
	case errors.Is(err, domain.ErrCoordinatesOutRange):
		return BadRequest("Coordinates out of range")
	case errors.Is(err, media.ErrUnsupportedType):
		return fiber.NewError(fiber.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, media.ErrStorageUnavailable):
		return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
	}
	return err
}

func BadRequest(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

func Unauthorized(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusUnauthorized, message)
}

func Forbidden(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusForbidden, message)
}

func NotFound(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusNotFound, message)
}

func Conflict(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusConflict, message)
}
