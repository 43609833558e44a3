package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")

	ErrCaseNotFound         = errors.New("missing person not found")
	ErrNotCaseOwner         = errors.New("you can only update your own reports")
	ErrAdminOnly            = errors.New("admin access required")
	ErrForbidden            = errors.New("forbidden")
	ErrNoFieldsToUpdate     = errors.New("no fields to update")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrStatusRequired       = errors.New("status is required")
	ErrIllegalTransition    = errors.New("status transition not allowed")
	ErrCaseNumberExhausted  = errors.New("could not allocate a unique case number")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrInvalidCoordinates  = errors.New("invalid coordinates")
	ErrCoordinatesOutRange = errors.New("coordinates out of range")
)

// FieldError reports a bad value for a single updatable field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return "invalid value for " + e.Field + ": " + e.Reason
}
