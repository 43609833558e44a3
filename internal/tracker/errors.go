package tracker

import (
	"errors"
	"fmt"
)

var (
	ErrPermissionDenied    = errors.New("location permission denied")
	ErrPositionUnavailable = errors.New("position unavailable")
	ErrTimeout             = errors.New("location request timed out")
)

// StatusError is a non-2xx answer from the API. The request reached the
// server, so the fix is not queued for replay.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("location update rejected: status %d: %s", e.StatusCode, e.Body)
}

// ErrorMessage returns the text shown to the person carrying the device.
func ErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrPermissionDenied):
		return "Location permission denied. Please enable location access in your device settings."
	case errors.Is(err, ErrPositionUnavailable):
		return "Location information unavailable. Make sure GPS is enabled on your device."
	case errors.Is(err, ErrTimeout):
		return "GPS signal weak. Trying again..."
	default:
		return "Failed to get location updates"
	}
}
