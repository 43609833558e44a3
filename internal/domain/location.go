package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultHistoryLimit = 100
	MaxHistoryLimit     = 1000
)

// LocationFixInput is a single GPS sample pushed by a tracking client.
// CapturedAt is the device time of the fix; the server clock is used when it
// is absent.
type LocationFixInput struct {
	Latitude   *float64   `json:"latitude"`
	Longitude  *float64   `json:"longitude"`
	Accuracy   *float64   `json:"accuracy,omitempty"`
	CapturedAt *time.Time `json:"captured_at,omitempty"`
}

func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

type CurrentLocation struct {
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	Latitude   float64   `json:"latitude" db:"latitude"`
	Longitude  float64   `json:"longitude" db:"longitude"`
	Accuracy   *float64  `json:"accuracy,omitempty" db:"accuracy"`
	RecordedAt time.Time `json:"timestamp" db:"recorded_at"`
	IsActive   bool      `json:"is_active" db:"is_active"`
}

type LocationHistoryEntry struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Latitude   float64   `json:"latitude" db:"latitude"`
	Longitude  float64   `json:"longitude" db:"longitude"`
	Accuracy   *float64  `json:"accuracy,omitempty" db:"accuracy"`
	RecordedAt time.Time `json:"recorded_at" db:"recorded_at"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

type ActiveUserLocation struct {
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	FullName   string    `json:"full_name" db:"full_name"`
	Email      string    `json:"email" db:"email"`
	Phone      *string   `json:"phone,omitempty" db:"phone"`
	Latitude   float64   `json:"latitude" db:"latitude"`
	Longitude  float64   `json:"longitude" db:"longitude"`
	Accuracy   float64   `json:"accuracy" db:"accuracy"`
	RecordedAt time.Time `json:"timestamp" db:"recorded_at"`
	IsActive   bool      `json:"is_active" db:"is_active"`
}

// LocationUpdateEvent is published to subscribed admins for every accepted fix.
type LocationUpdateEvent struct {
	UserID    uuid.UUID `json:"user_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  *float64  `json:"accuracy,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
