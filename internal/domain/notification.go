package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotifStatusUpdate NotificationType = "status_update"
	NotifComment      NotificationType = "comment"
	NotifFound        NotificationType = "found"
	NotifGeneral      NotificationType = "general"
)

// NotificationListLimit caps how many notifications a user gets back.
const NotificationListLimit = 50

type Notification struct {
	ID              uuid.UUID        `json:"id" db:"id"`
	UserID          uuid.UUID        `json:"user_id" db:"user_id"`
	MissingPersonID *uuid.UUID       `json:"missing_person_id,omitempty" db:"missing_person_id"`
	Title           string           `json:"title" db:"title"`
	Message         string           `json:"message" db:"message"`
	Type            NotificationType `json:"type" db:"type"`
	IsRead          bool             `json:"is_read" db:"is_read"`
	CreatedAt       time.Time        `json:"created_at" db:"created_at"`
}

type MarkReadInput struct {
	NotificationID *uuid.UUID `json:"notification_id,omitempty"`
}
