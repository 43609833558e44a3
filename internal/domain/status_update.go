package domain

import (
	"time"

	"github.com/google/uuid"
)

type StatusUpdate struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	MissingPersonID uuid.UUID  `json:"missing_person_id" db:"missing_person_id"`
	UserID          uuid.UUID  `json:"user_id" db:"user_id"`
	OldStatus       CaseStatus `json:"old_status" db:"old_status"`
	NewStatus       CaseStatus `json:"new_status" db:"new_status"`
	UpdateNote      *string    `json:"update_note,omitempty" db:"update_note"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`

	UserName *string `json:"user_name,omitempty" db:"user_name"`
}
