package domain

import (
	"time"

	"github.com/google/uuid"
)

const AnonymousDisplayName = "Anonymous"

type Comment struct {
	ID              uuid.UUID `json:"id" db:"id"`
	MissingPersonID uuid.UUID `json:"missing_person_id" db:"missing_person_id"`
	UserID          uuid.UUID `json:"user_id" db:"user_id"`
	Comment         string    `json:"comment" db:"comment"`
	IsAnonymous     bool      `json:"is_anonymous" db:"is_anonymous"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`

	UserName string `json:"user_name" db:"user_name"`
}

type CreateCommentInput struct {
	MissingPersonID uuid.UUID `json:"missing_person_id" validate:"required"`
	Comment         string    `json:"comment" validate:"required,max=5000"`
	IsAnonymous     bool      `json:"is_anonymous"`
}
