package repository

import (
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Repositories struct {
	User          UserRepository
	MissingPerson MissingPersonRepository
	StatusUpdate  StatusUpdateRepository
	Comment       CommentRepository
	Notification  NotificationRepository
	Location      LocationRepository
	Analytics     AnalyticsRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:          NewUserRepository(db),
		MissingPerson: NewMissingPersonRepository(db),
		StatusUpdate:  NewStatusUpdateRepository(db),
		Comment:       NewCommentRepository(db),
		Notification:  NewNotificationRepository(db),
		Location:      NewLocationRepository(db),
		Analytics:     NewAnalyticsRepository(db),
	}
}

const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// failure. A non-empty constraint narrows the match to that constraint.
func IsUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	if pqErr.Code != uniqueViolation {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}
