package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"missing-person-tracker/internal/domain"
)

type StatusUpdateRepository interface {
	ListByCase(ctx context.Context, missingPersonID uuid.UUID) ([]domain.StatusUpdate, error)
}

type statusUpdateRepository struct {
	db *sqlx.DB
}

func NewStatusUpdateRepository(db *sqlx.DB) StatusUpdateRepository {
	return &statusUpdateRepository{db: db}
}

func insertStatusUpdate(ctx context.Context, ext sqlx.ExtContext, su *domain.StatusUpdate) error {
	query := `
		INSERT INTO status_updates (id, missing_person_id, user_id, old_status, new_status, update_note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	return ext.QueryRowxContext(ctx, query,
		su.ID, su.MissingPersonID, su.UserID, su.OldStatus, su.NewStatus, su.UpdateNote,
	).Scan(&su.CreatedAt)
}

func (r *statusUpdateRepository) ListByCase(ctx context.Context, missingPersonID uuid.UUID) ([]domain.StatusUpdate, error) {
	var updates []domain.StatusUpdate
	query := `
		SELECT su.*, u.full_name AS user_name
		FROM status_updates su
		LEFT JOIN users u ON u.id = su.user_id
		WHERE su.missing_person_id = $1
		ORDER BY su.created_at DESC`
	err := r.db.SelectContext(ctx, &updates, query, missingPersonID)
	return updates, err
}
