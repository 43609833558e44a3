package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"missing-person-tracker/internal/domain"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListByCase(ctx context.Context, missingPersonID uuid.UUID) ([]domain.Comment, error)
}

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO comments (id, missing_person_id, user_id, comment, is_anonymous)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		comment.ID, comment.MissingPersonID, comment.UserID, comment.Comment, comment.IsAnonymous,
	).Scan(&comment.CreatedAt)
}

const commentSelect = `
	SELECT c.id, c.missing_person_id, c.user_id, c.comment, c.is_anonymous, c.created_at,
		CASE WHEN c.is_anonymous THEN '` + domain.AnonymousDisplayName + `' ELSE u.full_name END AS user_name
	FROM comments c
	JOIN users u ON u.id = c.user_id`

func (r *commentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var comment domain.Comment
	err := r.db.GetContext(ctx, &comment, commentSelect+` WHERE c.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListByCase(ctx context.Context, missingPersonID uuid.UUID) ([]domain.Comment, error) {
	var comments []domain.Comment
	query := commentSelect + ` WHERE c.missing_person_id = $1 ORDER BY c.created_at DESC`
	err := r.db.SelectContext(ctx, &comments, query, missingPersonID)
	return comments, err
}
