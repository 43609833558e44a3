package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"missing-person-tracker/internal/domain"
)

// CaseNumberKey is the unique constraint guarding missing_persons.case_number.
const CaseNumberKey = "missing_persons_case_number_key"

// StatusChange carries the columns written by a status transition.
type StatusChange struct {
	Status        domain.CaseStatus
	FoundDate     *time.Time
	FoundBy       *uuid.UUID
	FoundLocation *string
}

type MissingPersonRepository interface {
	Create(ctx context.Context, mp *domain.MissingPerson) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MissingPerson, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*domain.MissingPerson, error)
	List(ctx context.Context, filter domain.CaseFilter) ([]domain.MissingPerson, int64, error)
	ListByReporter(ctx context.Context, reporterID uuid.UUID) ([]domain.MissingPerson, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	UpdateStatus(ctx context.Context, id uuid.UUID, change StatusChange, audit *domain.StatusUpdate) error
	UpdatePhoto(ctx context.Context, id uuid.UUID, photoURL string) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type missingPersonRepository struct {
	db *sqlx.DB
}

func NewMissingPersonRepository(db *sqlx.DB) MissingPersonRepository {
	return &missingPersonRepository{db: db}
}

const caseSelect = `
	SELECT mp.*,
		u.full_name AS reporter_name,
		u.email AS reporter_email,
		u.phone AS reporter_phone,
		(CURRENT_DATE - mp.last_seen_date) AS days_missing
	FROM missing_persons mp
	JOIN users u ON u.id = mp.reporter_id`

func (r *missingPersonRepository) Create(ctx context.Context, mp *domain.MissingPerson) error {
	query := `
		INSERT INTO missing_persons (
			id, reporter_id, full_name, age, gender, last_seen_location,
			last_seen_latitude, last_seen_longitude, last_seen_date, last_seen_time,
			height, weight, hair_color, eye_color, skin_tone, distinctive_features,
			clothing_description, medical_conditions, photo_url, contact_name,
			contact_phone, contact_email, additional_info, status, priority, case_number
		) VALUES (
			:id, :reporter_id, :full_name, :age, :gender, :last_seen_location,
			:last_seen_latitude, :last_seen_longitude, :last_seen_date, :last_seen_time,
			:height, :weight, :hair_color, :eye_color, :skin_tone, :distinctive_features,
			:clothing_description, :medical_conditions, :photo_url, :contact_name,
			:contact_phone, :contact_email, :additional_info, :status, :priority, :case_number
		)
		RETURNING created_at, updated_at`

	rows, err := r.db.NamedQueryContext(ctx, query, mp)
	if err != nil {
		return err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&mp.CreatedAt, &mp.UpdatedAt); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (r *missingPersonRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.MissingPerson, error) {
	var mp domain.MissingPerson
	query := `SELECT * FROM missing_persons WHERE id = $1`

	err := r.db.GetContext(ctx, &mp, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &mp, nil
}

func (r *missingPersonRepository) GetDetail(ctx context.Context, id uuid.UUID) (*domain.MissingPerson, error) {
	var mp domain.MissingPerson
	query := caseSelect + ` WHERE mp.id = $1`

	err := r.db.GetContext(ctx, &mp, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &mp, nil
}

func (r *missingPersonRepository) List(ctx context.Context, filter domain.CaseFilter) ([]domain.MissingPerson, int64, error) {
	filter.Validate()

	var conds []string
	var args []interface{}
	argIndex := 1

	if filter.Status != nil {
		conds = append(conds, fmt.Sprintf("mp.status = $%d", argIndex))
		args = append(args, *filter.Status)
		argIndex++
	}
	if filter.Priority != nil {
		conds = append(conds, fmt.Sprintf("mp.priority = $%d", argIndex))
		args = append(args, *filter.Priority)
		argIndex++
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		conds = append(conds, fmt.Sprintf(
			"(mp.full_name ILIKE '%%' || $%d || '%%' OR mp.case_number ILIKE '%%' || $%d || '%%' OR mp.last_seen_location ILIKE '%%' || $%d || '%%')",
			argIndex, argIndex, argIndex))
		args = append(args, search)
		argIndex++
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM missing_persons mp` + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	query := caseSelect + where +
		fmt.Sprintf(" ORDER BY mp.created_at DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, filter.Limit, filter.Offset)

	var cases []domain.MissingPerson
	if err := r.db.SelectContext(ctx, &cases, query, args...); err != nil {
		return nil, 0, err
	}
	return cases, total, nil
}

func (r *missingPersonRepository) ListByReporter(ctx context.Context, reporterID uuid.UUID) ([]domain.MissingPerson, error) {
	var cases []domain.MissingPerson
	query := caseSelect + ` WHERE mp.reporter_id = $1 ORDER BY mp.created_at DESC`
	err := r.db.SelectContext(ctx, &cases, query, reporterID)
	return cases, err
}

// UpdateFields writes a partial update. Keys must come from
// domain.UpdatableCaseFields; anything else is rejected before touching SQL.
func (r *missingPersonRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return domain.ErrNoFieldsToUpdate
	}

	allowed := make(map[string]bool, len(domain.UpdatableCaseFields))
	for _, f := range domain.UpdatableCaseFields {
		allowed[f] = true
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		if !allowed[k] {
			return fmt.Errorf("column %q is not updatable", k)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sets := make([]string, 0, len(keys)+1)
	args := make([]interface{}, 0, len(keys)+1)
	for i, k := range keys {
		sets = append(sets, fmt.Sprintf("%s = $%d", k, i+1))
		args = append(args, fields[k])
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE missing_persons SET %s WHERE id = $%d`,
		strings.Join(sets, ", "), len(args))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrCaseNotFound
	}
	return nil
}

// UpdateStatus applies change and records audit in one transaction.
func (r *missingPersonRepository) UpdateStatus(ctx context.Context, id uuid.UUID, change StatusChange, audit *domain.StatusUpdate) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var result sql.Result
	if change.Status == domain.StatusFound {
		result, err = tx.ExecContext(ctx, `
			UPDATE missing_persons
			SET status = $2, found_date = $3, found_by = $4,
				found_location = COALESCE($5, found_location), updated_at = NOW()
			WHERE id = $1`,
			id, change.Status, change.FoundDate, change.FoundBy, change.FoundLocation)
	} else {
		result, err = tx.ExecContext(ctx, `
			UPDATE missing_persons SET status = $2, updated_at = NOW() WHERE id = $1`,
			id, change.Status)
	}
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return domain.ErrCaseNotFound
	}

	if audit != nil {
		if err := insertStatusUpdate(ctx, tx, audit); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *missingPersonRepository) UpdatePhoto(ctx context.Context, id uuid.UUID, photoURL string) error {
	query := `UPDATE missing_persons SET photo_url = $2, updated_at = NOW() WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id, photoURL)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrCaseNotFound
	}
	return nil
}

func (r *missingPersonRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM missing_persons WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
