package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"missing-person-tracker/internal/domain"
)

// RecordResult says which writes a fix actually produced.
type RecordResult struct {
	CurrentUpdated  bool
	HistoryAppended bool
}

type LocationRepository interface {
	Record(ctx context.Context, loc *domain.CurrentLocation) (RecordResult, error)
	History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LocationHistoryEntry, error)
	ActiveUsers(ctx context.Context) ([]domain.ActiveUserLocation, error)
}

type locationRepository struct {
	db *sqlx.DB
}

func NewLocationRepository(db *sqlx.DB) LocationRepository {
	return &locationRepository{db: db}
}

// Record upserts the current row and appends to history in one transaction.
// An older fix never replaces a newer current row, and a fix already present
// in history (same account and timestamp) is not stored twice.
func (r *locationRepository) Record(ctx context.Context, loc *domain.CurrentLocation) (RecordResult, error) {
	var res RecordResult

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return res, err
	}
	defer tx.Rollback()

	upsert, err := tx.ExecContext(ctx, `
		INSERT INTO user_locations (user_id, latitude, longitude, accuracy, recorded_at, is_active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		ON CONFLICT (user_id) DO UPDATE
		SET latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			accuracy = EXCLUDED.accuracy,
			recorded_at = EXCLUDED.recorded_at,
			is_active = TRUE
		WHERE user_locations.recorded_at <= EXCLUDED.recorded_at`,
		loc.UserID, loc.Latitude, loc.Longitude, loc.Accuracy, loc.RecordedAt)
	if err != nil {
		return res, err
	}
	n, err := upsert.RowsAffected()
	if err != nil {
		return res, err
	}
	res.CurrentUpdated = n > 0

	hist, err := tx.ExecContext(ctx, `
		INSERT INTO location_history (id, user_id, latitude, longitude, accuracy, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, recorded_at) DO NOTHING`,
		uuid.New(), loc.UserID, loc.Latitude, loc.Longitude, loc.Accuracy, loc.RecordedAt)
	if err != nil {
		return res, err
	}
	n, err = hist.RowsAffected()
	if err != nil {
		return res, err
	}
	res.HistoryAppended = n > 0

	return res, tx.Commit()
}

func (r *locationRepository) History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LocationHistoryEntry, error) {
	var entries []domain.LocationHistoryEntry
	query := `
		SELECT id, latitude, longitude, accuracy, recorded_at, created_at
		FROM location_history
		WHERE user_id = $1
		ORDER BY recorded_at DESC
		LIMIT $2`
	err := r.db.SelectContext(ctx, &entries, query, userID, limit)
	return entries, err
}

func (r *locationRepository) ActiveUsers(ctx context.Context) ([]domain.ActiveUserLocation, error) {
	var locations []domain.ActiveUserLocation
	query := `
		SELECT ul.user_id, u.full_name, u.email, u.phone,
			ul.latitude, ul.longitude, COALESCE(ul.accuracy, 0) AS accuracy,
			ul.recorded_at, ul.is_active
		FROM user_locations ul
		JOIN users u ON u.id = ul.user_id
		WHERE ul.is_active = TRUE
		ORDER BY ul.recorded_at DESC`
	err := r.db.SelectContext(ctx, &locations, query)
	return locations, err
}
