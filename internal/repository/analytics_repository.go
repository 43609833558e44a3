package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"missing-person-tracker/internal/domain"
)

type AnalyticsRepository interface {
	Statistics(ctx context.Context) (*domain.Statistics, error)
	RecentCases(ctx context.Context, limit int) ([]domain.MissingPerson, error)
	StatusDistribution(ctx context.Context) ([]domain.StatusCount, error)
	MonthlyTrends(ctx context.Context, months int) ([]domain.MonthlyTrend, error)
	AgeDistribution(ctx context.Context) ([]domain.AgeGroupCount, error)
	GenderDistribution(ctx context.Context) ([]domain.GenderCount, error)
	PriorityDistribution(ctx context.Context) ([]domain.PriorityCount, error)
}

type analyticsRepository struct {
	db *sqlx.DB
}

func NewAnalyticsRepository(db *sqlx.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) Statistics(ctx context.Context) (*domain.Statistics, error) {
	var stats domain.Statistics
	query := `
		SELECT
			COUNT(*) AS total_cases,
			COUNT(*) FILTER (WHERE status = 'missing') AS active_missing,
			COUNT(*) FILTER (WHERE status = 'found') AS found_cases,
			COUNT(*) FILTER (WHERE status = 'investigation') AS under_investigation,
			COUNT(*) FILTER (WHERE status = 'closed') AS closed_cases,
			COUNT(*) FILTER (WHERE priority = 'critical') AS critical_cases,
			COUNT(*) FILTER (WHERE priority = 'high') AS high_priority_cases,
			COALESCE(AVG(found_date::date - last_seen_date) FILTER (WHERE status = 'found' AND found_date IS NOT NULL), 0)::float8 AS avg_days_to_find
		FROM missing_persons`
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *analyticsRepository) RecentCases(ctx context.Context, limit int) ([]domain.MissingPerson, error) {
	var cases []domain.MissingPerson
	query := caseSelect + ` ORDER BY mp.created_at DESC LIMIT $1`
	err := r.db.SelectContext(ctx, &cases, query, limit)
	return cases, err
}

func (r *analyticsRepository) StatusDistribution(ctx context.Context) ([]domain.StatusCount, error) {
	var out []domain.StatusCount
	query := `SELECT status, COUNT(*) AS count FROM missing_persons GROUP BY status ORDER BY status`
	err := r.db.SelectContext(ctx, &out, query)
	return out, err
}

// MonthlyTrends buckets cases created in the last months by YYYY-MM, newest
// first. Found counts cases from that month whose status is now found.
func (r *analyticsRepository) MonthlyTrends(ctx context.Context, months int) ([]domain.MonthlyTrend, error) {
	var out []domain.MonthlyTrend
	query := `
		SELECT
			to_char(created_at, 'YYYY-MM') AS month,
			COUNT(*) AS missing,
			COUNT(*) FILTER (WHERE status = 'found') AS found
		FROM missing_persons
		WHERE created_at >= NOW() - make_interval(months => $1)
		GROUP BY month
		ORDER BY month DESC`
	err := r.db.SelectContext(ctx, &out, query, months)
	return out, err
}

func (r *analyticsRepository) AgeDistribution(ctx context.Context) ([]domain.AgeGroupCount, error) {
	var out []domain.AgeGroupCount
	query := `
		SELECT age_group, COUNT(*) AS count
		FROM (
			SELECT CASE
				WHEN age IS NULL THEN 'Unknown'
				WHEN age < 13 THEN 'Child (0-12)'
				WHEN age BETWEEN 13 AND 17 THEN 'Teen (13-17)'
				WHEN age BETWEEN 18 AND 30 THEN 'Young Adult (18-30)'
				WHEN age BETWEEN 31 AND 50 THEN 'Adult (31-50)'
				ELSE 'Senior (50+)'
			END AS age_group
			FROM missing_persons
		) grouped
		GROUP BY age_group
		ORDER BY age_group`
	err := r.db.SelectContext(ctx, &out, query)
	return out, err
}

func (r *analyticsRepository) GenderDistribution(ctx context.Context) ([]domain.GenderCount, error) {
	var out []domain.GenderCount
	query := `SELECT gender, COUNT(*) AS count FROM missing_persons GROUP BY gender ORDER BY gender`
	err := r.db.SelectContext(ctx, &out, query)
	return out, err
}

func (r *analyticsRepository) PriorityDistribution(ctx context.Context) ([]domain.PriorityCount, error) {
	var out []domain.PriorityCount
	query := `SELECT priority, COUNT(*) AS count FROM missing_persons GROUP BY priority ORDER BY priority`
	err := r.db.SelectContext(ctx, &out, query)
	return out, err
}
