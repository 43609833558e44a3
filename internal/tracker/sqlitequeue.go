package tracker

import (
	"context"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type pendingLocation struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement"`
	Latitude   float64
	Longitude  float64
	Accuracy   float64
	FixTime    time.Time
	Token      string
	CapturedAt time.Time `gorm:"index"`
}

func (pendingLocation) TableName() string {
	return "pending_locations"
}

// SQLiteQueue keeps undelivered fixes on disk so they survive agent restarts.
type SQLiteQueue struct {
	db *gorm.DB
}

func OpenSQLiteQueue(path string) (*SQLiteQueue, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return NewSQLiteQueue(db)
}

func NewSQLiteQueue(db *gorm.DB) (*SQLiteQueue, error) {
	if err := db.AutoMigrate(&pendingLocation{}); err != nil {
		return nil, err
	}
	return &SQLiteQueue{db: db}, nil
}

func (q *SQLiteQueue) Enqueue(ctx context.Context, e Entry) error {
	row := pendingLocation{
		Latitude:   e.Fix.Latitude,
		Longitude:  e.Fix.Longitude,
		Accuracy:   e.Fix.Accuracy,
		FixTime:    e.Fix.Timestamp,
		Token:      e.Token,
		CapturedAt: e.CapturedAt,
	}
	return q.db.WithContext(ctx).Create(&row).Error
}

func (q *SQLiteQueue) DrainAll(ctx context.Context, fn func(Entry) error) error {
	var rows []pendingLocation
	if err := q.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return err
	}

	for _, r := range rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		entry := Entry{
			ID: r.ID,
			Fix: Fix{
				Latitude:  r.Latitude,
				Longitude: r.Longitude,
				Accuracy:  r.Accuracy,
				Timestamp: r.FixTime,
			},
			Token:      r.Token,
			CapturedAt: r.CapturedAt,
		}
		if err := fn(entry); err != nil {
			return err
		}
	}

	if len(rows) == 0 {
		return nil
	}
	return q.db.WithContext(ctx).
		Where("id <= ?", rows[len(rows)-1].ID).
		Delete(&pendingLocation{}).Error
}

func (q *SQLiteQueue) Len(ctx context.Context) (int, error) {
	var n int64
	if err := q.db.WithContext(ctx).Model(&pendingLocation{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return int(n), nil
}

func (q *SQLiteQueue) Close() error {
	sqlDB, err := q.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
