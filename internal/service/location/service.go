package location

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"missing-person-tracker/internal/domain"
	"missing-person-tracker/internal/repository"
)

// UpdatesChannel carries every accepted fix as a domain.LocationUpdateEvent.
const UpdatesChannel = "location:updates"

// maxClockSkew is how far ahead of the server a client capture time may be.
// Later timestamps are replaced by the server time, otherwise one bad fix
// would win every last-write-wins comparison that follows.
const maxClockSkew = 2 * time.Minute

type Service interface {
	Update(ctx context.Context, userID uuid.UUID, fix domain.LocationFixInput) error
	History(ctx context.Context, actor domain.Actor, target *uuid.UUID, limit int) ([]domain.LocationHistoryEntry, error)
	ActiveUsers(ctx context.Context, actor domain.Actor) ([]domain.ActiveUserLocation, error)
}

type service struct {
	repo  repository.LocationRepository
	redis *redis.Client
	now   func() time.Time
}

func NewService(repo repository.LocationRepository, redis *redis.Client) Service {
	return &service{repo: repo, redis: redis, now: time.Now}
}

func ValidateFix(fix domain.LocationFixInput) error {
	if fix.Latitude == nil || fix.Longitude == nil {
		return domain.ErrInvalidCoordinates
	}
	lat, lng := *fix.Latitude, *fix.Longitude
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return domain.ErrInvalidCoordinates
	}
	if !domain.ValidCoordinates(lat, lng) {
		return domain.ErrCoordinatesOutRange
	}
	return nil
}

func (s *service) Update(ctx context.Context, userID uuid.UUID, fix domain.LocationFixInput) error {
	if err := ValidateFix(fix); err != nil {
		return err
	}

	now := s.now().UTC()
	recordedAt := now
	if fix.CapturedAt != nil && !fix.CapturedAt.IsZero() {
		recordedAt = fix.CapturedAt.UTC()
		if recordedAt.After(now.Add(maxClockSkew)) {
			logrus.WithFields(logrus.Fields{
				"user_id":     userID,
				"captured_at": recordedAt,
			}).Warn("location fix stamped in the future, using server time")
			recordedAt = now
		}
	}
	// Postgres keeps microseconds; truncate so replays of the same fix compare equal.
	recordedAt = recordedAt.Truncate(time.Microsecond)

	loc := &domain.CurrentLocation{
		UserID:     userID,
		Latitude:   *fix.Latitude,
		Longitude:  *fix.Longitude,
		Accuracy:   fix.Accuracy,
		RecordedAt: recordedAt,
		IsActive:   true,
	}

	res, err := s.repo.Record(ctx, loc)
	if err != nil {
		return err
	}

	if !res.CurrentUpdated {
		logrus.WithFields(logrus.Fields{
			"user_id":     userID,
			"recorded_at": recordedAt,
		}).Debug("stale location fix kept in history only")
		return nil
	}

	s.publish(ctx, domain.LocationUpdateEvent{
		UserID:    userID,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Accuracy:  loc.Accuracy,
		Timestamp: recordedAt,
	})
	return nil
}

func (s *service) publish(ctx context.Context, event domain.LocationUpdateEvent) {
	if s.redis == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := s.redis.Publish(ctx, UpdatesChannel, payload).Err(); err != nil {
		logrus.WithError(err).WithField("user_id", event.UserID).Warn("failed to publish location update")
	}
}

// History returns the caller's own fixes, or another account's fixes when
// the caller is an admin.
func (s *service) History(ctx context.Context, actor domain.Actor, target *uuid.UUID, limit int) ([]domain.LocationHistoryEntry, error) {
	userID := actor.ID
	if target != nil && *target != actor.ID {
		if !actor.IsAdmin {
			return nil, domain.ErrForbidden
		}
		userID = *target
	}

	if limit < 1 {
		limit = domain.DefaultHistoryLimit
	}
	if limit > domain.MaxHistoryLimit {
		limit = domain.MaxHistoryLimit
	}

	history, err := s.repo.History(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = []domain.LocationHistoryEntry{}
	}
	return history, nil
}

func (s *service) ActiveUsers(ctx context.Context, actor domain.Actor) ([]domain.ActiveUserLocation, error) {
	if !actor.IsAdmin {
		return nil, domain.ErrAdminOnly
	}
	locations, err := s.repo.ActiveUsers(ctx)
	if err != nil {
		return nil, err
	}
	if locations == nil {
		locations = []domain.ActiveUserLocation{}
	}
	return locations, nil
}
