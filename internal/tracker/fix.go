// Package tracker is the device-side location agent: it watches a position
// source, pushes each fix to the API and queues fixes that could not be
// delivered for replay once connectivity returns.
package tracker

import (
	"context"
	"time"

	"missing-person-tracker/internal/domain"
)

// Fix is one position reading. Accuracy is in meters; zero means the source
// did not report one.
type Fix struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  float64   `json:"accuracy"`
	Timestamp time.Time `json:"timestamp"`
}

// Input converts the fix into the body accepted by POST /api/location/update.
func (f Fix) Input() domain.LocationFixInput {
	lat, lng := f.Latitude, f.Longitude
	in := domain.LocationFixInput{Latitude: &lat, Longitude: &lng}
	if f.Accuracy > 0 {
		acc := f.Accuracy
		in.Accuracy = &acc
	}
	if !f.Timestamp.IsZero() {
		ts := f.Timestamp.UTC()
		in.CapturedAt = &ts
	}
	return in
}

type WatchOptions struct {
	HighAccuracy bool
	// Timeout is how long the source may go without producing a fix before
	// reporting ErrTimeout.
	Timeout time.Duration
	// MaximumAge drops fixes older than this.
	MaximumAge time.Duration
}

func DefaultWatchOptions() WatchOptions {
	return WatchOptions{
		HighAccuracy: true,
		Timeout:      15 * time.Second,
		MaximumAge:   30 * time.Second,
	}
}

// PositionSource streams fixes until ctx is cancelled. Both channels are
// closed when the watch ends.
type PositionSource interface {
	Watch(ctx context.Context, opts WatchOptions) (<-chan Fix, <-chan error)
}
