package tracker

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queues(t *testing.T) map[string]func() Queue {
	return map[string]func() Queue{
		"memory": func() Queue { return NewMemoryQueue() },
		"sqlite": func() Queue {
			q, err := OpenSQLiteQueue(filepath.Join(t.TempDir(), "queue.db"))
			require.NoError(t, err)
			t.Cleanup(func() { q.Close() })
			return q
		},
	}
}

func entry(lat float64, token string) Entry {
	return Entry{
		Fix:        Fix{Latitude: lat, Longitude: 10, Accuracy: 5, Timestamp: time.Date(2024, 1, 1, 0, 0, int(lat), 0, time.UTC)},
		Token:      token,
		CapturedAt: time.Date(2024, 1, 1, 0, 1, 0, 0, time.UTC),
	}
}

func TestQueue_DrainAllInOrderThenClears(t *testing.T) {
	for name, newQueue := range queues(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			q := newQueue()

			for i := 1; i <= 3; i++ {
				require.NoError(t, q.Enqueue(ctx, entry(float64(i), "tok")))
			}

			var seen []float64
			err := q.DrainAll(ctx, func(e Entry) error {
				assert.Equal(t, "tok", e.Token)
				assert.NotZero(t, e.ID)
				seen = append(seen, e.Fix.Latitude)
				return nil
			})
			require.NoError(t, err)
			assert.Equal(t, []float64{1, 2, 3}, seen)

			n, err := q.Len(ctx)
			require.NoError(t, err)
			assert.Zero(t, n)
		})
	}
}

func TestQueue_FailedDrainKeepsEverything(t *testing.T) {
	for name, newQueue := range queues(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			q := newQueue()

			for i := 1; i <= 3; i++ {
				require.NoError(t, q.Enqueue(ctx, entry(float64(i), "tok")))
			}

			boom := errors.New("offline")
			calls := 0
			err := q.DrainAll(ctx, func(e Entry) error {
				calls++
				if calls == 2 {
					return boom
				}
				return nil
			})
			assert.ErrorIs(t, err, boom)
			assert.Equal(t, 2, calls)

			n, err := q.Len(ctx)
			require.NoError(t, err)
			assert.Equal(t, 3, n)
		})
	}
}

func TestQueue_EntriesAddedDuringDrainSurvive(t *testing.T) {
	for name, newQueue := range queues(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			q := newQueue()
			require.NoError(t, q.Enqueue(ctx, entry(1, "tok")))

			err := q.DrainAll(ctx, func(e Entry) error {
				return q.Enqueue(ctx, entry(2, "tok"))
			})
			require.NoError(t, err)

			var left []float64
			require.NoError(t, q.DrainAll(ctx, func(e Entry) error {
				left = append(left, e.Fix.Latitude)
				return nil
			}))
			assert.Equal(t, []float64{2}, left)
		})
	}
}

func TestSQLiteQueue_PreservesFixFields(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "queue.db")

	q, err := OpenSQLiteQueue(path)
	require.NoError(t, err)
	in := entry(7, "session-token")
	require.NoError(t, q.Enqueue(ctx, in))
	require.NoError(t, q.Close())

	reopened, err := OpenSQLiteQueue(path)
	require.NoError(t, err)
	defer reopened.Close()

	var got Entry
	require.NoError(t, reopened.DrainAll(ctx, func(e Entry) error {
		got = e
		return nil
	}))
	assert.Equal(t, in.Token, got.Token)
	assert.Equal(t, in.Fix.Latitude, got.Fix.Latitude)
	assert.Equal(t, in.Fix.Accuracy, got.Fix.Accuracy)
	assert.True(t, in.Fix.Timestamp.Equal(got.Fix.Timestamp))
	assert.True(t, in.CapturedAt.Equal(got.CapturedAt))
}
