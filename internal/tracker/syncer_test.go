package tracker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T, n int) *MemoryQueue {
	t.Helper()
	q := NewMemoryQueue()
	for i := 1; i <= n; i++ {
		require.NoError(t, q.Enqueue(context.Background(), entry(float64(i), "tok")))
	}
	return q
}

func TestSyncer_SendsAllAndClears(t *testing.T) {
	q := seeded(t, 3)
	pusher := &fakePusher{}

	require.NoError(t, NewSyncer(q, pusher).Sync(context.Background()))

	assert.Equal(t, 3, pusher.count())
	n, _ := q.Len(context.Background())
	assert.Zero(t, n)
}

func TestSyncer_AbortsOnNetworkErrorAndResubmitsLater(t *testing.T) {
	q := seeded(t, 3)
	offline := errors.New("offline")
	pusher := &fakePusher{err: func(n int) error {
		if n == 1 {
			return offline
		}
		return nil
	}}
	s := NewSyncer(q, pusher)

	assert.ErrorIs(t, s.Sync(context.Background()), offline)
	assert.Equal(t, 2, pusher.count())
	n, _ := q.Len(context.Background())
	assert.Equal(t, 3, n)

	require.NoError(t, s.Sync(context.Background()))
	// The first entry went out twice.
	assert.Equal(t, 5, pusher.count())
	assert.Equal(t, pusher.pushed[0], pusher.pushed[2])
}

func TestSyncer_RejectedEntryCountsAsHandled(t *testing.T) {
	q := seeded(t, 2)
	pusher := &fakePusher{err: func(n int) error {
		if n == 0 {
			return &StatusError{StatusCode: 401}
		}
		return nil
	}}

	require.NoError(t, NewSyncer(q, pusher).Sync(context.Background()))
	n, _ := q.Len(context.Background())
	assert.Zero(t, n)
}

func TestSyncer_RunSyncsPerSignal(t *testing.T) {
	q := seeded(t, 1)
	pusher := &fakePusher{}
	signals := make(chan struct{})

	done := make(chan struct{})
	go func() {
		NewSyncer(q, pusher).Run(context.Background(), signals)
		close(done)
	}()

	signals <- struct{}{}
	require.Eventually(t, func() bool { return pusher.count() == 1 }, time.Second, 5*time.Millisecond)

	close(signals)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after signals closed")
	}
}
