package tracker

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Syncer replays queued fixes. Replays are not idempotent on the client:
// an aborted drain resubmits entries that already went through. The server
// absorbs that because history is keyed on (user, recorded_at).
type Syncer struct {
	queue  Queue
	pusher Pusher
}

func NewSyncer(queue Queue, pusher Pusher) *Syncer {
	return &Syncer{queue: queue, pusher: pusher}
}

// Sync posts every queued entry sequentially. A network failure aborts the
// drain; a server rejection is logged and the entry counts as handled.
func (s *Syncer) Sync(ctx context.Context) error {
	sent := 0
	err := s.queue.DrainAll(ctx, func(e Entry) error {
		if err := s.pusher.Push(ctx, e.Token, e.Fix); err != nil {
			if !Rejected(err) {
				return err
			}
			logrus.WithError(err).WithField("entry_id", e.ID).Warn("queued location rejected")
		}
		sent++
		return nil
	})
	if err != nil {
		logrus.WithError(err).WithField("sent", sent).Error("location sync failed")
		return err
	}
	if sent > 0 {
		logrus.WithField("count", sent).Info("queued locations synced")
	}
	return nil
}

// Run syncs once per signal until signals is closed or ctx ends.
func (s *Syncer) Run(ctx context.Context, signals <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-signals:
			if !ok {
				return
			}
			_ = s.Sync(ctx)
		}
	}
}
