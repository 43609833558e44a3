package tracker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type Config struct {
	Source  PositionSource
	Pusher  Pusher
	Queue   Queue
	Token   string
	Options WatchOptions
}

// Tracker owns one position watch for one signed-in session.
type Tracker struct {
	source PositionSource
	pusher Pusher
	queue  Queue
	token  string
	opts   WatchOptions
	now    func() time.Time

	mu       sync.RWMutex
	current  *Fix
	lastErr  error
	tracking bool
	cancel   context.CancelFunc
	done     chan struct{}

	// pushes outlive Stop; they are only tracked so tests and shutdown can
	// wait for them.
	pushes sync.WaitGroup
}

func New(cfg Config) *Tracker {
	opts := cfg.Options
	if opts == (WatchOptions{}) {
		opts = DefaultWatchOptions()
	}
	return &Tracker{
		source: cfg.Source,
		pusher: cfg.Pusher,
		queue:  cfg.Queue,
		token:  cfg.Token,
		opts:   opts,
		now:    time.Now,
	}
}

// Start begins watching. Calling it while already tracking is a no-op.
func (t *Tracker) Start(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.tracking {
		return nil
	}
	if t.token == "" {
		return errors.New("tracker: no session token")
	}

	if t.cancel != nil {
		t.cancel()
	}

	watchCtx, cancel := context.WithCancel(ctx)
	fixes, errs := t.source.Watch(watchCtx, t.opts)

	t.cancel = cancel
	t.tracking = true
	t.lastErr = nil
	t.done = make(chan struct{})

	go t.loop(watchCtx, fixes, errs, t.done)
	logrus.Info("location tracking started")
	return nil
}

// Stop ends the watch. Pushes already in flight are not cancelled.
func (t *Tracker) Stop() {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.cancel = nil
	t.tracking = false
	t.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	logrus.Info("location tracking stopped")
}

// Wait blocks until every push started so far has finished.
func (t *Tracker) Wait() {
	t.pushes.Wait()
}

func (t *Tracker) Current() *Fix {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.current == nil {
		return nil
	}
	fix := *t.current
	return &fix
}

func (t *Tracker) LastError() error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lastErr
}

func (t *Tracker) IsTracking() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tracking
}

func (t *Tracker) loop(ctx context.Context, fixes <-chan Fix, errs <-chan error, done chan struct{}) {
	defer close(done)

	for fixes != nil || errs != nil {
		select {
		case fix, ok := <-fixes:
			if !ok {
				fixes = nil
				continue
			}
			t.mu.Lock()
			t.current = &fix
			t.lastErr = nil
			t.mu.Unlock()

			t.pushes.Add(1)
			go t.push(fix)

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			t.mu.Lock()
			t.lastErr = err
			t.mu.Unlock()
			logrus.WithError(err).Warn(ErrorMessage(err))
		}
	}

	// The source gave up on its own.
	if ctx.Err() == nil {
		t.mu.Lock()
		t.tracking = false
		t.mu.Unlock()
	}
}

func (t *Tracker) push(fix Fix) {
	defer t.pushes.Done()

	ctx := context.Background()
	err := t.pusher.Push(ctx, t.token, fix)
	if err == nil {
		return
	}

	if Rejected(err) {
		logrus.WithError(err).Warn("failed to update location on server")
		return
	}

	entry := Entry{Fix: fix, Token: t.token, CapturedAt: t.now().UTC()}
	if qerr := t.queue.Enqueue(ctx, entry); qerr != nil {
		logrus.WithError(qerr).Error("failed to store location for sync")
		return
	}
	logrus.WithError(err).Debug("location queued for sync")
}
