package tracker

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Entry is a fix that could not be delivered, with the token that was in
// use when it was captured.
type Entry struct {
	ID         uint64
	Fix        Fix
	Token      string
	CapturedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, e Entry) error
	// DrainAll hands every queued entry to fn in insertion order. The first
	// error aborts the drain and leaves the queue untouched; entries are
	// removed only after fn succeeded for all of them.
	DrainAll(ctx context.Context, fn func(Entry) error) error
	Len(ctx context.Context) (int, error)
}

type MemoryQueue struct {
	mu      sync.Mutex
	nextID  uint64
	entries []Entry
}

func NewMemoryQueue() *MemoryQueue {
	return &MemoryQueue{}
}

func (q *MemoryQueue) Enqueue(_ context.Context, e Entry) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.nextID++
	e.ID = q.nextID
	q.entries = append(q.entries, e)
	return nil
}

func (q *MemoryQueue) DrainAll(ctx context.Context, fn func(Entry) error) error {
	q.mu.Lock()
	snapshot := make([]Entry, len(q.entries))
	copy(snapshot, q.entries)
	q.mu.Unlock()

	sort.Slice(snapshot, func(i, j int) bool { return snapshot[i].ID < snapshot[j].ID })

	for _, e := range snapshot {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(e); err != nil {
			return err
		}
	}

	if len(snapshot) == 0 {
		return nil
	}
	drained := snapshot[len(snapshot)-1].ID

	q.mu.Lock()
	defer q.mu.Unlock()
	kept := q.entries[:0]
	for _, e := range q.entries {
		if e.ID > drained {
			kept = append(kept, e)
		}
	}
	q.entries = kept
	return nil
}

func (q *MemoryQueue) Len(_ context.Context) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries), nil
}
