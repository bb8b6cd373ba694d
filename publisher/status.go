package publisher

import (
	"context"
	"sync"
	"time"
)

// Stage names one step in the linear generation lifecycle.
type Stage string

const (
	StageIdle        Stage = "idle"
	StageValidating  Stage = "validating"
	StageGenerating  Stage = "generating"
	StageUploading   Stage = "uploading"
	StageConfiguring Stage = "configuring"
	StageTesting     Stage = "testing"
	StageComplete    Stage = "complete"
	StageFailed      Stage = "failed"
)

// Terminal reports whether the stage ends a generation attempt.
func (s Stage) Terminal() bool {
	return s == StageComplete || s == StageFailed
}

// Status is the transient per-attempt record keyed by page identifier. One
// Status is emitted after every stage transition; subscribers filter by
// PageID on the receiving side.
type Status struct {
	PageID    string
	Stage     Stage
	Timestamp time.Time
	Error     string
	PageURL   string
}

// statusTracker keeps the latest Status per page plus the set of in-flight
// generations. Concurrent runs for distinct page IDs are independent; a
// second run for the same page ID is rejected while the first is active.
type statusTracker struct {
	mu       sync.RWMutex
	statuses map[string]Status
	active   map[string]struct{}
}

func newStatusTracker() *statusTracker {
	return &statusTracker{
		statuses: make(map[string]Status),
		active:   make(map[string]struct{}),
	}
}

func (t *statusTracker) acquire(pageID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.active[pageID]; ok {
		return false
	}
	t.active[pageID] = struct{}{}
	return true
}

func (t *statusTracker) release(pageID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.active, pageID)
}

func (t *statusTracker) set(status Status) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.statuses[status.PageID] = status
}

func (t *statusTracker) get(pageID string) Status {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if status, ok := t.statuses[pageID]; ok {
		return status
	}
	return Status{PageID: pageID, Stage: StageIdle}
}

// subscriberBuffer bounds the per-subscriber channel. A full buffer drops the
// oldest-undelivered semantics in favour of non-blocking emission; the
// pipeline never waits on listeners.
const subscriberBuffer = 16

// statusBroadcaster fans status events out to any number of subscribers,
// grouped by page ID. Emission is fire-and-forget.
type statusBroadcaster struct {
	mu       sync.Mutex
	watchers map[string]map[uint64]chan Status
	nextID   uint64
}

func newStatusBroadcaster() *statusBroadcaster {
	return &statusBroadcaster{
		watchers: make(map[string]map[uint64]chan Status),
	}
}

// Subscribe registers a listener for the given page ID. The channel closes
// when ctx is cancelled.
func (b *statusBroadcaster) Subscribe(ctx context.Context, pageID string) <-chan Status {
	if ctx == nil {
		ctx = context.Background()
	}
	ch := make(chan Status, subscriberBuffer)
	if err := ctx.Err(); err != nil {
		close(ch)
		return ch
	}

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	group, ok := b.watchers[pageID]
	if !ok {
		group = make(map[uint64]chan Status)
		b.watchers[pageID] = group
	}
	group[id] = ch
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		if group, ok := b.watchers[pageID]; ok {
			delete(group, id)
			if len(group) == 0 {
				delete(b.watchers, pageID)
			}
		}
		close(ch)
		b.mu.Unlock()
	}()

	return ch
}

// Broadcast delivers the status to every subscriber of its page ID without
// blocking; slow subscribers miss events rather than stalling the pipeline.
// Sends stay under b.mu so an unsubscribing listener cannot close a channel
// between lookup and send; the sends never block, so the lock is held only
// briefly.
func (b *statusBroadcaster) Broadcast(status Status) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.watchers[status.PageID] {
		select {
		case ch <- status:
		default:
		}
	}
}
