package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/goliatone/go-bridgepage/pkg/interfaces"
)

// MemorySink collects page events in memory. It backs the conversion
// tracking endpoint during local development and tests; production
// deployments swap in a real analytics backend behind the same interface.
type MemorySink struct {
	mu     sync.RWMutex
	events []interfaces.Event
	clock  func() time.Time
}

// Option configures a MemorySink.
type Option func(*MemorySink)

// WithClock overrides the timestamp source used when an event arrives
// without one.
func WithClock(clock func() time.Time) Option {
	return func(s *MemorySink) {
		if clock != nil {
			s.clock = clock
		}
	}
}

func NewMemorySink(opts ...Option) *MemorySink {
	sink := &MemorySink{clock: time.Now}
	for _, opt := range opts {
		opt(sink)
	}
	return sink
}

// Record appends the event. A zero timestamp is stamped on arrival.
func (s *MemorySink) Record(_ context.Context, event interfaces.Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = s.clock()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// Events returns the recorded events for a page in arrival order. An empty
// pageID returns everything.
func (s *MemorySink) Events(pageID string) []interfaces.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]interfaces.Event, 0, len(s.events))
	for _, event := range s.events {
		if pageID != "" && event.PageID != pageID {
			continue
		}
		out = append(out, event)
	}
	return out
}

// Count reports how many events of the given type a page has recorded.
func (s *MemorySink) Count(pageID, eventType string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, event := range s.events {
		if event.PageID == pageID && event.Type == eventType {
			n++
		}
	}
	return n
}
