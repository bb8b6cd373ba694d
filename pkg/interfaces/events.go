package interfaces

import (
	"context"
	"time"
)

// Event captures a single tracked occurrence attributed to a page.
type Event struct {
	PageID    string
	Type      string
	Data      map[string]any
	Timestamp time.Time
}

// EventSink records page lifecycle and tracking events. Implementations must
// tolerate concurrent calls; recording is fire-and-forget from the caller's
// perspective and must never fail the publishing pipeline.
type EventSink interface {
	Record(ctx context.Context, event Event) error
}
