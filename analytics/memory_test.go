package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/goliatone/go-bridgepage/pkg/interfaces"
)

func TestMemorySinkRecordAndFilter(t *testing.T) {
	sink := NewMemorySink()
	ctx := context.Background()

	events := []interfaces.Event{
		{PageID: "page-1", Type: "page_view"},
		{PageID: "page-1", Type: "cta_click", Data: map[string]any{"button": "Get Access"}},
		{PageID: "page-2", Type: "page_view"},
	}
	for _, event := range events {
		if err := sink.Record(ctx, event); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	got := sink.Events("page-1")
	if len(got) != 2 {
		t.Fatalf("expected 2 events for page-1, got %d", len(got))
	}
	if got[0].Type != "page_view" || got[1].Type != "cta_click" {
		t.Fatalf("events out of arrival order: %+v", got)
	}

	all := sink.Events("")
	if len(all) != 3 {
		t.Fatalf("expected 3 events total, got %d", len(all))
	}

	if n := sink.Count("page-1", "cta_click"); n != 1 {
		t.Fatalf("expected 1 cta_click on page-1, got %d", n)
	}
	if n := sink.Count("page-2", "cta_click"); n != 0 {
		t.Fatalf("expected 0 cta_clicks on page-2, got %d", n)
	}
}

func TestMemorySinkStampsMissingTimestamp(t *testing.T) {
	at := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	sink := NewMemorySink(WithClock(func() time.Time { return at }))

	if err := sink.Record(context.Background(), interfaces.Event{PageID: "page-1", Type: "page_view"}); err != nil {
		t.Fatalf("record: %v", err)
	}
	got := sink.Events("page-1")
	if len(got) != 1 || !got[0].Timestamp.Equal(at) {
		t.Fatalf("expected stamped timestamp %v, got %+v", at, got)
	}

	explicit := at.Add(time.Hour)
	if err := sink.Record(context.Background(), interfaces.Event{PageID: "page-1", Type: "cta_click", Timestamp: explicit}); err != nil {
		t.Fatalf("record: %v", err)
	}
	got = sink.Events("page-1")
	if !got[1].Timestamp.Equal(explicit) {
		t.Fatal("explicit timestamp was overwritten")
	}
}
