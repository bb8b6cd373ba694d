package content

import (
	"strings"
	"testing"
	"time"
)

func fixedIDGenerator(random string, at time.Time) *IDGenerator {
	return NewIDGenerator(
		WithIDClock(func() time.Time { return at }),
		WithIDRandom(func() string { return random }),
	)
}

func TestPageIDFormat(t *testing.T) {
	at := time.UnixMilli(1700000000000)
	g := fixedIDGenerator("ab12cd", at)

	got := g.PageID("Transform Your Business")
	want := "transform-your-busin-ab12cd-1700000000000"
	if got != want {
		t.Fatalf("page id mismatch: got %q want %q", got, want)
	}
}

func TestPageIDEmptyHeadlineFallsBack(t *testing.T) {
	g := fixedIDGenerator("zzzzzz", time.UnixMilli(42))
	got := g.PageID("")
	if !strings.HasPrefix(got, "page-") {
		t.Fatalf("expected fallback slug prefix, got %q", got)
	}
}

func TestHeadlineSlug(t *testing.T) {
	cases := []struct {
		name     string
		headline string
		want     string
	}{
		{"lowercases and hyphenates", "Hello World", "hello-world"},
		{"collapses symbol runs", "Boost!!! Your -- Sales", "boost-your-sales"},
		{"truncates to twenty characters", "this headline is definitely too long to keep", "this-headline-is-def"},
		{"symbols only fall back", "!!! ???", "page"},
		{"empty falls back", "", "page"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HeadlineSlug(tc.headline); got != tc.want {
				t.Fatalf("HeadlineSlug(%q) = %q, want %q", tc.headline, got, tc.want)
			}
		})
	}
}

func TestHeadlineSlugNoTrailingHyphenAfterTruncation(t *testing.T) {
	got := HeadlineSlug("twenty characters ok")
	if strings.HasSuffix(got, "-") || strings.HasPrefix(got, "-") {
		t.Fatalf("slug has dangling hyphen: %q", got)
	}
}

func TestNewPageIDUniqueness(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 50; i++ {
		id := NewPageID("repeat headline")
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate page id generated: %q", id)
		}
		seen[id] = struct{}{}
	}
}
