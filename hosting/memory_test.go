package hosting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-bridgepage/content"
	"github.com/goliatone/go-bridgepage/internal/identity"
)

func testPage(id string, createdAt time.Time) HostedPage {
	return HostedPage{
		ID:       id,
		RecordID: identity.HostedPageUUID(id),
		UserID:   "user-1",
		Content: content.PageContent{
			Headline:       "Headline",
			Subheadline:    "Subheadline",
			BodyParagraphs: []string{"Paragraph"},
			CTAButtons:     []string{"CTA"},
			AffiliateLink:  "https://example.com",
			PrimaryColor:   "#3b82f6",
			SecondaryColor: "#1e40af",
			HeadingFont:    "Poppins",
			BodyFont:       "Inter",
			Bonuses:        []content.Bonus{{Title: "Bonus", Type: "PDF Guide", Enabled: true}},
		},
		HTML:      "<html>" + id + "</html>",
		CreatedAt: createdAt,
	}
}

func TestMemoryStorePutGetRoundtrip(t *testing.T) {
	store := NewMemoryStore(NewLocatorBuilder("https://pages.test"))
	ctx := context.Background()

	page := testPage("page-1", time.Now())
	url, err := store.Put(ctx, page)
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if url != "https://pages.test/pages/page-1" {
		t.Fatalf("unexpected url %q", url)
	}

	got, err := store.Get(ctx, "page-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.HTML != page.HTML {
		t.Fatal("stored document does not match")
	}
	if got.PageURL != url {
		t.Fatalf("stored url %q does not match put result %q", got.PageURL, url)
	}
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore(NewLocatorBuilder("https://pages.test"))

	_, err := store.Get(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected not found error")
	}
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %T", err)
	}
	if notFound.PageID != "missing" {
		t.Fatalf("unexpected page id %q", notFound.PageID)
	}
}

func TestMemoryStoreCloneIsolation(t *testing.T) {
	store := NewMemoryStore(NewLocatorBuilder("https://pages.test"))
	ctx := context.Background()

	page := testPage("page-1", time.Now())
	if _, err := store.Put(ctx, page); err != nil {
		t.Fatalf("put: %v", err)
	}

	first, err := store.Get(ctx, "page-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	first.Content.BodyParagraphs[0] = "mutated"
	first.Content.Bonuses[0].Title = "mutated"

	second, err := store.Get(ctx, "page-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if second.Content.BodyParagraphs[0] != "Paragraph" {
		t.Fatal("stored paragraphs leaked through a returned clone")
	}
	if second.Content.Bonuses[0].Title != "Bonus" {
		t.Fatal("stored bonuses leaked through a returned clone")
	}
}

func TestMemoryStoreListNewestFirst(t *testing.T) {
	store := NewMemoryStore(NewLocatorBuilder("https://pages.test"))
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"page-old", "page-mid", "page-new"} {
		if _, err := store.Put(ctx, testPage(id, base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("put %s: %v", id, err)
		}
	}

	pages, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(pages))
	}
	want := []string{"page-new", "page-mid", "page-old"}
	for i, id := range want {
		if pages[i].ID != id {
			t.Fatalf("position %d: got %q want %q", i, pages[i].ID, id)
		}
	}
}
