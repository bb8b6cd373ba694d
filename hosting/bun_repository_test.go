package hosting

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open("sqlite3", "file:hosting_test?mode=memory&cache=shared&_fk=1")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sqldb.Close() })

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := EnsureSchema(ctx, db); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return db
}

func TestBunStorePutGetRoundtrip(t *testing.T) {
	store := NewBunStore(newTestDB(t), NewLocatorBuilder("https://pages.test"))
	ctx := context.Background()

	page := testPage("page-bun-1", time.Now().UTC().Truncate(time.Second))
	url, err := store.Put(ctx, page)
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if url != "https://pages.test/pages/page-bun-1" {
		t.Fatalf("unexpected url %q", url)
	}

	got, err := store.Get(ctx, "page-bun-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.HTML != page.HTML {
		t.Fatal("stored document does not match")
	}
	if got.UserID != page.UserID {
		t.Fatalf("stored user %q does not match %q", got.UserID, page.UserID)
	}
	if got.Content.Headline != page.Content.Headline {
		t.Fatal("content did not survive the JSON roundtrip")
	}
	if len(got.Content.Bonuses) != 1 || got.Content.Bonuses[0].Title != "Bonus" {
		t.Fatalf("bonuses did not survive the JSON roundtrip: %+v", got.Content.Bonuses)
	}
	if got.RecordID != page.RecordID {
		t.Fatalf("record id %s does not match %s", got.RecordID, page.RecordID)
	}
}

func TestBunStoreGetMissing(t *testing.T) {
	store := NewBunStore(newTestDB(t), NewLocatorBuilder("https://pages.test"))

	_, err := store.Get(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected not found error")
	}
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %T: %v", err, err)
	}
}

func TestBunStoreListNewestFirst(t *testing.T) {
	store := NewBunStore(newTestDB(t), NewLocatorBuilder("https://pages.test"))
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
