package hosting

import (
	"context"
	"fmt"
	"sort"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/uptrace/bun"
)

// BunStore persists hosted pages through go-repository-bun. It satisfies
// Store so the publisher never knows which backend it writes to.
type BunStore struct {
	repo repository.Repository[*HostedPageRecord]
	urls *LocatorBuilder
}

func NewBunStore(db *bun.DB, urls *LocatorBuilder) *BunStore {
	return NewBunStoreWithCache(db, urls, nil, nil)
}

// NewBunStoreWithCache constructs a BunStore with optional read caching.
func NewBunStoreWithCache(db *bun.DB, urls *LocatorBuilder, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunStore {
	base := NewHostedPageRepository(db)
	return &BunStore{
		repo: wrapWithCache(base, cacheService, keySerializer),
		urls: urls,
	}
}

func (s *BunStore) Put(ctx context.Context, page HostedPage) (string, error) {
	pageURL, err := s.urls.PageURL(page.ID)
	if err != nil {
		return "", err
	}
	page.PageURL = pageURL

	record, err := recordFromPage(&page)
	if err != nil {
		return "", err
	}
	if _, err := s.repo.Create(ctx, record); err != nil {
		return "", fmt.Errorf("hosting: store page %q: %w", page.ID, err)
	}
	return pageURL, nil
}

func (s *BunStore) Get(ctx context.Context, pageID string) (*HostedPage, error) {
	record, err := s.repo.GetByIdentifier(ctx, pageID)
	if err != nil {
		return nil, mapRepositoryError(err, pageID)
	}
	return recordToPage(record)
}

func (s *BunStore) List(ctx context.Context) ([]*HostedPage, error) {
	records, _, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("hosting: list pages: %w", err)
	}
	pages := make([]*HostedPage, 0, len(records))
	for _, record := range records {
		page, err := recordToPage(record)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	sort.Slice(pages, func(i, j int) bool {
		return pages[i].CreatedAt.After(pages[j].CreatedAt)
	})
	return pages, nil
}

// EnsureSchema creates the hosted_pages table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *bun.DB) error {
	if _, err := db.NewCreateTable().Model((*HostedPageRecord)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("hosting: create hosted_pages table: %w", err)
	}
	return nil
}

func mapRepositoryError(err error, pageID string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{PageID: pageID}
	}
	return fmt.Errorf("hosting: load page %q: %w", pageID, err)
}

func wrapWithCache(base repository.Repository[*HostedPageRecord], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[*HostedPageRecord] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}
