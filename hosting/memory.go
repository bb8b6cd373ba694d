package hosting

import (
	"context"
	"sort"
	"sync"

	"github.com/goliatone/go-bridgepage/content"
)

// MemoryStore keeps hosted pages in process memory. It is the default backend
// and doubles as the test double, mirroring the blob-URL hosting the builder
// demo used.
type MemoryStore struct {
	mu    sync.RWMutex
	pages map[string]*HostedPage
	urls  *LocatorBuilder
}

// NewMemoryStore creates an empty in-memory store issuing locators from the
// supplied builder.
func NewMemoryStore(urls *LocatorBuilder) *MemoryStore {
	return &MemoryStore{
		pages: make(map[string]*HostedPage),
		urls:  urls,
	}
}

// Put stores the page and returns its locator.
func (m *MemoryStore) Put(_ context.Context, page HostedPage) (string, error) {
	url, err := m.urls.PageURL(page.ID)
	if err != nil {
		return "", err
	}
	page.PageURL = url

	m.mu.Lock()
	defer m.mu.Unlock()
	copied := clonePage(&page)
	m.pages[page.ID] = copied
	return url, nil
}

// Get retrieves a stored page by its public ID.
func (m *MemoryStore) Get(_ context.Context, pageID string) (*HostedPage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	page, ok := m.pages[pageID]
	if !ok {
		return nil, &NotFoundError{PageID: pageID}
	}
	return clonePage(page), nil
}

// List returns all stored pages, newest first.
func (m *MemoryStore) List(_ context.Context) ([]*HostedPage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*HostedPage, 0, len(m.pages))
	for _, page := range m.pages {
		out = append(out, clonePage(page))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func clonePage(src *HostedPage) *HostedPage {
	if src == nil {
		return nil
	}
	copied := *src
	copied.Content.BodyParagraphs = append([]string(nil), src.Content.BodyParagraphs...)
	copied.Content.CTAButtons = append([]string(nil), src.Content.CTAButtons...)
	copied.Content.Bonuses = append([]content.Bonus(nil), src.Content.Bonuses...)
	return &copied
}
