// Package hosting provides the storage capability behind the publisher's
// uploading stage: a page put into a store must be durably retrievable by its
// page ID afterward. "Download a blob" (memory) and "upload to a database"
// (bun) are interchangeable backends of the same contract.
package hosting

import (
	"context"
	"fmt"
	"time"

	"github.com/goliatone/go-bridgepage/content"
	"github.com/google/uuid"
)

// HostedPage is the persisted record of a successful generation. Records are
// created once and never mutated.
type HostedPage struct {
	ID        string
	RecordID  uuid.UUID
	UserID    string
	Content   content.PageContent
	HTML      string
	PageURL   string
	CreatedAt time.Time
}

// Store abstracts where generated documents live. Put returns the locator the
// stored page resolves to; a failed Put must leave no retrievable page behind.
type Store interface {
	Put(ctx context.Context, page HostedPage) (string, error)
	Get(ctx context.Context, pageID string) (*HostedPage, error)
	List(ctx context.Context) ([]*HostedPage, error)
}

// NotFoundError reports a missing hosted page.
type NotFoundError struct {
	PageID string
}

func (e *NotFoundError) Error() string {
	if e == nil || e.PageID == "" {
		return "hosting: page not found"
	}
	return fmt.Sprintf("hosting: page %q not found", e.PageID)
}
