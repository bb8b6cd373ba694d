package hosting

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/goliatone/go-bridgepage/content"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// HostedPageRecord is the bun model backing the hosted_pages table. Content
// is stored as a JSON document so the table schema stays stable as the
// builder grows fields.
type HostedPageRecord struct {
	bun.BaseModel `bun:"table:hosted_pages,alias:hp"`

	RecordID  uuid.UUID `bun:"record_id,pk,type:uuid"`
	PageID    string    `bun:"page_id,notnull,unique"`
	UserID    string    `bun:"user_id,notnull"`
	Content   string    `bun:"content,notnull"`
	HTML      string    `bun:"html,notnull"`
	PageURL   string    `bun:"page_url,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull"`
}

func recordFromPage(page *HostedPage) (*HostedPageRecord, error) {
	encoded, err := json.Marshal(page.Content)
	if err != nil {
		return nil, fmt.Errorf("hosting: encode page content: %w", err)
	}
	return &HostedPageRecord{
		RecordID:  page.RecordID,
		PageID:    page.ID,
		UserID:    page.UserID,
		Content:   string(encoded),
		HTML:      page.HTML,
		PageURL:   page.PageURL,
		CreatedAt: page.CreatedAt,
	}, nil
}

func recordToPage(record *HostedPageRecord) (*HostedPage, error) {
	var decoded content.PageContent
	if err := json.Unmarshal([]byte(record.Content), &decoded); err != nil {
		return nil, fmt.Errorf("hosting: decode page content for %q: %w", record.PageID, err)
	}
	return &HostedPage{
		ID:        record.PageID,
		RecordID:  record.RecordID,
		UserID:    record.UserID,
		Content:   decoded,
		HTML:      record.HTML,
		PageURL:   record.PageURL,
		CreatedAt: record.CreatedAt,
	}, nil
}
