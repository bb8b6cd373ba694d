package hosting

import (
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewHostedPageRepository wires the go-repository-bun handlers for hosted
// page records. page_id is the external identifier; record_id the primary key.
func NewHostedPageRepository(db *bun.DB) repository.Repository[*HostedPageRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*HostedPageRecord]{
		NewRecord: func() *HostedPageRecord { return &HostedPageRecord{} },
		GetID: func(r *HostedPageRecord) uuid.UUID {
			return r.RecordID
		},
		SetID: func(r *HostedPageRecord, id uuid.UUID) {
			r.RecordID = id
		},
		GetIdentifier: func() string {
			return "page_id"
		},
		GetIdentifierValue: func(r *HostedPageRecord) string {
			return r.PageID
		},
	})
}
