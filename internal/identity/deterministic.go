package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID maps a stable key onto a deterministic UUID so repeated publishes of
// the same page produce the same record identity. Keys carry a
// "go-bridgepage:<entity>:" prefix to keep entity namespaces disjoint.
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// HostedPageUUID derives the record UUID for a hosted page from its public ID.
func HostedPageUUID(pageID string) uuid.UUID {
	return UUID("go-bridgepage:hosted_page:" + strings.TrimSpace(pageID))
}

// UserUUID derives a stable UUID for an external user identifier.
func UserUUID(userID string) uuid.UUID {
	return UUID("go-bridgepage:user:" + strings.TrimSpace(userID))
}
