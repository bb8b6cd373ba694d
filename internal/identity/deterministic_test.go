package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDIsDeterministic(t *testing.T) {
	first := UUID("some-key")
	second := UUID("some-key")
	if first != second {
		t.Fatalf("same key produced different UUIDs: %s vs %s", first, second)
	}
	if first == uuid.Nil {
		t.Fatal("derived UUID should not be nil")
	}
}

func TestUUIDDistinctKeys(t *testing.T) {
	if UUID("key-a") == UUID("key-b") {
		t.Fatal("distinct keys produced the same UUID")
	}
}

func TestHostedPageUUIDScopesKeys(t *testing.T) {
	pageID := "transform-your-busin-ab12cd-1700000000000"
	if HostedPageUUID(pageID) == UserUUID(pageID) {
		t.Fatal("hosted page and user namespaces should not collide")
	}
	if HostedPageUUID(pageID) != HostedPageUUID(pageID) {
		t.Fatal("hosted page UUID should be stable")
	}
}
