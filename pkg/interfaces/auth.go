package interfaces

import "context"

// AuthProvider resolves the identity attributed to generated pages. The
// library ships no real authentication; hosts supply their own implementation
// or use the static provider from the root package.
type AuthProvider interface {
	CurrentUserID(ctx context.Context) (string, error)
}
