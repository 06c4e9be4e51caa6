// Package kv defines the string-keyed, string-valued store the catalog, resolver and
// settings read from, together with its change subscription contract.
package kv

import "context"

// Well-known keys.
const (
	KeyHuggingFaceToken = "huggingFaceToken"
	KeyGiteeToken       = "giteeToken"
	KeyModelScopeToken  = "msToken"
	KeyCustomProviders  = "customProviders"
	KeyServiceMode      = "serviceMode"
)

// Change describes a completed write.
type Change struct {
	Key     string `json:"key"`
	Removed bool   `json:"removed"`
}

// ChangeFunc is invoked after a successful Set or Remove.
type ChangeFunc func(Change)

// Store is a key-value store with change notifications.
// Get reports ok=false for an absent key; absence is never an error.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Subscribe(fn ChangeFunc) (unsubscribe func())
}

// Has reports whether key holds a non-empty value. Read errors count as absent.
func Has(ctx context.Context, s Store, key string) bool {
	v, ok, err := s.Get(ctx, key)
	return err == nil && ok && v != ""
}

// GetOrDefault returns the value of key or def when it is absent or unreadable.
func GetOrDefault(ctx context.Context, s Store, key, def string) string {
	v, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return def
	}
	return v
}
