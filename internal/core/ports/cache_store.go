package ports

import "go.trai.ch/famsnap/internal/core/domain"

// CacheStore defines the interface for persisting the family cache.
//
//go:generate mockgen -source=cache_store.go -destination=mocks/mock_cache_store.go -package=mocks
type CacheStore interface {
	// Load reads the cache at path.
	// Returns nil, nil if no cache exists. Returns an error if the cache is unreadable or malformed.
	Load(path string) (*domain.Cache, error)

	// Save persists the cache at path. Readers never observe a partially written cache.
	Save(path string, cache *domain.Cache) error

	// Remove deletes the cache at path. A missing cache is not an error.
	Remove(path string) error
}
