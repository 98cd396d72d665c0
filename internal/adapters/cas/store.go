// Package cas stores the family cache as a single JSON document addressed by the content
// hash of the source it was computed from.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	fsadapter "go.trai.ch/famsnap/internal/adapters/fs"
	"go.trai.ch/famsnap/internal/core/domain"
	"go.trai.ch/famsnap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheStore = (*Store)(nil)

// Store implements ports.CacheStore using a flat JSON file.
type Store struct{}

// NewStore creates a new JSON cache store.
func NewStore() *Store {
	return &Store{}
}

// document mirrors domain.Cache with pointer fields so missing keys can be told apart
// from empty values.
type document struct {
	Hash     *string               `json:"gedcom_hash"`
	Families *[]domain.FamilyEntry `json:"families"`
}

// Load reads the cache at path. It returns nil, nil when no cache exists.
func (s *Store) Load(path string) (*domain.Cache, error) {
	//nolint:gosec // Path is provided by trusted caller
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read family cache"), "path", path)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to unmarshal family cache"), "path", path)
	}
	if doc.Hash == nil || doc.Families == nil {
		return nil, zerr.With(zerr.New("family cache is incomplete"), "path", path)
	}
	if i := domain.IncompleteEntry(*doc.Families); i >= 0 {
		return nil, zerr.With(zerr.With(zerr.New("family cache entry is incomplete"), "path", path), "index", i)
	}

	return &domain.Cache{Hash: *doc.Hash, Families: *doc.Families}, nil
}

// Save writes the cache to path atomically.
func (s *Store) Save(path string, cache *domain.Cache) error {
	families := cache.Families
	if families == nil {
		families = []domain.FamilyEntry{}
	}

	data, err := json.MarshalIndent(domain.Cache{Hash: cache.Hash, Families: families}, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrCacheMarshalFailed, err.Error())
	}

	if err := fsadapter.WriteFileAtomic(path, append(data, '\n'), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrCacheWriteFailed, err.Error()), "path", path)
	}

	return nil
}

// Remove deletes the cache at path.
func (s *Store) Remove(path string) error {
	if err := fsadapter.RemoveIfExists(path); err != nil {
		return zerr.Wrap(domain.ErrCacheRemoveFailed, err.Error())
	}
	return nil
}
