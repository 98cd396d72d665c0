// Package cache keeps the family entries of a genealogy source on disk, keyed by the
// source's content hash, so unchanged sources are not parsed again.
package cache

import (
	"context"
	"fmt"

	"go.trai.ch/famsnap/internal/core/domain"
	"go.trai.ch/famsnap/internal/core/ports"
	"go.trai.ch/zerr"
)

// Manager decides between the persisted family cache and a rebuild from the source.
type Manager struct {
	hasher ports.Hasher
	loader ports.SourceLoader
	store  ports.CacheStore
	logger ports.Logger
}

// NewManager creates a new Manager.
func NewManager(
	hasher ports.Hasher,
	loader ports.SourceLoader,
	store ports.CacheStore,
	logger ports.Logger,
) *Manager {
	return &Manager{
		hasher: hasher,
		loader: loader,
		store:  store,
		logger: logger,
	}
}

// Result is the outcome of Resolve.
type Result struct {
	// Hash is the content hash of the source the entries were computed from.
	Hash string
	// Entries lists every eligible family in eligibility order.
	Entries []domain.FamilyEntry
	// Rebuilt is true when the entries were computed from the source in this run.
	Rebuilt bool
}

// CurrentHash returns the content hash of the source file.
func (m *Manager) CurrentHash(path string) (string, error) {
	return m.hasher.ComputeFileHash(path)
}

// Load returns the persisted cache, or nil when there is none.
// A cache that cannot be read is logged and treated as absent.
func (m *Manager) Load(path string) *domain.Cache {
	c, err := m.store.Load(path)
	if err != nil {
		m.logger.Warn(fmt.Sprintf("ignoring unreadable family cache %s: %v", path, err))
		return nil
	}
	return c
}

// IsValid reports whether c was computed from a source with the given hash.
func (m *Manager) IsValid(c *domain.Cache, hash string) bool {
	return c != nil && c.Hash == hash
}

// Rebuild parses the source and assembles the entry of every eligible individual.
func (m *Manager) Rebuild(ctx context.Context, sourcePath string) ([]domain.FamilyEntry, error) {
	src, err := m.loader.Load(ctx, sourcePath)
	if err != nil {
		return nil, err
	}

	ids := src.EligibleIDs()
	if len(ids) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoEligibleFamilies, "nothing to display"), "path", sourcePath)
	}

	entries := make([]domain.FamilyEntry, 0, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entry, err := src.BuildEntry(id)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Save persists the entries together with the hash of the source they came from.
func (m *Manager) Save(path, hash string, entries []domain.FamilyEntry) error {
	return m.store.Save(path, &domain.Cache{Hash: hash, Families: entries})
}

// Resolve returns the entries for the source, reading them from the cache when it matches
// the source's current hash and rebuilding and saving them otherwise. A valid cache is never
// rewritten. With force set the cache is rebuilt regardless of its state.
func (m *Manager) Resolve(ctx context.Context, sourcePath, cachePath string, force bool) (*Result, error) {
	hash, err := m.CurrentHash(sourcePath)
	if err != nil {
		return nil, err
	}

	if !force {
		c := m.Load(cachePath)
		if m.IsValid(c, hash) && len(c.Families) > 0 {
			return &Result{Hash: hash, Entries: c.Families}, nil
		}
	}

	entries, err := m.Rebuild(ctx, sourcePath)
	if err != nil {
		return nil, err
	}

	if err := m.Save(cachePath, hash, entries); err != nil {
		return nil, err
	}

	return &Result{Hash: hash, Entries: entries, Rebuilt: true}, nil
}
