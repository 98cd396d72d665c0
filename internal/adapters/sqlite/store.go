// Package sqlite stores the family cache in a single-row SQLite table.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	fsadapter "go.trai.ch/famsnap/internal/adapters/fs"
	"go.trai.ch/famsnap/internal/core/domain"
	"go.trai.ch/famsnap/internal/core/ports"
	"go.trai.ch/zerr"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

var _ ports.CacheStore = (*Store)(nil)

const schema = `CREATE TABLE IF NOT EXISTS family_cache (
	slot INTEGER PRIMARY KEY CHECK (slot = 1),
	gedcom_hash TEXT NOT NULL,
	checksum TEXT NOT NULL,
	families BLOB NOT NULL
)`

// Store implements ports.CacheStore on top of SQLite. The entries are kept as one JSON payload
// next to an xxhash checksum of that payload; a payload that does not match its checksum is
// reported as corrupt.
type Store struct{}

// NewStore creates a new SQLite cache store.
func NewStore() *Store {
	return &Store{}
}

func checksum(payload []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(payload))
}

// Load reads the cache from the database at path. It returns nil, nil when the database
// does not exist or holds no cache row.
func (s *Store) Load(path string) (*domain.Cache, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to stat family cache"), "path", path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open family cache"), "path", path)
	}
	defer db.Close() //nolint:errcheck // Read-only use

	var (
		hash, sum string
		payload   []byte
	)
	err = db.QueryRow(`SELECT gedcom_hash, checksum, families FROM family_cache WHERE slot = 1`).
		Scan(&hash, &sum, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to query family cache"), "path", path)
	}

	if got := checksum(payload); got != sum {
		return nil, zerr.With(
			zerr.With(zerr.With(zerr.New("family cache checksum mismatch"), "path", path), "expected", sum),
			"actual", got,
		)
	}

	var families []domain.FamilyEntry
	if err := json.Unmarshal(payload, &families); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to unmarshal family cache"), "path", path)
	}
	if families == nil {
		return nil, zerr.With(zerr.New("family cache is incomplete"), "path", path)
	}
	if i := domain.IncompleteEntry(families); i >= 0 {
		return nil, zerr.With(zerr.With(zerr.New("family cache entry is incomplete"), "path", path), "index", i)
	}

	return &domain.Cache{Hash: hash, Families: families}, nil
}

// Save replaces the cache row in a single transaction.
func (s *Store) Save(path string, cache *domain.Cache) (retErr error) {
	families := cache.Families
	if families == nil {
		families = []domain.FamilyEntry{}
	}
	payload, err := json.Marshal(families)
	if err != nil {
		return zerr.Wrap(domain.ErrCacheMarshalFailed, err.Error())
	}

	fail := func(err error, msg string) error {
		return zerr.With(zerr.Wrap(domain.ErrCacheWriteFailed, msg+": "+err.Error()), "path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return fail(err, "create directory")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fail(err, "open database")
	}
	defer db.Close() //nolint:errcheck // Best effort close in defer

	if _, err := db.Exec(schema); err != nil {
		return fail(err, "create table")
	}

	tx, err := db.Begin()
	if err != nil {
		return fail(err, "begin transaction")
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.Exec(
		`INSERT INTO family_cache(slot, gedcom_hash, checksum, families) VALUES(1, ?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET
			gedcom_hash = excluded.gedcom_hash,
			checksum = excluded.checksum,
			families = excluded.families`,
		cache.Hash, checksum(payload), payload,
	); err != nil {
		return fail(err, "upsert cache")
	}

	if err := tx.Commit(); err != nil {
		return fail(err, "commit")
	}
	return nil
}

// Remove deletes the database at path together with any rollback journal.
func (s *Store) Remove(path string) error {
	for _, p := range []string{path, path + "-journal", path + "-wal", path + "-shm"} {
		if err := fsadapter.RemoveIfExists(p); err != nil {
			return zerr.Wrap(domain.ErrCacheRemoveFailed, err.Error())
		}
	}
	return nil
}
