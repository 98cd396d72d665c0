package sqlite_test

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/famsnap/internal/adapters/sqlite"
	"go.trai.ch/famsnap/internal/core/domain"
)

func sampleCache(hash string) *domain.Cache {
	death := "1920"
	return &domain.Cache{
		Hash: hash,
		Families: []domain.FamilyEntry{
			{
				ID: "I001",
				Family: domain.Family{
					Subject:  &domain.PersonSnapshot{FirstName: "John", LastName: "Doe", Death: &death},
					Spouse:   &domain.PersonSnapshot{FirstName: "Jane", LastName: "Smith"},
					Children: []domain.ChildEntry{},
				},
			},
		},
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", domain.CacheDBFileName)
	store := sqlite.NewStore()

	require.NoError(t, store.Save(path, sampleCache("first")))
	require.NoError(t, store.Save(path, sampleCache("second")))

	got, err := store.Load(path)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sampleCache("second"), got)
}

func TestStore_LoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.CacheDBFileName)

	got, err := sqlite.NewStore().Load(path)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoFileExists(t, path, "loading never creates the database")
}

func TestStore_LoadNotADatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.CacheDBFileName)
	require.NoError(t, os.WriteFile(path, []byte("this is not a sqlite database, just some text"), 0o600))

	got, err := sqlite.NewStore().Load(path)
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestStore_LoadChecksumMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.CacheDBFileName)
	store := sqlite.NewStore()
	require.NoError(t, store.Save(path, sampleCache("h")))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`UPDATE family_cache SET families = ? WHERE slot = 1`, []byte(`[]`))
	require.NoError(t, err)
	require.NoError(t, db.Close())

	got, err := store.Load(path)
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestStore_LoadIncompleteEntries(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "entry without id or subject", payload: `[{}]`},
		{name: "entry without subject", payload: `[{"id": "I001"}]`},
		{name: "entry without id", payload: `[{"subject": {"first_name": "John"}}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), domain.CacheDBFileName)
			store := sqlite.NewStore()
			require.NoError(t, store.Save(path, sampleCache("h")))

			payload := []byte(tt.payload)
			db, err := sql.Open("sqlite", path)
			require.NoError(t, err)
			_, err = db.Exec(`UPDATE family_cache SET families = ?, checksum = ? WHERE slot = 1`,
				payload, fmt.Sprintf("%016x", xxhash.Sum64(payload)))
			require.NoError(t, err)
			require.NoError(t, db.Close())

			got, err := store.Load(path)
			assert.Error(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestStore_LoadEmptyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.CacheDBFileName)
	store := sqlite.NewStore()
	require.NoError(t, store.Save(path, sampleCache("h")))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM family_cache`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	got, err := store.Load(path)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Remove(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.CacheDBFileName)
	store := sqlite.NewStore()
	require.NoError(t, store.Save(path, sampleCache("h")))

	require.NoError(t, store.Remove(path))
	assert.NoFileExists(t, path)
	require.NoError(t, store.Remove(path))
}
