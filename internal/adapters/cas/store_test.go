package cas_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/famsnap/internal/adapters/cas"
	"go.trai.ch/famsnap/internal/core/domain"
)

func sampleCache() *domain.Cache {
	birth := "1850"
	return &domain.Cache{
		Hash: "abc123",
		Families: []domain.FamilyEntry{
			{
				ID: "I001",
				Family: domain.Family{
					Subject:  &domain.PersonSnapshot{FirstName: "John", LastName: "Doe", Birth: &birth},
					Children: []domain.ChildEntry{},
				},
			},
		},
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", domain.CacheFileName)
	store := cas.NewStore()

	require.NoError(t, store.Save(path, sampleCache()))

	got, err := store.Load(path)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sampleCache(), got)
}

func TestStore_LoadMissing(t *testing.T) {
	got, err := cas.NewStore().Load(filepath.Join(t.TempDir(), domain.CacheFileName))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_LoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "truncated json", content: `{"gedcom_hash": "abc", "families": [`},
		{name: "missing hash", content: `{"families": []}`},
		{name: "missing families", content: `{"gedcom_hash": "abc"}`},
		{name: "null families", content: `{"gedcom_hash": "abc", "families": null}`},
		{name: "wrong types", content: `{"gedcom_hash": 1, "families": {}}`},
		{name: "trailing document", content: `{"gedcom_hash": "h", "families": []}{"gedcom_hash": "x"`},
		{name: "trailing bracket", content: `{"gedcom_hash": "h", "families": []}]`},
		{name: "entry without id or subject", content: `{"gedcom_hash": "h", "families": [{}]}`},
		{name: "entry without subject", content: `{"gedcom_hash": "h", "families": [{"id": "I001", "subject": null}]}`},
		{name: "entry without id", content: `{"gedcom_hash": "h", "families": [{"subject": {"first_name": "John"}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), domain.CacheFileName)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			got, err := cas.NewStore().Load(path)
			assert.Error(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestStore_SaveEmptyFamilies(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.CacheFileName)
	store := cas.NewStore()

	require.NoError(t, store.Save(path, &domain.Cache{Hash: "h"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"gedcom_hash": "h", "families": []}`, string(data))

	got, err := store.Load(path)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.Families)
}

func TestStore_Remove(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.CacheFileName)
	store := cas.NewStore()

	require.NoError(t, store.Save(path, sampleCache()))
	require.NoError(t, store.Remove(path))
	assert.NoFileExists(t, path)
	require.NoError(t, store.Remove(path))
}

func TestStore_SaveFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	err := cas.NewStore().Save(filepath.Join(blocker, domain.CacheFileName), sampleCache())
	assert.ErrorIs(t, err, domain.ErrCacheWriteFailed)
}
