package gedcom_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/famsnap/internal/adapters/gedcom"
	"go.trai.ch/famsnap/internal/core/domain"
)

func TestLoader_GetFamily(t *testing.T) {
	src, err := gedcom.NewLoader().Load(t.Context(), "testdata/doe.ged")
	require.NoError(t, err)

	assert.Equal(t, []string{"I001", "I002"}, src.EligibleIDs())

	entry, err := src.BuildEntry("I001")
	require.NoError(t, err)

	assert.Equal(t, "I001", entry.ID)
	require.NotNil(t, entry.Subject)
	assert.Equal(t, "John", entry.Subject.FirstName)
	assert.Equal(t, "Doe", entry.Subject.LastName)
	require.NotNil(t, entry.Subject.Birth)
	assert.Equal(t, "1850", *entry.Subject.Birth)
	require.NotNil(t, entry.Subject.Death)
	assert.Equal(t, "1920", *entry.Subject.Death)

	require.NotNil(t, entry.Spouse)
	assert.Equal(t, "Jane Smith", entry.Spouse.FullName())

	require.Len(t, entry.Children, 2)
	james := entry.Children[0]
	assert.Equal(t, "James", james.First.FirstName)
	require.NotNil(t, james.Second)
	assert.Equal(t, "Alice", james.Second.FirstName)
	assert.Nil(t, entry.Children[1].Second)
}

func TestLoader_BuildEntryUnknown(t *testing.T) {
	src, err := gedcom.NewLoader().Load(t.Context(), "testdata/doe.ged")
	require.NoError(t, err)

	_, err = src.BuildEntry("I999")
	assert.ErrorIs(t, err, domain.ErrIndividualNotFound)
}

func TestLoader_EligibleIDsReturnsCopy(t *testing.T) {
	src, err := gedcom.NewLoader().Load(t.Context(), "testdata/doe.ged")
	require.NoError(t, err)

	ids := src.EligibleIDs()
	ids[0] = "mutated"

	assert.Equal(t, "I001", src.EligibleIDs()[0])
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := gedcom.NewLoader().Load(t.Context(), filepath.Join(t.TempDir(), "missing.ged"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSourceReadFailed)
}

func TestLoader_ParseErrorCarriesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.ged")
	require.NoError(t, os.WriteFile(path, []byte("0 HEAD\n"), 0o600))

	_, err := gedcom.NewLoader().Load(t.Context(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestLoader_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := gedcom.NewLoader().Load(ctx, "testdata/doe.ged")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSource_Graph(t *testing.T) {
	g := domain.NewGraph()
	src := gedcom.NewSource(g)

	assert.Same(t, g, src.Graph())
	assert.Empty(t, src.EligibleIDs())
}
