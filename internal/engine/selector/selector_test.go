package selector_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/famsnap/internal/core/domain"
	"go.trai.ch/famsnap/internal/engine/selector"
)

func newSelector() *selector.Selector {
	return selector.New(rand.NewPCG(1, 2))
}

func TestSelect_Empty(t *testing.T) {
	_, err := newSelector().Select(nil, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptyCandidateSet)
}

func TestSelect_SingleCandidate(t *testing.T) {
	s := newSelector()

	for _, previous := range []string{"", "A", "B"} {
		got, err := s.Select([]string{"A"}, previous)
		require.NoError(t, err)
		assert.Equal(t, "A", got, "previous=%q", previous)
	}
}

func TestSelect_NeverRepeatsPrevious(t *testing.T) {
	s := newSelector()

	for range 50 {
		got, err := s.Select([]string{"A", "B"}, "A")
		require.NoError(t, err)
		assert.Equal(t, "B", got)
	}
}

func TestSelect_StalePreviousIsIgnored(t *testing.T) {
	s := newSelector()
	ids := []string{"A", "B", "C"}

	for range 20 {
		got, err := s.Select(ids, "Z")
		require.NoError(t, err)
		assert.Contains(t, ids, got)
	}
}

func TestSelect_FallsBackWhenAllCandidatesEqualPrevious(t *testing.T) {
	got, err := newSelector().Select([]string{"A", "A"}, "A")
	require.NoError(t, err)
	assert.Equal(t, "A", got)
}

func TestSelect_ProducesDistinctResults(t *testing.T) {
	s := newSelector()
	ids := []string{"A", "B", "C", "D"}

	seen := make(map[string]int)
	for range 100 {
		got, err := s.Select(ids, "")
		require.NoError(t, err)
		seen[got]++
	}

	assert.Greater(t, len(seen), 1)
	for id := range seen {
		assert.Contains(t, ids, id)
	}
}

func TestSelect_DeterministicForSeed(t *testing.T) {
	ids := []string{"A", "B", "C", "D", "E"}

	a := selector.New(rand.NewPCG(42, 7))
	b := selector.New(rand.NewPCG(42, 7))

	for range 10 {
		x, err := a.Select(ids, "C")
		require.NoError(t, err)
		y, err := b.Select(ids, "C")
		require.NoError(t, err)
		assert.Equal(t, x, y)
		assert.NotEqual(t, "C", x)
	}
}

func TestNew_NilSource(t *testing.T) {
	got, err := selector.New(nil).Select([]string{"A", "B"}, "B")
	require.NoError(t, err)
	assert.Equal(t, "A", got)
}
