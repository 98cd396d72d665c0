package family_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/famsnap/internal/core/domain"
)

// fixture describes a small graph by value so tests can tweak single references
// before building it.
type fixture struct {
	individuals []domain.Individual
	families    []domain.FamilyUnit
}

// coupleFixture returns a subject I1 married to I2 in F1 with one child I3.
// I1 is a child of F0, whose only known parent is I4.
func coupleFixture() fixture {
	return fixture{
		individuals: []domain.Individual{
			{ID: "I1", FirstName: "John", LastName: "Doe", Birth: "1850", Death: "1920", SpouseFamilies: []string{"F1"}, ParentFamily: "F0"},
			{ID: "I2", FirstName: "Jane", LastName: "Smith", SpouseFamilies: []string{"F1"}},
			{ID: "I3", FirstName: "James", LastName: "Doe", ParentFamily: "F1"},
			{ID: "I4", FirstName: "Robert", LastName: "Doe", SpouseFamilies: []string{"F0"}},
		},
		families: []domain.FamilyUnit{
			{ID: "F0", Husband: "I4", Children: []string{"I1"}},
			{ID: "F1", Husband: "I1", Wife: "I2", Children: []string{"I3"}},
		},
	}
}

func (f fixture) individual(id string) *domain.Individual {
	for i := range f.individuals {
		if f.individuals[i].ID == id {
			return &f.individuals[i]
		}
	}
	return nil
}

func (f fixture) family(id string) *domain.FamilyUnit {
	for i := range f.families {
		if f.families[i].ID == id {
			return &f.families[i]
		}
	}
	return nil
}

func (f fixture) build(t *testing.T) *domain.Graph {
	t.Helper()

	g := domain.NewGraph()
	for i := range f.individuals {
		require.NoError(t, g.AddIndividual(&f.individuals[i]))
	}
	for i := range f.families {
		require.NoError(t, g.AddFamily(&f.families[i]))
	}
	return g
}
