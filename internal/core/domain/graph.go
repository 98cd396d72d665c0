// Package domain contains the core domain models for genealogical records and family snapshots.
package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// Graph holds the individuals and family units of one parsed genealogy source.
// Records reference each other by identifier only; references are resolved on lookup
// and a reference that does not resolve reads as absent.
type Graph struct {
	individuals map[string]Individual
	families    map[string]FamilyUnit
	order       []string
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		individuals: make(map[string]Individual),
		families:    make(map[string]FamilyUnit),
	}
}

// AddIndividual adds an individual to the graph.
// It returns an error if an individual with the same identifier already exists.
func (g *Graph) AddIndividual(ind *Individual) error {
	if _, exists := g.individuals[ind.ID]; exists {
		return zerr.With(zerr.Wrap(ErrParse, "duplicate individual record"), "id", ind.ID)
	}
	g.individuals[ind.ID] = *ind
	g.order = append(g.order, ind.ID)
	return nil
}

// AddFamily adds a family unit to the graph.
// It returns an error if a family with the same identifier already exists.
func (g *Graph) AddFamily(fam *FamilyUnit) error {
	if _, exists := g.families[fam.ID]; exists {
		return zerr.With(zerr.Wrap(ErrParse, "duplicate family record"), "id", fam.ID)
	}
	g.families[fam.ID] = *fam
	return nil
}

// Individual returns the individual with the given identifier.
func (g *Graph) Individual(id string) (Individual, bool) {
	if id == "" {
		return Individual{}, false
	}
	ind, ok := g.individuals[id]
	return ind, ok
}

// Family returns the family unit with the given identifier.
func (g *Graph) Family(id string) (FamilyUnit, bool) {
	if id == "" {
		return FamilyUnit{}, false
	}
	fam, ok := g.families[id]
	return fam, ok
}

// IndividualCount returns the number of individuals in the graph.
func (g *Graph) IndividualCount() int {
	return len(g.individuals)
}

// FamilyCount returns the number of family units in the graph.
func (g *Graph) FamilyCount() int {
	return len(g.families)
}

// Individuals returns an iterator over all individuals in source order.
func (g *Graph) Individuals() iter.Seq[Individual] {
	return func(yield func(Individual) bool) {
		for _, id := range g.order {
			if !yield(g.individuals[id]) {
				return
			}
		}
	}
}

// FirstSpouseFamily resolves the first spousal family of ind.
func (g *Graph) FirstSpouseFamily(ind *Individual) (FamilyUnit, bool) {
	if len(ind.SpouseFamilies) == 0 {
		return FamilyUnit{}, false
	}
	return g.Family(ind.SpouseFamilies[0])
}

// SpouseIn resolves the other party of fam relative to the individual with the given id.
// It reports false if id is neither husband nor wife of fam, or the partner is unknown.
func (g *Graph) SpouseIn(id string, fam *FamilyUnit) (Individual, bool) {
	switch id {
	case fam.Husband:
		return g.Individual(fam.Wife)
	case fam.Wife:
		return g.Individual(fam.Husband)
	default:
		return Individual{}, false
	}
}

// SpouseOf resolves the spouse of ind through its first spousal family.
func (g *Graph) SpouseOf(ind *Individual) (Individual, bool) {
	fam, ok := g.FirstSpouseFamily(ind)
	if !ok {
		return Individual{}, false
	}
	return g.SpouseIn(ind.ID, &fam)
}

// ParentsOf resolves the father and mother of ind through its parental family.
// Either or both may be nil.
func (g *Graph) ParentsOf(ind *Individual) (father, mother *Individual) {
	fam, ok := g.Family(ind.ParentFamily)
	if !ok {
		return nil, nil
	}
	if f, ok := g.Individual(fam.Husband); ok {
		father = &f
	}
	if m, ok := g.Individual(fam.Wife); ok {
		mother = &m
	}
	return father, mother
}
