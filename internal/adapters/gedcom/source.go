package gedcom

import (
	"slices"

	"go.trai.ch/famsnap/internal/core/domain"
	"go.trai.ch/famsnap/internal/core/ports"
	"go.trai.ch/famsnap/internal/engine/family"
)

var _ ports.FamilySource = (*Source)(nil)

// Source serves family entries from a parsed GEDCOM graph.
type Source struct {
	graph    *domain.Graph
	eligible []string
}

// NewSource classifies the individuals of g once and returns a Source over it.
func NewSource(g *domain.Graph) *Source {
	return &Source{
		graph:    g,
		eligible: family.Eligible(g),
	}
}

// Graph returns the underlying relationship graph.
func (s *Source) Graph() *domain.Graph {
	return s.graph
}

// EligibleIDs returns the identifiers of all displayable individuals in source order.
func (s *Source) EligibleIDs() []string {
	return slices.Clone(s.eligible)
}

// BuildEntry assembles the family entry of the individual with the given id.
func (s *Source) BuildEntry(id string) (domain.FamilyEntry, error) {
	return family.Assemble(s.graph, id)
}
