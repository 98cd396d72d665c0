package family

import (
	"go.trai.ch/famsnap/internal/core/domain"
	"go.trai.ch/zerr"
)

// Assemble builds the display-ready family entry of the individual with the given id.
// It fails only when id does not name a known individual.
func Assemble(g *domain.Graph, id string) (domain.FamilyEntry, error) {
	subject, ok := g.Individual(id)
	if !ok {
		return domain.FamilyEntry{}, zerr.With(zerr.Wrap(domain.ErrIndividualNotFound, "cannot assemble family"), "id", id)
	}

	entry := domain.FamilyEntry{
		ID: subject.ID,
		Family: domain.Family{
			Subject:        domain.NewPersonSnapshot(&subject),
			SubjectParents: parents(g, &subject),
			Children:       []domain.ChildEntry{},
		},
	}

	fam, ok := g.FirstSpouseFamily(&subject)
	if !ok {
		return entry, nil
	}

	if spouse, ok := g.SpouseIn(subject.ID, &fam); ok {
		entry.Spouse = domain.NewPersonSnapshot(&spouse)
		entry.SpouseParents = parents(g, &spouse)
	}

	for _, childID := range fam.Children {
		child, ok := g.Individual(childID)
		if !ok {
			continue
		}
		ce := domain.ChildEntry{First: domain.NewChildSnapshot(&child)}
		if partner, ok := g.SpouseOf(&child); ok {
			ce.Second = domain.NewPersonSnapshot(&partner)
		}
		entry.Children = append(entry.Children, ce)
	}

	return entry, nil
}

func parents(g *domain.Graph, ind *domain.Individual) domain.Parents {
	var p domain.Parents
	father, mother := g.ParentsOf(ind)
	if father != nil {
		p.Father = domain.NewPersonSnapshot(father)
	}
	if mother != nil {
		p.Mother = domain.NewPersonSnapshot(mother)
	}
	return p
}
