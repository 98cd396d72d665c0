// Package family decides which individuals of a genealogy graph can be displayed and
// assembles their display-ready family entries.
package family

import "go.trai.ch/famsnap/internal/core/domain"

// Eligible returns the identifiers of all individuals that can be displayed, in source order.
//
// An individual qualifies when its first spousal family has at least one child, names a known
// partner, and at least one parent is known on either side of the couple.
func Eligible(g *domain.Graph) []string {
	var ids []string
	for ind := range g.Individuals() {
		if IsEligible(g, &ind) {
			ids = append(ids, ind.ID)
		}
	}
	return ids
}

// IsEligible reports whether ind qualifies for display.
func IsEligible(g *domain.Graph, ind *domain.Individual) bool {
	fam, ok := g.FirstSpouseFamily(ind)
	if !ok {
		return false
	}
	if len(fam.Children) == 0 {
		return false
	}

	spouse, ok := g.SpouseIn(ind.ID, &fam)
	if !ok {
		return false
	}

	return hasKnownParent(g, ind) || hasKnownParent(g, &spouse)
}

func hasKnownParent(g *domain.Graph, ind *domain.Individual) bool {
	father, mother := g.ParentsOf(ind)
	return father != nil || mother != nil
}
