// Package selector picks the next family to display without immediately repeating the last one.
package selector

import (
	"math/rand/v2"

	"go.trai.ch/famsnap/internal/core/domain"
	"go.trai.ch/zerr"
)

// Selector draws identifiers uniformly from a candidate set. It is not safe for concurrent use.
type Selector struct {
	rng *rand.Rand
}

// New creates a Selector drawing from src. A nil src uses a randomly seeded source.
func New(src rand.Source) *Selector {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Selector{rng: rand.New(src)}
}

// Select returns one of ids, avoiding previous whenever another candidate exists.
// An empty previous means there was no earlier selection.
func (s *Selector) Select(ids []string, previous string) (string, error) {
	switch len(ids) {
	case 0:
		return "", zerr.Wrap(domain.ErrEmptyCandidateSet, "cannot select a family")
	case 1:
		return ids[0], nil
	}

	candidates := make([]string, 0, len(ids))
	for _, id := range ids {
		if previous != "" && id == previous {
			continue
		}
		candidates = append(candidates, id)
	}
	if len(candidates) == 0 {
		candidates = ids
	}

	return candidates[s.rng.IntN(len(candidates))], nil
}
