package ports

import (
	"context"

	"go.trai.ch/famsnap/internal/core/domain"
)

// FamilySource provides display-ready families from a genealogy backend.
type FamilySource interface {
	// EligibleIDs returns the identifiers of all individuals eligible for display, in a stable order.
	EligibleIDs() []string

	// BuildEntry assembles the family snapshot of the individual with the given identifier.
	// It returns domain.ErrIndividualNotFound if the identifier is unknown.
	BuildEntry(id string) (domain.FamilyEntry, error)
}

// SourceLoader opens a FamilySource from a source file.
//
//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type SourceLoader interface {
	// Load reads and parses the file at path.
	Load(ctx context.Context, path string) (FamilySource, error)
}
