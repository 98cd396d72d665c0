package gedcom

import (
	"context"
	"os"

	"go.trai.ch/famsnap/internal/core/domain"
	"go.trai.ch/famsnap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceLoader = (*Loader)(nil)

// Loader opens GEDCOM files as family sources.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the GEDCOM file at path.
func (l *Loader) Load(ctx context.Context, path string) (ports.FamilySource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path) //nolint:gosec // Path is provided by the user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrSourceReadFailed, err.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	g, err := Parse(f)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	return NewSource(g), nil
}
