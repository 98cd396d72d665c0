// Package selection reads and writes the current display payload.
package selection

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	fsadapter "go.trai.ch/famsnap/internal/adapters/fs"
	"go.trai.ch/famsnap/internal/core/domain"
	"go.trai.ch/famsnap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SelectionStore = (*Store)(nil)

// Store implements ports.SelectionStore using a JSON file.
type Store struct{}

// NewStore creates a new selection store.
func NewStore() *Store {
	return &Store{}
}

// LastSelected returns the last_family_id recorded at path, or "" when the file is missing.
// Only the identifier is decoded so the rest of the payload may change shape between versions.
func (s *Store) LastSelected(path string) (string, error) {
	//nolint:gosec // Path is provided by trusted caller
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", zerr.With(zerr.Wrap(err, "failed to read current selection"), "path", path)
	}

	var marker struct {
		LastFamilyID string `json:"last_family_id"`
	}
	if err := json.Unmarshal(data, &marker); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to unmarshal current selection"), "path", path)
	}

	return marker.LastFamilyID, nil
}

// Write replaces the selection at path atomically.
func (s *Store) Write(path string, selection *domain.Selection) error {
	data, err := json.MarshalIndent(selection, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrSelectionWriteFailed, err.Error())
	}

	if err := fsadapter.WriteFileAtomic(path, append(data, '\n'), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrSelectionWriteFailed, err.Error()), "path", path)
	}
	return nil
}

// Remove deletes the selection at path.
func (s *Store) Remove(path string) error {
	if err := fsadapter.RemoveIfExists(path); err != nil {
		return zerr.Wrap(domain.ErrSelectionWriteFailed, err.Error())
	}
	return nil
}
