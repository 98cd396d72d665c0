package ports

import "go.trai.ch/famsnap/internal/core/domain"

// SelectionStore defines the interface for the current selection output.
//
//go:generate mockgen -source=selection_store.go -destination=mocks/mock_selection_store.go -package=mocks
type SelectionStore interface {
	// LastSelected returns the last selected family identifier recorded at path.
	// Returns "" when there is no previous selection.
	LastSelected(path string) (string, error)

	// Write replaces the selection at path.
	Write(path string, selection *domain.Selection) error

	// Remove deletes the selection at path. A missing file is not an error.
	Remove(path string) error
}
