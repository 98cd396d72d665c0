// Package app implements the application layer for famsnap.
package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"go.trai.ch/famsnap/internal/core/domain"
	"go.trai.ch/famsnap/internal/core/ports"
	"go.trai.ch/famsnap/internal/engine/cache"
	"go.trai.ch/famsnap/internal/engine/selector"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	hasher       ports.Hasher
	sourceLoader ports.SourceLoader
	cacheStores  map[string]ports.CacheStore
	selections   ports.SelectionStore
	logger       ports.Logger
	randSource   rand.Source
	workDir      string
}

// New creates a new App instance. cacheStores maps each cache driver name to its store.
func New(
	loader ports.ConfigLoader,
	hasher ports.Hasher,
	sourceLoader ports.SourceLoader,
	cacheStores map[string]ports.CacheStore,
	selections ports.SelectionStore,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		hasher:       hasher,
		sourceLoader: sourceLoader,
		cacheStores:  cacheStores,
		selections:   selections,
		logger:       log,
	}
}

// WithRandSource makes the family selection draw from src.
// This is primarily used for testing to get reproducible selections.
func (a *App) WithRandSource(src rand.Source) *App {
	a.randSource = src
	return a
}

// WithWorkDir resolves relative paths and the default config file against dir instead of
// the process working directory.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// Options are the settings shared by all commands. Empty fields fall back to the config file.
type Options struct {
	ConfigPath  string
	SourcePath  string
	OutputDir   string
	CacheDriver string
	JSONLogs    bool
}

// GenerateOptions configuration for the Generate method.
type GenerateOptions struct {
	Options
	// Rebuild ignores a valid cache and parses the source again.
	Rebuild bool
}

// GenerateResult describes the selection written by Generate.
type GenerateResult struct {
	SelectionPath string
	CachePath     string
	Selection     domain.Selection
	Total         int
	Rebuilt       bool
}

// Generate resolves the family cache for the source, picks the next family and writes it
// as the current selection.
func (a *App) Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	s, err := a.resolveSettings(opts.Options, true)
	if err != nil {
		return nil, err
	}

	res, err := a.resolveCache(ctx, s, opts.Rebuild)
	if err != nil {
		return nil, err
	}

	previous, err := a.selections.LastSelected(s.selectionPath)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("ignoring unreadable previous selection %s: %v", s.selectionPath, err))
		previous = ""
	}

	id, err := selector.New(a.randSource).Select(domain.EntryIDs(res.Entries), previous)
	if err != nil {
		return nil, err
	}

	entry, ok := domain.FindEntry(res.Entries, id)
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrSelectionNotFound, "cannot write selection"), "id", id)
	}

	selection := entry.ToSelection()
	if err := a.selections.Write(s.selectionPath, &selection); err != nil {
		return nil, err
	}

	return &GenerateResult{
		SelectionPath: s.selectionPath,
		CachePath:     s.cachePath,
		Selection:     selection,
		Total:         len(res.Entries),
		Rebuilt:       res.Rebuilt,
	}, nil
}

// ListOptions configuration for the List method.
type ListOptions struct {
	Options
	Rebuild bool
}

// ListResult holds every cached family of the source.
type ListResult struct {
	CachePath string
	Entries   []domain.FamilyEntry
	Rebuilt   bool
}

// List resolves the family cache for the source and returns all entries.
func (a *App) List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	s, err := a.resolveSettings(opts.Options, true)
	if err != nil {
		return nil, err
	}

	res, err := a.resolveCache(ctx, s, opts.Rebuild)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		CachePath: s.cachePath,
		Entries:   res.Entries,
		Rebuilt:   res.Rebuilt,
	}, nil
}

// Clean removes the caches of every driver and the current selection from the output
// directory.
func (a *App) Clean(_ context.Context, opts Options) error {
	s, err := a.resolveSettings(opts, false)
	if err != nil {
		return err
	}

	var errs error

	remove := func(path, name string, rm func(string) error) {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return
		}
		a.logger.Info(fmt.Sprintf("removing %s %s", name, path))
		if err := rm(path); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	seen := make(map[string]bool)
	for _, driver := range []string{domain.CacheDriverJSON, domain.CacheDriverSQLite} {
		store := a.cacheStores[driver]
		if store == nil {
			continue
		}
		path := domain.DefaultCachePath(s.outputDir, driver)
		if driver == s.driver {
			path = s.cachePath
		}
		if seen[path] {
			continue
		}
		seen[path] = true
		remove(path, driver+" cache", store.Remove)
	}

	remove(s.selectionPath, "current selection", a.selections.Remove)

	return errs
}

func (a *App) resolveCache(ctx context.Context, s *settings, rebuild bool) (*cache.Result, error) {
	if err := os.MkdirAll(s.outputDir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrOutputDirCreateFailed, err.Error()), "path", s.outputDir)
	}

	mgr := cache.NewManager(a.hasher, a.sourceLoader, a.cacheStores[s.driver], a.logger)

	res, err := mgr.Resolve(ctx, s.sourcePath, s.cachePath, rebuild)
	if err != nil {
		return nil, err
	}

	if res.Rebuilt {
		a.logger.Info(fmt.Sprintf("cached %d families from %s", len(res.Entries), filepath.Base(s.sourcePath)))
	}

	return res, nil
}
