package app

import (
	"os"
	"path/filepath"

	"go.trai.ch/famsnap/internal/core/domain"
	"go.trai.ch/zerr"
)

// settings are the fully resolved paths and choices of one run.
type settings struct {
	sourcePath    string
	outputDir     string
	driver        string
	cachePath     string
	selectionPath string
}

// jsonLogger is implemented by loggers that can switch to structured output.
type jsonLogger interface {
	SetJSON(enable bool)
}

// resolveSettings merges command line options over the config file. Command line paths are
// relative to the working directory. The output directory defaults to the source's directory.
func (a *App) resolveSettings(opts Options, requireSource bool) (*settings, error) {
	cwd := a.workDir
	if cwd == "" {
		var err error
		if cwd, err = os.Getwd(); err != nil {
			return nil, zerr.Wrap(err, "failed to determine working directory")
		}
	}

	cfg, err := a.configLoader.Load(cwd, opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if opts.JSONLogs || cfg.LogFormat == domain.LogFormatJSON {
		if jl, ok := a.logger.(jsonLogger); ok {
			jl.SetJSON(true)
		}
	}

	s := &settings{
		sourcePath: firstNonEmpty(absolute(cwd, opts.SourcePath), cfg.SourcePath),
		outputDir:  firstNonEmpty(absolute(cwd, opts.OutputDir), cfg.OutputDir),
		driver:     firstNonEmpty(opts.CacheDriver, cfg.CacheDriver, domain.CacheDriverJSON),
	}

	if s.sourcePath == "" && requireSource {
		return nil, zerr.Wrap(domain.ErrSourceNotSpecified, "pass a GEDCOM file or set gedcom_file in "+domain.ConfigFileName)
	}

	if s.outputDir == "" {
		if s.sourcePath != "" {
			s.outputDir = filepath.Dir(s.sourcePath)
		} else {
			s.outputDir = cwd
		}
	}

	if _, ok := a.cacheStores[s.driver]; !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownCacheDriver, "cannot open family cache"), "driver", s.driver)
	}

	s.cachePath = domain.DefaultCachePath(s.outputDir, s.driver)
	if cfg.CachePath != "" {
		s.cachePath = absolute(s.outputDir, cfg.CachePath)
	}

	s.selectionPath = domain.DefaultSelectionPath(s.outputDir)
	if cfg.SelectionPath != "" {
		s.selectionPath = absolute(s.outputDir, cfg.SelectionPath)
	}

	return s, nil
}

func absolute(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
