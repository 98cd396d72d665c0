// Package config loads the optional famsnap.yaml configuration file.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/famsnap/internal/core/domain"
	"go.trai.ch/famsnap/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Filename string
}

// NewLoader creates a Loader looking for the default config file name.
func NewLoader() *Loader {
	return &Loader{Filename: domain.ConfigFileName}
}

// Load reads the configuration. An explicit path must exist; without one the default file
// in cwd is used when present, and an empty configuration is returned otherwise.
func (l *Loader) Load(cwd, path string) (*domain.Config, error) {
	explicit := path != ""
	if !explicit {
		path = l.Filename
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &domain.Config{}, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	file, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	return resolve(file, filepath.Dir(path)), nil
}

// Parse decodes and validates a configuration document.
func Parse(data []byte) (*Famsnapfile, error) {
	var file Famsnapfile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.Wrap(domain.ErrConfigParseFailed, err.Error())
	}

	if err := file.Validate(); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, zerr.With(
				zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "unsupported value"), "field", verrs[0].Namespace()),
				"value", verrs[0].Value(),
			)
		}
		return nil, zerr.Wrap(domain.ErrConfigInvalid, err.Error())
	}

	return &file, nil
}

// resolve maps the file onto a domain.Config. The source and output directory are resolved
// against base; cache and output file paths stay relative to the output directory.
func resolve(file *Famsnapfile, base string) *domain.Config {
	return &domain.Config{
		SourcePath:    resolvePath(base, file.GedcomFile),
		OutputDir:     resolvePath(base, file.OutputDir),
		CacheDriver:   file.Cache.Driver,
		CachePath:     file.Cache.Path,
		SelectionPath: file.OutputFile,
		LogFormat:     file.Log.Format,
	}
}

func resolvePath(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
