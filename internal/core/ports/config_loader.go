package ports

import "go.trai.ch/famsnap/internal/core/domain"

// ConfigLoader defines the interface for loading the run configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the config file at path. If path is empty, the default config file in cwd is
	// used when present; otherwise an empty configuration is returned.
	Load(cwd, path string) (*domain.Config, error)
}
