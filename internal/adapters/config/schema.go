package config

import "github.com/go-playground/validator/v10"

// Famsnapfile represents the structure of the famsnap.yaml configuration file.
type Famsnapfile struct {
	GedcomFile string   `yaml:"gedcom_file"`
	OutputDir  string   `yaml:"output_dir"`
	Cache      CacheDTO `yaml:"cache"`
	OutputFile string   `yaml:"output_file"`
	Log        LogDTO   `yaml:"log"`
}

// CacheDTO represents the cache section of the configuration.
type CacheDTO struct {
	Driver string `yaml:"driver" validate:"omitempty,oneof=json sqlite"`
	Path   string `yaml:"path"`
}

// LogDTO represents the log section of the configuration.
type LogDTO struct {
	Format string `yaml:"format" validate:"omitempty,oneof=pretty json"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the field constraints of the file.
func (f *Famsnapfile) Validate() error {
	return validate.Struct(f)
}
