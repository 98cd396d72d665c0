package domain

// Config is the configuration of a run as read from the config file. Empty fields mean
// "not configured".
type Config struct {
	// SourcePath is the GEDCOM file to read, resolved against the config file's directory.
	SourcePath string
	// OutputDir receives the cache and the current selection, resolved against the config
	// file's directory.
	OutputDir string
	// CacheDriver selects the cache store, CacheDriverJSON or CacheDriverSQLite.
	CacheDriver string
	// CachePath overrides the cache location. A relative path is taken from OutputDir.
	CachePath string
	// SelectionPath overrides the current selection location. A relative path is taken
	// from OutputDir.
	SelectionPath string
	// LogFormat is LogFormatPretty or LogFormatJSON.
	LogFormat string
}
