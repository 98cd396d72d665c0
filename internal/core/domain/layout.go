package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "famsnap.yaml"

	// CacheFileName is the name of the JSON family cache.
	CacheFileName = "families.json"

	// CacheDBFileName is the name of the SQLite family cache.
	CacheDBFileName = "families.db"

	// SelectionFileName is the name of the current selection output.
	SelectionFileName = "current.json"

	// CacheDriverJSON stores the family cache as a single JSON document.
	CacheDriverJSON = "json"

	// CacheDriverSQLite stores the family cache in a SQLite database.
	CacheDriverSQLite = "sqlite"

	// LogFormatPretty is the human-readable log format.
	LogFormatPretty = "pretty"

	// LogFormatJSON is the structured JSON log format.
	LogFormatJSON = "json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCacheFile returns the cache file name used by the given driver.
func DefaultCacheFile(driver string) string {
	if driver == CacheDriverSQLite {
		return CacheDBFileName
	}
	return CacheFileName
}

// DefaultCachePath returns the cache location inside outputDir for the given driver.
func DefaultCachePath(outputDir, driver string) string {
	return filepath.Join(outputDir, DefaultCacheFile(driver))
}

// DefaultSelectionPath returns the current selection location inside outputDir.
func DefaultSelectionPath(outputDir string) string {
	return filepath.Join(outputDir, SelectionFileName)
}
