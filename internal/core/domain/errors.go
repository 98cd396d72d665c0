package domain

import "go.trai.ch/zerr"

var (
	// ErrParse is returned when the genealogy source cannot be interpreted as a GEDCOM record stream.
	ErrParse = zerr.New("failed to parse genealogy source")

	// ErrNoEligibleFamilies is returned when the source parsed but no individual qualifies for display.
	ErrNoEligibleFamilies = zerr.New("no eligible families found")

	// ErrIndividualNotFound is returned when a snapshot is requested for an unknown individual.
	ErrIndividualNotFound = zerr.New("individual not found")

	// ErrEmptyCandidateSet is returned when the rotation selector is given no candidates.
	ErrEmptyCandidateSet = zerr.New("no candidates to select from")

	// ErrSelectionNotFound is returned when the selected id has no matching cached family.
	ErrSelectionNotFound = zerr.New("selected family not found in cache")

	// ErrSourceReadFailed is returned when the genealogy source file cannot be read.
	ErrSourceReadFailed = zerr.New("failed to read genealogy source")

	// ErrSourceNotSpecified is returned when neither the command line nor the config names a source file.
	ErrSourceNotSpecified = zerr.New("no genealogy source file specified")

	// ErrCacheMarshalFailed is returned when the family cache cannot be encoded.
	ErrCacheMarshalFailed = zerr.New("failed to marshal family cache")

	// ErrCacheWriteFailed is returned when the family cache cannot be persisted.
	ErrCacheWriteFailed = zerr.New("failed to write family cache")

	// ErrCacheRemoveFailed is returned when the family cache cannot be removed.
	ErrCacheRemoveFailed = zerr.New("failed to remove family cache")

	// ErrSelectionWriteFailed is returned when the current selection cannot be written.
	ErrSelectionWriteFailed = zerr.New("failed to write current selection")

	// ErrOutputDirCreateFailed is returned when the output directory cannot be created.
	ErrOutputDirCreateFailed = zerr.New("failed to create output directory")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the config file contains invalid values.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrUnknownCacheDriver is returned when no cache store is registered for the configured driver.
	ErrUnknownCacheDriver = zerr.New("unknown cache driver, expected 'json' or 'sqlite'")
)
