package domain

// Cache is the persisted set of family entries computed from one version of a source file.
// It is valid only while Hash equals the live hash of that file.
type Cache struct {
	Hash     string        `json:"gedcom_hash"`
	Families []FamilyEntry `json:"families"`
}
