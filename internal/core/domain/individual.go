package domain

// Sex is the recorded sex of an individual.
type Sex string

const (
	// SexUnknown means no sex was recorded.
	SexUnknown Sex = ""
	// SexMale is a male individual.
	SexMale Sex = "M"
	// SexFemale is a female individual.
	SexFemale Sex = "F"
	// SexUndetermined is an explicitly undetermined sex.
	SexUndetermined Sex = "U"
	// SexIntersex is an intersex individual.
	SexIntersex Sex = "X"
)

// ParseSex maps a raw SEX value onto a Sex. Unrecognised values are unknown.
func ParseSex(raw string) Sex {
	switch Sex(raw) {
	case SexMale, SexFemale, SexUndetermined, SexIntersex:
		return Sex(raw)
	default:
		return SexUnknown
	}
}

// Individual is one person record of a genealogy source.
type Individual struct {
	ID        string
	FirstName string
	LastName  string
	Sex       Sex
	// Birth and Death hold a four-digit year or are empty when unknown.
	Birth string
	Death string
	// SpouseFamilies lists the families this individual is a spouse in, in source order.
	// The first entry determines the displayed spouse and children.
	SpouseFamilies []string
	// ParentFamily is the family this individual is a child of.
	ParentFamily string
}

// FamilyUnit is one family record linking up to two partners and their children.
type FamilyUnit struct {
	ID       string
	Husband  string
	Wife     string
	Children []string
}
