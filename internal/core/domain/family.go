package domain

// PersonSnapshot is the display projection of an individual.
type PersonSnapshot struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Birth     *string `json:"birth"`
	Death     *string `json:"death"`
	Child     *bool   `json:"child,omitempty"`
}

// NewPersonSnapshot projects ind for display.
func NewPersonSnapshot(ind *Individual) *PersonSnapshot {
	return &PersonSnapshot{
		FirstName: ind.FirstName,
		LastName:  ind.LastName,
		Birth:     optional(ind.Birth),
		Death:     optional(ind.Death),
	}
}

// NewChildSnapshot projects ind for display as a child of the snapshot's couple.
func NewChildSnapshot(ind *Individual) *PersonSnapshot {
	p := NewPersonSnapshot(ind)
	child := true
	p.Child = &child
	return p
}

// FullName returns the first and last name joined by a space.
func (p *PersonSnapshot) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

// Parents holds the father and mother of one side of a couple. Either may be nil.
type Parents struct {
	Father *PersonSnapshot `json:"father"`
	Mother *PersonSnapshot `json:"mother"`
}

// ChildEntry is one child of the snapshot's couple, optionally paired with its own spouse.
type ChildEntry struct {
	First  *PersonSnapshot `json:"first"`
	Second *PersonSnapshot `json:"second"`
}

// Family is the display-ready body shared by cached entries and the current selection.
type Family struct {
	Subject        *PersonSnapshot `json:"subject"`
	Spouse         *PersonSnapshot `json:"spouse"`
	SubjectParents Parents         `json:"subject_parents"`
	SpouseParents  Parents         `json:"spouse_parents"`
	Children       []ChildEntry    `json:"children"`
}

// FamilyEntry is one cached family, keyed by the subject's source identifier.
type FamilyEntry struct {
	ID string `json:"id"`
	Family
}

// Selection is the current display payload. It carries the entry's identifier as LastFamilyID
// so the next run can avoid repeating it.
type Selection struct {
	Family
	LastFamilyID string `json:"last_family_id"`
}

// ToSelection renames the entry's identifier to the last selected identifier.
func (e *FamilyEntry) ToSelection() Selection {
	return Selection{
		Family:       e.Family,
		LastFamilyID: e.ID,
	}
}

// Entry converts the selection back into the cached entry it was made from.
func (s *Selection) Entry() FamilyEntry {
	return FamilyEntry{
		ID:     s.LastFamilyID,
		Family: s.Family,
	}
}

// Complete reports whether the entry carries an identifier and a subject.
func (e *FamilyEntry) Complete() bool {
	return e.ID != "" && e.Subject != nil
}

// IncompleteEntry returns the index of the first entry that is not complete, or -1.
func IncompleteEntry(entries []FamilyEntry) int {
	for i := range entries {
		if !entries[i].Complete() {
			return i
		}
	}
	return -1
}

// EntryIDs returns the identifiers of entries in order.
func EntryIDs(entries []FamilyEntry) []string {
	ids := make([]string, len(entries))
	for i := range entries {
		ids[i] = entries[i].ID
	}
	return ids
}

// FindEntry returns the entry with the given identifier.
func FindEntry(entries []FamilyEntry, id string) (FamilyEntry, bool) {
	for i := range entries {
		if entries[i].ID == id {
			return entries[i], true
		}
	}
	return FamilyEntry{}, false
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
