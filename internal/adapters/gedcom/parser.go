// Package gedcom reads GEDCOM genealogy files into a domain.Graph and exposes them as a
// family source.
package gedcom

import (
	"io"
	"strings"

	"go.trai.ch/famsnap/internal/core/domain"
	"go.trai.ch/zerr"
)

// Parse reads a GEDCOM stream and builds the relationship graph.
// It fails with an error matching domain.ErrParse if the stream is structurally invalid.
func Parse(r io.Reader) (*domain.Graph, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, err
	}

	b := &builder{
		graph: domain.NewGraph(),
		kinds: make(map[string]string),
	}
	if err := b.index(records); err != nil {
		return nil, err
	}
	for _, rec := range records {
		if err := b.add(rec); err != nil {
			return nil, err
		}
	}
	return b.graph, nil
}

type builder struct {
	graph *domain.Graph
	// kinds maps every top-level xref to its record tag.
	kinds map[string]string
}

func (b *builder) index(records []*record) error {
	for _, rec := range records {
		if rec.xref == "" {
			if rec.tag == "INDI" || rec.tag == "FAM" {
				return zerr.With(lineError(rec.num, "record without identifier"), "tag", rec.tag)
			}
			continue
		}
		if tag, exists := b.kinds[rec.xref]; exists {
			return zerr.With(
				zerr.With(lineError(rec.num, "duplicate record identifier"), "xref", rec.xref),
				"first_tag", tag,
			)
		}
		b.kinds[rec.xref] = rec.tag
	}
	return nil
}

func (b *builder) add(rec *record) error {
	switch rec.tag {
	case "INDI":
		ind, err := b.individual(rec)
		if err != nil {
			return err
		}
		return b.graph.AddIndividual(ind)
	case "FAM":
		fam, err := b.family(rec)
		if err != nil {
			return err
		}
		return b.graph.AddFamily(fam)
	default:
		return nil
	}
}

func (b *builder) individual(rec *record) (*domain.Individual, error) {
	ind := &domain.Individual{ID: xrefID(rec.xref)}

	var named, sexed bool
	for _, c := range rec.children {
		switch c.tag {
		case "NAME":
			if !named {
				ind.FirstName, ind.LastName = personalName(c)
				named = true
			}
		case "SEX":
			if !sexed {
				ind.Sex = domain.ParseSex(strings.ToUpper(strings.TrimSpace(c.value)))
				sexed = true
			}
		case "BIRT":
			if ind.Birth == "" {
				ind.Birth = eventYear(c)
			}
		case "DEAT":
			if ind.Death == "" {
				ind.Death = eventYear(c)
			}
		case "FAMS":
			id, ok, err := b.reference(c, "FAM")
			if err != nil {
				return nil, err
			}
			if ok {
				ind.SpouseFamilies = append(ind.SpouseFamilies, id)
			}
		case "FAMC":
			id, ok, err := b.reference(c, "FAM")
			if err != nil {
				return nil, err
			}
			if ok && ind.ParentFamily == "" {
				ind.ParentFamily = id
			}
		}
	}

	return ind, nil
}

func (b *builder) family(rec *record) (*domain.FamilyUnit, error) {
	fam := &domain.FamilyUnit{ID: xrefID(rec.xref)}

	for _, c := range rec.children {
		switch c.tag {
		case "HUSB", "WIFE", "CHIL":
		default:
			continue
		}

		id, ok, err := b.reference(c, "INDI")
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		switch c.tag {
		case "HUSB":
			if fam.Husband == "" {
				fam.Husband = id
			}
		case "WIFE":
			if fam.Wife == "" {
				fam.Wife = id
			}
		case "CHIL":
			fam.Children = append(fam.Children, id)
		}
	}

	return fam, nil
}

// reference extracts the pointer held by rec. A value that is not a pointer is ignored.
// A pointer to a known record of another type than want is a structural error; a pointer
// to an unknown record is kept and later resolves as absent.
func (b *builder) reference(rec *record, want string) (string, bool, error) {
	ptr := strings.TrimSpace(rec.value)
	if !isPointer(ptr) {
		return "", false, nil
	}
	if kind, exists := b.kinds[ptr]; exists && kind != want {
		return "", false, zerr.With(
			zerr.With(
				zerr.With(lineError(rec.num, "reference to unexpected record type"), "xref", ptr),
				"expected", want,
			),
			"actual", kind,
		)
	}
	return xrefID(ptr), true, nil
}

// xrefID strips the surrounding @ signs of a pointer.
func xrefID(ptr string) string {
	return strings.Trim(ptr, "@")
}

// personalName extracts given name and surname from a NAME record, falling back to its
// GIVN and SURN sub-records when the value is empty.
func personalName(rec *record) (given, surname string) {
	if strings.TrimSpace(rec.value) != "" {
		return splitName(rec.value)
	}
	if givn := rec.sub("GIVN"); givn != nil {
		given = strings.TrimSpace(givn.value)
	}
	if surn := rec.sub("SURN"); surn != nil {
		surname = strings.TrimSpace(surn.value)
	}
	return given, surname
}

// splitName splits "Given /Surname/ Suffix". Without a slash the whole value is the given name.
func splitName(value string) (given, surname string) {
	before, after, found := strings.Cut(value, "/")
	if !found {
		return strings.TrimSpace(value), ""
	}
	surname, _, _ = strings.Cut(after, "/")
	return strings.TrimSpace(before), strings.TrimSpace(surname)
}

// eventYear returns the year of an event record's DATE, or "".
func eventYear(rec *record) string {
	date := rec.sub("DATE")
	if date == nil {
		return ""
	}
	return extractYear(date.value)
}

// extractYear returns the first run of exactly four consecutive digits in s, or "".
func extractYear(s string) string {
	for i := 0; i < len(s); {
		if !isDigit(s[i]) {
			i++
			continue
		}
		j := i
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j-i == 4 {
			return s[i:j]
		}
		i = j
	}
	return ""
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
