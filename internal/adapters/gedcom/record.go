package gedcom

import (
	"errors"
	"io"
	"strings"

	"go.trai.ch/zerr"
)

// topLevelTags lists the record types accepted at level 0.
// User-defined records (tags starting with an underscore) are accepted as well.
var topLevelTags = map[string]bool{
	"HEAD":  true,
	"TRLR":  true,
	"INDI":  true,
	"FAM":   true,
	"SOUR":  true,
	"REPO":  true,
	"NOTE":  true,
	"OBJE":  true,
	"SUBM":  true,
	"SUBN":  true,
	"SNOTE": true,
}

// record is a line together with its nested sub-records.
type record struct {
	line
	children []*record
}

// sub returns the first direct sub-record with the given tag, or nil.
func (r *record) sub(tag string) *record {
	for _, c := range r.children {
		if c.tag == tag {
			return c
		}
	}
	return nil
}

// readRecords reads the whole stream and returns the level-0 records up to, but excluding, TRLR.
// Any structural problem aborts the read; a partial record list is never returned.
func readRecords(r io.Reader) ([]*record, error) {
	lx := newLexer(r)

	var (
		records []*record
		stack   []*record
		trailer *line
	)

	for {
		l, err := lx.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		if trailer != nil {
			return nil, zerr.With(lineError(l.num, "content after trailer record"), "trailer_line", trailer.num)
		}

		if l.level > len(stack) {
			if len(stack) == 0 {
				return nil, zerr.With(lineError(l.num, "first record must start at level 0"), "level", l.level)
			}
			return nil, zerr.With(
				zerr.With(lineError(l.num, "level jumps by more than one"), "level", l.level),
				"parent_level", len(stack)-1,
			)
		}

		rec := &record{line: l}
		stack = stack[:l.level]

		if l.level == 0 {
			if !topLevelTags[l.tag] && !strings.HasPrefix(l.tag, "_") {
				return nil, zerr.With(lineError(l.num, "unexpected record type"), "tag", l.tag)
			}
			if l.tag == "TRLR" {
				trailer = &rec.line
				continue
			}
			records = append(records, rec)
		} else {
			parent := stack[l.level-1]
			parent.children = append(parent.children, rec)
		}

		stack = append(stack, rec)
	}

	if trailer == nil {
		return nil, zerr.With(lineError(lx.num, "unterminated source, missing TRLR record"), "records", len(records))
	}

	return records, nil
}
