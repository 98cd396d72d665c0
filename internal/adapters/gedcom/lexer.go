package gedcom

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"

	"go.trai.ch/famsnap/internal/core/domain"
	"go.trai.ch/zerr"
)

const maxLineLength = 1 << 20

// line is one tokenised GEDCOM line: level [@xref@] TAG [value].
type line struct {
	num   int
	level int
	xref  string
	tag   string
	value string
}

// lexer reads GEDCOM lines from a stream, tolerating CR, LF and CRLF terminators,
// a leading byte order mark, indentation and blank lines.
type lexer struct {
	scanner *bufio.Scanner
	num     int
}

func newLexer(r io.Reader) *lexer {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	scanner.Split(splitLines)
	return &lexer{scanner: scanner}
}

// next returns the next non-blank line. It returns io.EOF at the end of the stream.
func (lx *lexer) next() (line, error) {
	for lx.scanner.Scan() {
		lx.num++
		text := lx.scanner.Text()
		if lx.num == 1 {
			text = strings.TrimPrefix(text, "\ufeff")
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		return parseLine(text, lx.num)
	}
	if err := lx.scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return line{}, zerr.With(lineError(lx.num+1, "line exceeds maximum length"), "max_length", maxLineLength)
		}
		return line{}, zerr.With(zerr.Wrap(domain.ErrSourceReadFailed, err.Error()), "line", lx.num+1)
	}
	return line{}, io.EOF
}

func parseLine(text string, num int) (line, error) {
	rest := strings.TrimLeft(text, " \t")

	levelStr, rest, _ := strings.Cut(rest, " ")
	level, err := strconv.Atoi(levelStr)
	if err != nil || level < 0 {
		return line{}, lineError(num, "invalid level number")
	}

	l := line{num: num, level: level}

	rest = strings.TrimLeft(rest, " ")
	if strings.HasPrefix(rest, "@") {
		var xref string
		xref, rest, _ = strings.Cut(rest, " ")
		if !isPointer(xref) {
			return line{}, zerr.With(lineError(num, "invalid cross-reference identifier"), "xref", xref)
		}
		l.xref = xref
		rest = strings.TrimLeft(rest, " ")
	}

	tag, value, _ := strings.Cut(rest, " ")
	if !isTag(tag) {
		return line{}, zerr.With(lineError(num, "invalid tag"), "tag", tag)
	}
	l.tag = strings.ToUpper(tag)
	l.value = strings.TrimRight(value, " \t")

	return l, nil
}

// isPointer reports whether s has the form @ID@.
func isPointer(s string) bool {
	if len(s) < 3 || s[0] != '@' || s[len(s)-1] != '@' {
		return false
	}
	return !strings.ContainsAny(s[1:len(s)-1], "@ \t")
}

func isTag(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return true
}

// splitLines is a bufio.SplitFunc that accepts LF, CRLF and bare CR terminators.
func splitLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// A trailing CR may be the first half of CRLF.
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

func lineError(num int, msg string) error {
	return zerr.With(zerr.Wrap(domain.ErrParse, msg), "line", num)
}
