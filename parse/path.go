package parse

// Package parse turns flat string assignments such as
//
//	level_editor.menu[1].title = "File",
//
// into records of (path, value). Tree assembly and printing live in the
// table subpackage.

import (
	"errors"
	"fmt"
	"strings"
)

// =========================
// Path Definitions
// =========================

// ErrBadPath is returned when a key expression does not follow the
// root(.field|[index])* grammar.
var ErrBadPath = errors.New("invalid string name")

// Path is an ordered, non-empty list of segments. Segment 0 is the root
// identifier, field segments are stored without their dot and index
// segments keep their brackets, e.g. ["a", "b", "[1]", "c"].
type Path []string

// String joins the segments back into a key expression.
func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p {
		if i > 0 && !IsIndex(seg) {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

// IsIndex reports whether seg is a bracketed numeric index segment.
func IsIndex(seg string) bool {
	return strings.HasPrefix(seg, "[")
}

// =========================
// Path Parsing
// =========================

// ParsePath splits a key expression into its segments. Matching is anchored
// at the current scan position; surrounding whitespace must already be
// trimmed by the caller.
func ParsePath(text string) (Path, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: empty", ErrBadPath)
	}

	n := scanIdent(text, 0)
	if n == 0 {
		return nil, fmt.Errorf("%w: %q: no root name", ErrBadPath, text)
	}
	parts := Path{text[:n]}
	i := n

	for i < len(text) {
		switch text[i] {
		case '.':
			n = scanIdent(text, i+1)
			if n == 0 {
				return nil, fmt.Errorf("%w: %q: bad field at offset %d", ErrBadPath, text, i)
			}
			parts = append(parts, text[i+1:i+1+n])
			i += 1 + n
		case '[':
			n = scanIndex(text, i)
			if n == 0 {
				return nil, fmt.Errorf("%w: %q: bad index at offset %d", ErrBadPath, text, i)
			}
			parts = append(parts, text[i:i+n])
			i += n
		default:
			return nil, fmt.Errorf("%w: %q: unexpected %q at offset %d", ErrBadPath, text, text[i], i)
		}
	}
	return parts, nil
}

// scanIdent returns the length of the identifier starting at s[i], or 0.
func scanIdent(s string, i int) int {
	if i >= len(s) || !isIdentStart(s[i]) {
		return 0
	}
	j := i + 1
	for j < len(s) && isIdentChar(s[j]) {
		j++
	}
	return j - i
}

// scanIndex returns the length of the "[digits]" token starting at s[i], or 0.
func scanIndex(s string, i int) int {
	if i >= len(s) || s[i] != '[' {
		return 0
	}
	j := i + 1
	for j < len(s) && isDigit(s[j]) {
		j++
	}
	if j == i+1 || j >= len(s) || s[j] != ']' {
		return 0
	}
	return j + 1 - i
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentChar(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
