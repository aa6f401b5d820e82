package parse

import (
	"fmt"
	"regexp"
	"strings"
)

// EmptyValue is the value given to a bare string name without "= ...".
const EmptyValue = `""`

// assignPat matches a whole assignment line: key = "value" with an optional
// trailing comma. The value runs from the first quote to the last quote that
// is followed only by the comma and whitespace; escapes are not interpreted.
var assignPat = regexp.MustCompile(`^\s*([^\s=]+)\s*=\s*(".*")\s*,?\s*$`)

// Record is one parsed (path, value) unit together with where it came from.
type Record struct {
	Path   Path
	Value  string
	Source string
	Line   int
}

// DiagReason classifies why a line was skipped.
type DiagReason uint8

const (
	// BadLine is an assignment line that does not have the key = "value" shape.
	BadLine DiagReason = iota
	// BadName is a line whose key expression is not a valid string name.
	BadName
)

// Diagnostic describes a skipped input line. It is reported, never fatal.
type Diagnostic struct {
	Reason DiagReason
	Source string
	Line   int
	Text   string
	Err    error
}

func (d *Diagnostic) Error() string {
	switch d.Reason {
	case BadLine:
		return fmt.Sprintf(`Line %d of file "%s" is not correct, skipping it.`, d.Line, d.Source)
	default:
		return fmt.Sprintf(`String name of line %d of file "%s" is not correct, skipping it.`, d.Line, d.Source)
	}
}

func (d *Diagnostic) Unwrap() error { return d.Err }

// InterpretLine classifies one raw input line. It returns a record for an
// assignment or bare name, (nil, nil) for blank and comment lines, and
// (nil, *Diagnostic) for malformed lines.
func InterpretLine(source string, lineNo int, raw string) (*Record, error) {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "--") {
		return nil, nil
	}

	key, value := line, EmptyValue
	if strings.Contains(line, "=") {
		m := assignPat.FindStringSubmatch(line)
		if m == nil {
			return nil, &Diagnostic{Reason: BadLine, Source: source, Line: lineNo, Text: raw}
		}
		key, value = m[1], m[2]
	}

	path, err := ParsePath(key)
	if err != nil {
		return nil, &Diagnostic{Reason: BadName, Source: source, Line: lineNo, Text: raw, Err: err}
	}
	return &Record{Path: path, Value: value, Source: source, Line: lineNo}, nil
}
