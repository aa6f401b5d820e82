package parse

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// NameIndex is the set of string names found in a known-names file, used to
// pick out newly observed names from a stream of lines.
type NameIndex struct {
	names map[string]int // name -> line position
	lines int
}

// LoadNames reads a known-names file. Blank and comment lines count as lines
// but register no name; for assignments the name is the text before "=".
func LoadNames(r io.Reader) (*NameIndex, error) {
	idx := &NameIndex{names: make(map[string]int)}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") && !strings.HasPrefix(line, "--") {
			name := line
			if i := strings.IndexByte(line, '='); i >= 0 {
				name = strings.TrimSpace(line[:i])
			}
			idx.names[name] = idx.lines
		}
		idx.lines++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read names: %w", err)
	}
	return idx, nil
}

// Len returns the number of distinct names.
func (x *NameIndex) Len() int { return len(x.names) }

// Lines returns the number of lines seen so far, including merged ones.
func (x *NameIndex) Lines() int { return x.lines }

// Has reports whether name is known.
func (x *NameIndex) Has(name string) bool {
	_, ok := x.names[name]
	return ok
}

// Merge copies every trimmed line of r to w unless it is in ignore or
// already known, and registers it. It returns the number of new names.
func (x *NameIndex) Merge(r io.Reader, w io.Writer, ignore []string) (int, error) {
	skip := make(map[string]struct{}, len(ignore)+1)
	skip[""] = struct{}{}
	for _, s := range ignore {
		skip[strings.TrimSpace(s)] = struct{}{}
	}

	added := 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if _, ok := skip[line]; ok || x.Has(line) {
			continue
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return added, err
		}
		x.names[line] = x.lines
		x.lines++
		added++
	}
	if err := scanner.Err(); err != nil {
		return added, fmt.Errorf("read lines: %w", err)
	}
	return added, nil
}
