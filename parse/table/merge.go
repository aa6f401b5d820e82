package table

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dzjyyds666/strtable/parse"
)

var (
	// ErrConflict means a path needs a node to be both a leaf and a table.
	ErrConflict = errors.New("structural conflict")
	// ErrDuplicate means two records assign the same full path.
	ErrDuplicate = errors.New("duplicate string name")
)

// DuplicatePolicy decides what happens when a leaf is assigned twice.
type DuplicatePolicy uint8

const (
	// DuplicateLastWins keeps the value of the latest record.
	DuplicateLastWins DuplicatePolicy = iota
	// DuplicateReject fails the build with a *DuplicateError.
	DuplicateReject
)

type Options struct {
	Duplicates DuplicatePolicy
}

// ConflictError reports the record that tried to turn a leaf into a table or
// a table into a leaf.
type ConflictError struct {
	Path     []string
	At       int  // index of the segment where the kinds disagree
	Existing Kind // kind already in the tree
	Source   string
	Line     int
}

func (e *ConflictError) Error() string {
	prefix := joinPath(e.Path[:e.At+1])
	want := KindTable
	if e.Existing == KindTable {
		want = KindLeaf
	}
	return fmt.Sprintf("%s: %q is a %s, %q needs it to be a %s%s",
		ErrConflict, prefix, e.Existing, joinPath(e.Path), want, position(e.Source, e.Line))
}

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// DuplicateError reports a second assignment to the same leaf.
type DuplicateError struct {
	Path   []string
	Source string
	Line   int
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s: %q%s", ErrDuplicate, joinPath(e.Path), position(e.Source, e.Line))
}

func (e *DuplicateError) Is(target error) bool { return target == ErrDuplicate }

// =========================
// Builder
// =========================

// Builder folds records into a single tree in input order.
type Builder struct {
	root *Table
	opts Options
}

func NewBuilder(opts Options) *Builder {
	return &Builder{root: NewTable(), opts: opts}
}

// Root returns the tree built so far. Its keys are the root identifiers.
func (b *Builder) Root() *Table { return b.root }

// Add places value at path. The tree is left unchanged when an error is
// returned.
func (b *Builder) Add(path []string, value string) error {
	return b.add(path, value, "", 0)
}

// AddRecord is Add with the record's source position attached to errors.
func (b *Builder) AddRecord(rec parse.Record) error {
	return b.add(rec.Path, rec.Value, rec.Source, rec.Line)
}

func (b *Builder) add(path []string, value, source string, line int) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty path", parse.ErrBadPath)
	}
	if err := b.check(path, source, line); err != nil {
		return err
	}

	t := b.root
	for _, part := range path[:len(path)-1] {
		n, ok := t.Items[part]
		if !ok {
			next := NewTable()
			t.Items[part] = next
			t = next
			continue
		}
		t = n.(*Table)
	}
	t.Items[path[len(path)-1]] = &Leaf{Value: value}
	return nil
}

// check validates path against the current tree without modifying it.
func (b *Builder) check(path []string, source string, line int) error {
	t := b.root
	last := len(path) - 1
	for i, part := range path {
		n, ok := t.Items[part]
		if !ok {
			return nil
		}
		switch v := n.(type) {
		case *Table:
			if i == last {
				return &ConflictError{Path: path, At: i, Existing: KindTable, Source: source, Line: line}
			}
			t = v
		case *Leaf:
			if i < last {
				return &ConflictError{Path: path, At: i, Existing: KindLeaf, Source: source, Line: line}
			}
			if b.opts.Duplicates == DuplicateReject {
				return &DuplicateError{Path: path, Source: source, Line: line}
			}
		default:
			return fmt.Errorf("unexpected node %T at %q", n, joinPath(path[:i+1]))
		}
	}
	return nil
}

// Build folds all records into one tree and stops at the first fatal error.
func Build(records []parse.Record, opts Options) (*Table, error) {
	b := NewBuilder(opts)
	for _, rec := range records {
		if err := b.AddRecord(rec); err != nil {
			return nil, err
		}
	}
	return b.Root(), nil
}

func joinPath(path []string) string {
	return parse.Path(path).String()
}

func position(source string, line int) string {
	if source == "" {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, " (%s", source)
	if line > 0 {
		fmt.Fprintf(&b, ":%d", line)
	}
	b.WriteByte(')')
	return b.String()
}
