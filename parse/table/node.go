package table

// table 包把 (path, value) 记录合并成一棵嵌套的表树，并按规范顺序输出。
//
// Package table folds (path, value) records into a nested tree of tables and
// prints it back in a canonical order:
// - Interior nodes are *Table, terminal strings are *Leaf
// - A prefix is never both a leaf and a table
// - Child order is recomputed from keys at print time

import (
	"slices"
	"strings"
)

// =========================
// AST Definitions
// =========================

type Kind uint8

const (
	KindTable Kind = iota
	KindLeaf
)

func (k Kind) String() string {
	switch k {
	case KindTable:
		return "table"
	case KindLeaf:
		return "leaf"
	default:
		return "unknown"
	}
}

// Node is either a *Table or a *Leaf.
type Node interface {
	Kind() Kind
	node()
}

// -------- Table --------

type Table struct {
	Items map[string]Node
}

func NewTable() *Table {
	return &Table{Items: make(map[string]Node)}
}

func (*Table) Kind() Kind { return KindTable }

func (*Table) node() {}

// -------- Leaf --------

// Leaf holds the quoted payload exactly as it appeared in the input.
type Leaf struct {
	Value string
}

func (*Leaf) Kind() Kind { return KindLeaf }

func (*Leaf) node() {}

// =========================
// Key Ordering
// =========================

func isIndexKey(k string) bool {
	return strings.HasPrefix(k, "[")
}

// CompareKeys orders field keys before index keys. Field keys compare
// lexicographically, index keys by length first so that [2] < [10].
func CompareKeys(a, b string) int {
	ai, bi := isIndexKey(a), isIndexKey(b)
	switch {
	case ai && !bi:
		return 1
	case !ai && bi:
		return -1
	case ai && bi && len(a) != len(b):
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// Keys returns the keys of t in canonical order.
func Keys(t *Table) []string {
	keys := make([]string, 0, len(t.Items))
	for k := range t.Items {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, CompareKeys)
	return keys
}

// =========================
// Tree Statistics
// =========================

// CountLeaves returns the number of leaves below n, n included.
func CountLeaves(n Node) int {
	switch v := n.(type) {
	case *Leaf:
		return 1
	case *Table:
		total := 0
		for _, child := range v.Items {
			total += CountLeaves(child)
		}
		return total
	default:
		return 0
	}
}
