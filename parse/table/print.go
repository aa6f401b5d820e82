package table

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrRootNotFound is returned when the requested root is not a top-level key
// of the tree.
var ErrRootNotFound = errors.New("root not found")

const indentUnit = "  "

// Lookup returns the top-level table or leaf named label.
func Lookup(root *Table, label string) (Node, error) {
	n, ok := root.Items[label]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrRootNotFound, label, strings.Join(Keys(root), ", "))
	}
	return n, nil
}

// Print writes the subtree under label as a nested table. Nothing is written
// when label is missing.
func Print(w io.Writer, root *Table, label string) error {
	n, err := Lookup(root, label)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	if err := printNode(bw, label, n, "", true); err != nil {
		return err
	}
	return bw.Flush()
}

func printNode(w *bufio.Writer, key string, n Node, indent string, last bool) error {
	sep := ","
	if last {
		sep = ""
	}

	switch v := n.(type) {
	case *Leaf:
		_, err := fmt.Fprintf(w, "%s%s = %s%s\n", indent, key, v.Value, sep)
		return err
	case *Table:
		if _, err := fmt.Fprintf(w, "%s%s = {\n", indent, key); err != nil {
			return err
		}
		keys := Keys(v)
		for i, k := range keys {
			if err := printNode(w, k, v.Items[k], indent+indentUnit, i == len(keys)-1); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "%s}%s\n", indent, sep)
		return err
	default:
		return fmt.Errorf("unexpected node %T at %q", n, key)
	}
}
