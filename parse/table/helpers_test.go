package table

// getNode walks path from root and returns the node found there.
func getNode(root *Table, path ...string) (Node, bool) {
	var cur Node = root
	for _, p := range path {
		t, ok := cur.(*Table)
		if !ok {
			return nil, false
		}
		cur, ok = t.Items[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func leafValue(n Node) string {
	return n.(*Leaf).Value
}
