package textom

// NodeList is the ordered list of children of a Parent.
type NodeList []Node

// Contains returns the index of n in the list, or -1.
func (h *NodeList) Contains(n Node) int {
	if n == nil {
		return -1
	}
	return h.indexOfFields(n.fields())
}

func (h *NodeList) indexOfFields(f *NodeFields) int {
	for i := range *h {
		if (*h)[i].fields() == f {
			return i
		}
	}
	return -1
}

func (h *NodeList) Remove(i int) Node {
	if i < 0 {
		return nil
	}
	if i >= len(*h) {
		return nil
	}
	node := (*h)[i]
	*h = append((*h)[:i], (*h)[i+1:]...)
	return node
}

// WedgeIn inserts n at index i, shifting the rest right. An index past the
// end appends.
func (h *NodeList) WedgeIn(i int, n Node) {
	if i < 0 {
		return
	}
	if i >= len(*h) {
		*h = append(*h, n)
		return
	}
	*h = append((*h)[:i+1], (*h)[i:]...)
	(*h)[i] = n
}

// OfType returns every node in the list whose Type is t.
func (h NodeList) OfType(t NodeType) NodeList {
	var out NodeList
	for _, n := range h {
		if n.Type() == t {
			out = append(out, n)
		}
	}
	return out
}
