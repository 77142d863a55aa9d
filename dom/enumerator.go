package dom

// TreeEnumerator walks a node and its descendants in tree order: preorder,
// depth-first, visiting a node before its children and children in document
// order.
type TreeEnumerator struct {
	stack []Node
}

// NewTreeEnumerator returns an enumerator rooted at node. The root itself is
// the first node produced by Next.
func NewTreeEnumerator(node Node) *TreeEnumerator {
	if node == nil {
		return &TreeEnumerator{}
	}
	return &TreeEnumerator{stack: []Node{node}}
}

// Next returns the next node in tree order, or (nil, false) once exhausted.
func (e *TreeEnumerator) Next() (Node, bool) {
	if len(e.stack) == 0 {
		return nil, false
	}
	n := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]

	children := n.Children()
	for i := len(children) - 1; i >= 0; i-- {
		e.stack = append(e.stack, children[i])
	}
	return n, true
}

// ReverseTreeEnumerator walks a node and its descendants in reverse tree
// order: preorder, depth-first, but visiting each node's children starting
// with the last child instead of the first.
type ReverseTreeEnumerator struct {
	stack []Node
}

// NewReverseTreeEnumerator returns a reverse enumerator rooted at node. The
// root itself is the first node produced by Next.
func NewReverseTreeEnumerator(node Node) *ReverseTreeEnumerator {
	if node == nil {
		return &ReverseTreeEnumerator{}
	}
	return &ReverseTreeEnumerator{stack: []Node{node}}
}

// Next returns the next node in reverse tree order, or (nil, false) once
// exhausted.
func (e *ReverseTreeEnumerator) Next() (Node, bool) {
	if len(e.stack) == 0 {
		return nil, false
	}
	n := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]

	children := n.Children()
	for i := 0; i < len(children); i++ {
		e.stack = append(e.stack, children[i])
	}
	return n, true
}
