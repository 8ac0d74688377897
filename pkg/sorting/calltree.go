package sorting

import (
	"slices"

	errs "github.com/matzehuels/sortviz/pkg/errors"
)

// CallNode is one recursive call of merge or quick sort over values[Lo..Hi].
type CallNode struct {
	Lo       int         `json:"lo"`
	Hi       int         `json:"hi"`
	Pivot    int         `json:"pivot"` // final pivot index (quick sort), else None
	Children []*CallNode `json:"children,omitempty"`
}

// Size returns the number of elements the call covers.
func (n *CallNode) Size() int { return n.Hi - n.Lo + 1 }

// Walk visits n and its descendants depth-first, parents before children.
func (n *CallNode) Walk(fn func(node *CallNode, depth int)) {
	n.walk(fn, 0)
}

func (n *CallNode) walk(fn func(*CallNode, int), depth int) {
	if n == nil {
		return
	}
	fn(n, depth)
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// Count returns the number of calls in the tree.
func (n *CallNode) Count() int {
	count := 0
	n.Walk(func(*CallNode, int) { count++ })
	return count
}

// Depth returns the maximum recursion depth (a single call has depth 1).
func (n *CallNode) Depth() int {
	if n == nil {
		return 0
	}
	d := 0
	for _, c := range n.Children {
		d = max(d, c.Depth())
	}
	return d + 1
}

func (n *CallNode) child(lo, hi int) *CallNode {
	if n == nil {
		return nil
	}
	c := &CallNode{Lo: lo, Hi: hi, Pivot: None}
	n.Children = append(n.Children, c)
	return c
}

func (n *CallNode) setPivot(p int) {
	if n != nil {
		n.Pivot = p
	}
}

// BuildCallTree sorts a copy of input and returns the recursion tree of the
// run. Only merge and quick sort are recursive. An empty input has no calls
// and yields a nil tree.
func BuildCallTree(a Algorithm, input []int) (*CallNode, error) {
	if !a.Recursive() {
		return nil, errs.New(errs.ErrCodeUnsupported, "%s sort has no call tree", a)
	}
	values := slices.Clone(input)
	root := &CallNode{}
	switch a {
	case AlgMerge:
		mergeSort(values, 0, len(values)-1, nil, root)
	case AlgQuick:
		quickSort(values, 0, len(values)-1, nil, root)
	}
	if len(root.Children) == 0 {
		return nil, nil
	}
	return root.Children[0], nil
}
