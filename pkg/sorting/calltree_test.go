package sorting

import (
	"testing"

	errs "github.com/matzehuels/sortviz/pkg/errors"
)

func TestBuildCallTreeMerge(t *testing.T) {
	tree, err := BuildCallTree(AlgMerge, Generate(8, 3))
	if err != nil {
		t.Fatal(err)
	}
	// A full binary split of 8 elements: 8 leaves + 7 internal calls.
	if got := tree.Count(); got != 15 {
		t.Errorf("Count() = %d, want 15", got)
	}
	if got := tree.Depth(); got != 4 {
		t.Errorf("Depth() = %d, want 4", got)
	}
	tree.Walk(func(n *CallNode, _ int) {
		if n.Pivot != None {
			t.Errorf("merge call [%d,%d] has pivot %d", n.Lo, n.Hi, n.Pivot)
		}
	})
}

func TestBuildCallTreeQuick(t *testing.T) {
	tree, err := BuildCallTree(AlgQuick, []int{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	// Sorted input with the last element as pivot degenerates into a chain.
	if got := tree.Depth(); got != 4 {
		t.Errorf("Depth() = %d, want 4", got)
	}
	if tree.Pivot != 3 {
		t.Errorf("root pivot = %d, want 3", tree.Pivot)
	}
	tree.Walk(func(n *CallNode, _ int) {
		if n.Size() > 1 && (n.Pivot < n.Lo || n.Pivot > n.Hi) {
			t.Errorf("pivot %d outside [%d,%d]", n.Pivot, n.Lo, n.Hi)
		}
	})
}

func TestBuildCallTreeEmpty(t *testing.T) {
	tree, err := BuildCallTree(AlgQuick, nil)
	if err != nil {
		t.Fatal(err)
	}
	if tree != nil {
		t.Errorf("tree = %+v, want nil", tree)
	}
	if tree.Count() != 0 || tree.Depth() != 0 {
		t.Error("nil tree should have no calls")
	}
}

func TestBuildCallTreeUnsupported(t *testing.T) {
	_, err := BuildCallTree(AlgBubble, []int{2, 1})
	if !errs.Is(err, errs.ErrCodeUnsupported) {
		t.Errorf("error = %v, want UNSUPPORTED", err)
	}
}
