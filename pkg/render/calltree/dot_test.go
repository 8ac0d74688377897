package calltree

import (
	"strings"
	"testing"

	"github.com/matzehuels/sortviz/pkg/sorting"
)

func TestToDOTMerge(t *testing.T) {
	input := []int{4, 3, 2, 1}
	tree, err := sorting.BuildCallTree(sorting.AlgMerge, input)
	if err != nil {
		t.Fatal(err)
	}

	dot := ToDOT(tree, input, Options{})

	if !strings.HasPrefix(dot, "digraph G {") {
		t.Error("DOT should start with digraph declaration")
	}
	if got := strings.Count(dot, "label="); got != 7 {
		t.Errorf("nodes = %d, want 7", got)
	}
	if got := strings.Count(dot, " -> "); got != 6 {
		t.Errorf("edges = %d, want 6", got)
	}
	if !strings.Contains(dot, `label="[0..3]"`) {
		t.Error("root label missing")
	}
	if got := strings.Count(dot, "dashed"); got != 4 {
		t.Errorf("leaf nodes = %d, want 4", got)
	}
	if strings.Contains(dot, "pivot") {
		t.Error("merge sort has no pivots")
	}
}

func TestToDOTQuickWithValues(t *testing.T) {
	input := []int{3, 1, 2}
	tree, err := sorting.BuildCallTree(sorting.AlgQuick, input)
	if err != nil {
		t.Fatal(err)
	}

	dot := ToDOT(tree, input, Options{Values: true})

	if !strings.Contains(dot, `label="[0..2]\npivot @1\n[3 1 2]"`) {
		t.Errorf("root label missing pivot or values:\n%s", dot)
	}
}

func TestToDOTEmpty(t *testing.T) {
	dot := ToDOT(nil, nil, Options{})
	if strings.Contains(dot, "label=") {
		t.Error("empty tree should have no nodes")
	}
	if !strings.HasSuffix(dot, "}\n") {
		t.Error("DOT should be closed")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="116pt" viewBox="0.00 0.00 62.00 116.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 62.00 116.00" width="62" height="116">`
	if !strings.HasPrefix(out, want) {
		t.Errorf("got %s", out)
	}

	plain := []byte(`<svg><g/></svg>`)
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("svg without viewBox should be unchanged")
	}
}
