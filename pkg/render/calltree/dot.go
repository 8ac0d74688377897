// Package calltree renders the recursion of merge and quick sort as a
// Graphviz node-link diagram.
//
// Each node is one recursive call labelled with its index range. Quick sort
// nodes additionally show the pivot's final index and its value; calls that
// cover a single element are drawn dashed.
//
//	tree, _ := sorting.BuildCallTree(sorting.AlgQuick, values)
//	dot := calltree.ToDOT(tree, values, calltree.Options{})
//	svg, err := calltree.RenderSVG(ctx, dot)
package calltree

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/sortviz/pkg/sorting"
)

// Options configures call tree rendering.
type Options struct {
	// Values includes the sub-slice each call operates on in its label.
	// Values are taken from the input as given, before sorting.
	Values bool
}

// ToDOT converts a call tree to Graphviz DOT format.
// input is the sequence the tree was built from and is only read when
// opts.Values is set. A nil tree yields an empty graph.
func ToDOT(tree *sorting.CallNode, input []int, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.15,0.08\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.2;\n")
	buf.WriteString("\n")

	ids := map[*sorting.CallNode]string{}
	tree.Walk(func(n *sorting.CallNode, _ int) {
		id := "c" + strconv.Itoa(len(ids))
		ids[n] = id
		fmt.Fprintf(&buf, "  %s [%s];\n", id, strings.Join(fmtAttrs(n, input, opts), ", "))
	})

	buf.WriteString("\n")
	tree.Walk(func(n *sorting.CallNode, _ int) {
		for _, c := range n.Children {
			fmt.Fprintf(&buf, "  %s -> %s;\n", ids[n], ids[c])
		}
	})

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n *sorting.CallNode, input []int, opts Options) string {
	parts := []string{fmt.Sprintf("[%d..%d]", n.Lo, n.Hi)}
	if n.Pivot != sorting.None {
		parts = append(parts, fmt.Sprintf("pivot @%d", n.Pivot))
	}
	if opts.Values && n.Hi < len(input) {
		parts = append(parts, fmt.Sprint(input[n.Lo:n.Hi+1]))
	}
	return strings.Join(parts, "\n")
}

func fmtAttrs(n *sorting.CallNode, input []int, opts Options) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(n, input, opts))}
	if n.Size() == 1 {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=black")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-based svg tag with a plain
// viewBox so the output scales like the bar chart SVGs.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
