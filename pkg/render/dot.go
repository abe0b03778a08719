// Package render converts graphs to Graphviz DOT and image formats.
//
// Rendering is presentation only: algorithm results from [mst] and
// [coloring] can be overlaid on the drawing, but the graph itself is never
// modified.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/edgewalk/edgewalk/pkg/coloring"
	"github.com/edgewalk/edgewalk/pkg/graph"
	"github.com/edgewalk/edgewalk/pkg/mst"
)

// Options configures DOT generation.
type Options struct {
	// MST highlights the given spanning-tree edges.
	MST *mst.Result

	// Coloring fills nodes according to a DSatur result.
	Coloring *coloring.Result

	// Weights labels every edge with its weight.
	Weights bool
}

// palette maps 1-based colors to fill colors. Colorings that need more
// colors than the palette carries wrap around.
var palette = []string{
	"#e57373", // red
	"#81c784", // green
	"#fff176", // yellow
	"#64b5f6", // blue
	"#ba68c8", // purple
	"#4dd0e1", // cyan
	"#ffb74d", // orange
	"#a1887f", // brown
}

// edgeKey identifies an undirected edge regardless of direction.
type edgeKey struct {
	a, b, w int
}

func keyOf(e *graph.Edge) edgeKey {
	a, b := e.Parent().ID, e.Adjacent().ID
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b, e.Weight}
}

// ToDOT converts a graph to Graphviz DOT for undirected drawing. Nodes and
// edges appear in insertion order, so the output is deterministic for a
// given input file.
func ToDOT(g *graph.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		if opts.Coloring != nil {
			if c, ok := opts.Coloring.Colors[n.ID]; ok && c > 0 {
				fill := palette[(c-1)%len(palette)]
				fmt.Fprintf(&buf, "  %d [fillcolor=%q];\n", n.ID, fill)
				continue
			}
		}
		fmt.Fprintf(&buf, "  %d;\n", n.ID)
	}

	tree := map[edgeKey]bool{}
	if opts.MST != nil {
		for _, e := range opts.MST.Edges {
			tree[keyOf(e)] = true
		}
	}

	buf.WriteString("\n")
	index := make(map[int]int, g.Len())
	for i, n := range g.Nodes() {
		index[n.ID] = i
	}
	for i, n := range g.Nodes() {
		for _, e := range n.Edges() {
			other := e.Opposite(n)
			// Emit each undirected edge once, from the earlier-inserted side.
			if index[other.ID] < i && other != n {
				continue
			}
			var attrs []string
			if opts.Weights {
				attrs = append(attrs, fmt.Sprintf("label=\"%d\"", e.Weight))
			}
			if tree[keyOf(e)] {
				attrs = append(attrs, "penwidth=2.5", "color=\"#c62828\"")
			}
			if len(attrs) == 0 {
				fmt.Fprintf(&buf, "  %d -- %d;\n", n.ID, other.ID)
				continue
			}
			fmt.Fprintf(&buf, "  %d -- %d [", n.ID, other.ID)
			for j, a := range attrs {
				if j > 0 {
					buf.WriteString(", ")
				}
				buf.WriteString(a)
			}
			buf.WriteString("];\n")
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.PNG)
}

func renderFormat(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
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
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
