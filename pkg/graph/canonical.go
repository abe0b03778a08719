package graph

import (
	"fmt"
	"strings"
)

// EdgeList renders the graph back into canonical edge-list text: one
// "from,to,weight" line per undirected edge, each edge exactly once, ordered
// by node insertion. Two graphs built from the same input produce identical
// text, which makes this the basis for result-cache fingerprints.
//
// Isolated nodes cannot appear (every node enters the graph via an edge), so
// the edge list is a complete description of the graph.
func (g *Graph) EdgeList() string {
	index := make(map[*Node]int, len(g.order))
	for i, n := range g.order {
		index[n] = i
	}

	var sb strings.Builder
	for i, n := range g.order {
		for _, e := range n.edges {
			// Emit from the earlier-inserted endpoint only, so the mirror
			// entry on the other side doesn't duplicate the line.
			if index[e.adjacent] > i || e.adjacent == n {
				fmt.Fprintf(&sb, "%d,%d,%d\n", n.ID, e.adjacent.ID, e.Weight)
			}
		}
	}
	return sb.String()
}
