package engine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/edgewalk/edgewalk/pkg/coloring"
	"github.com/edgewalk/edgewalk/pkg/graph"
	"github.com/edgewalk/edgewalk/pkg/mst"
)

// msgPrimNoStart is the result text for running Prim on an empty graph.
const msgPrimNoStart = "Cannot find a starting node for Prim's algorithm"

// FormatTraversal renders a BFS/DFS visit order as "1 -> 2 -> 3".
// An empty traversal renders as an empty string.
func FormatTraversal(nodes []*graph.Node) string {
	return graph.Sequence(nodes)
}

// FormatIndependentSets renders Bron–Kerbosch output:
//
//	All maximum independent sets (3):
//	[2];
//	[1, 3];
//	[4, 5]
//
// Sets are ordered by size ascending (stable, so equal-size sets keep
// discovery order) and each set lists its node IDs in ascending order.
func FormatIndependentSets(sets [][]*graph.Node) string {
	type entry struct {
		size int
		text string
	}
	entries := make([]entry, len(sets))
	for i, set := range sets {
		ids := make([]int, len(set))
		for j, n := range set {
			ids[j] = n.ID
		}
		sort.Ints(ids)

		parts := make([]string, len(ids))
		for j, id := range ids {
			parts[j] = strconv.Itoa(id)
		}
		entries[i] = entry{size: len(set), text: "[" + strings.Join(parts, ", ") + "]"}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].size < entries[j].size
	})

	rendered := make([]string, len(entries))
	for i, e := range entries {
		rendered[i] = e.text
	}

	return fmt.Sprintf("All maximum independent sets (%d):\n%s",
		len(sets), strings.Join(rendered, ";\n"))
}

// FormatMST renders a Prim result: the selected edges in selection order
// followed by the total weight. A tree that does not span the whole graph
// gets a disconnection warning up front.
func FormatMST(res mst.Result) string {
	var sb strings.Builder

	if len(res.Edges) != res.Total-1 && res.Total > 1 {
		fmt.Fprintf(&sb, "Graph might not be connected!\nNodes in MST: %d/%d\n\n",
			res.Reached, res.Total)
	}

	sb.WriteString("Minimum Spanning Tree (Prim's Algorithm):\n")
	sb.WriteString("Edges:\n")
	for _, e := range res.Edges {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "Total Weight: %d", res.TotalWeight)

	return sb.String()
}

// FormatColoring renders a DSatur result, one "Node N: Color C" line per
// node in ascending ID order, followed by the color count.
func FormatColoring(res coloring.Result) string {
	ids := make([]int, 0, len(res.Colors))
	for id := range res.Colors {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	lines := make([]string, len(ids))
	for i, id := range ids {
		lines[i] = fmt.Sprintf("Node %d: Color %d", id, res.Colors[id])
	}

	return fmt.Sprintf("Graph Coloring Result (DSatur Algorithm):\n%s\n\nTotal colors used: %d",
		strings.Join(lines, "\n"), res.ColorsUsed)
}
