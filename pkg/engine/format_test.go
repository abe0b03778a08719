package engine

import (
	"strings"
	"testing"

	"github.com/edgewalk/edgewalk/pkg/coloring"
	"github.com/edgewalk/edgewalk/pkg/graph"
	"github.com/edgewalk/edgewalk/pkg/mst"
)

func nodesOf(t *testing.T, g *graph.Graph, ids ...int) []*graph.Node {
	t.Helper()
	out := make([]*graph.Node, len(ids))
	for i, id := range ids {
		n := g.Node(id)
		if n == nil {
			t.Fatalf("node %d not in graph", id)
		}
		out[i] = n
	}
	return out
}

func TestFormatTraversalEmpty(t *testing.T) {
	if got := FormatTraversal(nil); got != "" {
		t.Errorf("FormatTraversal(nil) = %q, want empty", got)
	}
}

func TestFormatIndependentSetsOrdering(t *testing.T) {
	g, err := graph.Parse(strings.NewReader("1,2\n3,4\n5,6\n"))
	if err != nil {
		t.Fatal(err)
	}

	// Sizes 2, 1, 2: the singleton sorts first, equal sizes keep input order.
	sets := [][]*graph.Node{
		nodesOf(t, g, 3, 1), // IDs render ascending within a set
		nodesOf(t, g, 5),
		nodesOf(t, g, 2, 4),
	}

	want := "All maximum independent sets (3):\n[5];\n[1, 3];\n[2, 4]"
	if got := FormatIndependentSets(sets); got != want {
		t.Errorf("FormatIndependentSets = %q, want %q", got, want)
	}
}

func TestFormatIndependentSetsEmpty(t *testing.T) {
	want := "All maximum independent sets (0):\n"
	if got := FormatIndependentSets(nil); got != want {
		t.Errorf("FormatIndependentSets(nil) = %q, want %q", got, want)
	}
}

func TestFormatMSTDisconnectedWarning(t *testing.T) {
	g, err := graph.Parse(strings.NewReader("1,2,5\n3,4,2\n"))
	if err != nil {
		t.Fatal(err)
	}

	res, err := mst.Prim(g)
	if err != nil {
		t.Fatal(err)
	}

	want := "Graph might not be connected!\n" +
		"Nodes in MST: 2/4\n\n" +
		"Minimum Spanning Tree (Prim's Algorithm):\n" +
		"Edges:\n" +
		"(1 - 2, w:5)\n" +
		"Total Weight: 5"
	if got := FormatMST(res); got != want {
		t.Errorf("FormatMST = %q, want %q", got, want)
	}
}

func TestFormatMSTSingleNodeNoWarning(t *testing.T) {
	g := graph.New()
	g.AddEdge(1, 1, 1)

	res, err := mst.Prim(g)
	if err != nil {
		t.Fatal(err)
	}

	got := FormatMST(res)
	if strings.Contains(got, "might not be connected") {
		t.Errorf("single-node tree should not warn about connectivity: %q", got)
	}
	if !strings.HasSuffix(got, "Total Weight: 0") {
		t.Errorf("FormatMST = %q, want zero total weight", got)
	}
}

func TestFormatColoringEmpty(t *testing.T) {
	want := "Graph Coloring Result (DSatur Algorithm):\n\n\nTotal colors used: 0"
	if got := FormatColoring(coloring.Result{Colors: map[int]int{}}); got != want {
		t.Errorf("FormatColoring = %q, want %q", got, want)
	}
}
