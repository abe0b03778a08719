package coloring

import (
	"strings"
	"testing"

	"github.com/edgewalk/edgewalk/pkg/graph"
)

func parse(t *testing.T, input string) *graph.Graph {
	t.Helper()
	g, err := graph.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return g
}

func TestDSaturReferenceGraph(t *testing.T) {
	g := parse(t, "1,2\n1,4\n2,3\n2,5\n4,5\n4,6\n5,7\n7,8\n7,9\n8,9\n")

	res := DSatur(g)

	// Hand-traced assignment under the saturation/degree/ID selection order.
	want := map[int]int{1: 2, 2: 1, 3: 2, 4: 1, 5: 2, 6: 2, 7: 1, 8: 2, 9: 3}
	for id, c := range want {
		if res.Colors[id] != c {
			t.Errorf("Colors[%d] = %d, want %d", id, res.Colors[id], c)
		}
	}
	if res.ColorsUsed != 3 {
		t.Errorf("ColorsUsed = %d, want 3", res.ColorsUsed)
	}
}

func TestDSaturProperColoring(t *testing.T) {
	fixtures := map[string]string{
		"triangle": "1,2\n2,3\n3,1\n",
		"specimen": "1,2\n1,4\n2,3\n2,5\n4,5\n4,6\n5,7\n7,8\n7,9\n8,9\n",
		"bipartite": "1,4\n1,5\n2,4\n2,6\n3,5\n3,6\n",
	}
	for name, input := range fixtures {
		t.Run(name, func(t *testing.T) {
			g := parse(t, input)
			res := DSatur(g)

			for _, n := range g.Nodes() {
				cn := res.Colors[n.ID]
				if cn < 1 {
					t.Fatalf("node %d has no color", n.ID)
				}
				neighborColors := map[int]bool{}
				for _, adj := range graph.Neighbors(n) {
					if adj != n {
						if res.Colors[adj.ID] == cn {
							t.Errorf("adjacent nodes %d and %d share color %d", n.ID, adj.ID, cn)
						}
						neighborColors[res.Colors[adj.ID]] = true
					}
				}
				// No node skips an available smaller color.
				for c := 1; c < cn; c++ {
					if !neighborColors[c] {
						t.Errorf("node %d wears color %d but %d was free", n.ID, cn, c)
					}
				}
			}
		})
	}
}

func TestDSaturTriangleUsesThreeColors(t *testing.T) {
	res := DSatur(parse(t, "1,2\n2,3\n3,1\n"))
	if res.ColorsUsed != 3 {
		t.Errorf("triangle ColorsUsed = %d, want 3", res.ColorsUsed)
	}
}

func TestDSaturBipartiteUsesTwoColors(t *testing.T) {
	res := DSatur(parse(t, "1,4\n1,5\n2,4\n2,6\n3,5\n3,6\n"))
	if res.ColorsUsed != 2 {
		t.Errorf("bipartite ColorsUsed = %d, want 2", res.ColorsUsed)
	}
}

func TestDSaturEmptyGraph(t *testing.T) {
	res := DSatur(graph.New())
	if len(res.Colors) != 0 || res.ColorsUsed != 0 {
		t.Errorf("empty graph result = %+v, want no colors", res)
	}
}

func TestDSaturNoEdges(t *testing.T) {
	// Nodes with no edges between them all get color 1.
	g := graph.New()
	g.AddEdge(1, 1, 1)
	g.AddEdge(2, 2, 1)

	res := DSatur(g)
	if res.ColorsUsed != 1 {
		t.Errorf("isolated nodes ColorsUsed = %d, want 1", res.ColorsUsed)
	}
}
