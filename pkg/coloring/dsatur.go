package coloring

import (
	"sort"

	"github.com/edgewalk/edgewalk/pkg/graph"
)

// Result holds a completed coloring.
type Result struct {
	// Colors maps node ID to its assigned color (1-based).
	Colors map[int]int

	// ColorsUsed is the number of distinct colors, zero for an empty graph.
	// Colors are assigned contiguously from 1, so this equals the largest
	// color handed out.
	ColorsUsed int
}

// DSatur colors every node of g. The graph is never mutated; run it on an
// empty graph and you get an empty result.
func DSatur(g *graph.Graph) Result {
	colors := make(map[*graph.Node]int, g.Len())
	uncolored := make(map[*graph.Node]bool, g.Len())
	for _, n := range g.Nodes() {
		uncolored[n] = true
	}

	for len(uncolored) > 0 {
		n := selectNext(uncolored, colors)
		colors[n] = smallestAvailable(n, colors)
		delete(uncolored, n)
	}

	res := Result{Colors: make(map[int]int, len(colors))}
	for n, c := range colors {
		res.Colors[n.ID] = c
		if c > res.ColorsUsed {
			res.ColorsUsed = c
		}
	}
	return res
}

// selectNext picks the uncolored node with the highest saturation degree,
// tie-broken by degree in the uncolored subgraph, then by smallest ID.
// Candidates are scanned in ascending ID order and only strictly better
// scores displace the current pick, which is what makes the final tie-break
// fall out for free.
func selectNext(uncolored map[*graph.Node]bool, colors map[*graph.Node]int) *graph.Node {
	candidates := make([]*graph.Node, 0, len(uncolored))
	for n := range uncolored {
		candidates = append(candidates, n)
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].ID < candidates[j].ID })

	var selected *graph.Node
	maxSat, maxDeg := -1, -1
	for _, n := range candidates {
		sat := saturationDegree(n, colors)
		deg := degreeInUncolored(n, uncolored)
		switch {
		case selected == nil, sat > maxSat:
			selected, maxSat, maxDeg = n, sat, deg
		case sat == maxSat && deg > maxDeg:
			selected, maxDeg = n, deg
		}
	}
	return selected
}

// saturationDegree counts the distinct colors among n's colored neighbors.
func saturationDegree(n *graph.Node, colors map[*graph.Node]int) int {
	distinct := map[int]bool{}
	for _, adj := range graph.Neighbors(n) {
		if c, ok := colors[adj]; ok {
			distinct[c] = true
		}
	}
	return len(distinct)
}

// degreeInUncolored counts n's neighbors still awaiting a color.
func degreeInUncolored(n *graph.Node, uncolored map[*graph.Node]bool) int {
	deg := 0
	for _, adj := range graph.Neighbors(n) {
		if uncolored[adj] {
			deg++
		}
	}
	return deg
}

// smallestAvailable returns the smallest positive color not used by any of
// n's already-colored neighbors.
func smallestAvailable(n *graph.Node, colors map[*graph.Node]int) int {
	taken := map[int]bool{}
	for _, adj := range graph.Neighbors(n) {
		if c, ok := colors[adj]; ok {
			taken[c] = true
		}
	}
	c := 1
	for taken[c] {
		c++
	}
	return c
}
