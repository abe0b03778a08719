package mis

import "github.com/edgewalk/edgewalk/pkg/graph"

// Find returns every maximal independent set of g, in discovery order.
// Candidates are seeded in graph insertion order, so results are
// deterministic for a given input file. Returns nil for an empty graph.
func Find(g *graph.Graph) [][]*graph.Node {
	if g.Len() == 0 {
		return nil
	}
	s := &search{}
	s.run(g.Nodes(), nil)
	return s.results
}

// search carries the independent set under construction and the accumulated
// results; candidates and excluded are per-level and passed down explicitly.
type search struct {
	independent []*graph.Node
	results     [][]*graph.Node
}

// run explores extensions of the current independent set drawn from
// candidates. excluded holds the nodes already tried at an enclosing level
// whose branches have been exhausted.
func (s *search) run(candidates, excluded []*graph.Node) {
	// The completeness guard: once any excluded node has no adjacent node
	// left among the candidates, this branch can only rediscover non-maximal
	// subsets of sets recorded elsewhere, so the loop stops.
	for len(candidates) > 0 && graph.HasCompleteAdjacency(excluded, candidates) {
		v := candidates[0]
		candidates = candidates[1:]
		s.independent = append(s.independent, v)

		newCandidates := withoutAdjacent(candidates, v)
		newExcluded := withoutAdjacent(excluded, v)

		if len(newCandidates) == 0 && len(newExcluded) == 0 {
			s.record()
		} else {
			s.run(newCandidates, newExcluded)
		}

		// Backtrack: v leaves the independent set and joins the excluded
		// set for the remaining iterations at this level.
		s.independent = s.independent[:len(s.independent)-1]
		excluded = append(excluded, v)
	}
}

// record snapshots the current independent set as a maximal result.
func (s *search) record() {
	set := make([]*graph.Node, len(s.independent))
	copy(set, s.independent)
	s.results = append(s.results, set)
}

// withoutAdjacent filters out every node adjacent to v. Self-adjacency means
// v itself is dropped as well, preserving order of the survivors.
func withoutAdjacent(nodes []*graph.Node, v *graph.Node) []*graph.Node {
	out := make([]*graph.Node, 0, len(nodes))
	for _, n := range nodes {
		if !n.IsAdjacent(v) {
			out = append(out, n)
		}
	}
	return out
}
