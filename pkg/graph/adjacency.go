package graph

import (
	"strconv"
	"strings"
)

// IsAdjacent reports whether other is reachable from n over a single edge.
// Every node counts as adjacent to itself; the Bron–Kerbosch completeness
// guard depends on that rule, so it must not be "fixed".
func (n *Node) IsAdjacent(other *Node) bool {
	if n == other {
		return true
	}
	for _, e := range n.edges {
		if e.adjacent == other {
			return true
		}
	}
	return false
}

// Neighbors returns the distinct nodes one edge away from n, in
// edge-insertion order. A nil node has no neighbors.
func Neighbors(n *Node) []*Node {
	if n == nil || len(n.edges) == 0 {
		return nil
	}
	seen := make(map[*Node]struct{}, len(n.edges))
	out := make([]*Node, 0, len(n.edges))
	for _, e := range n.edges {
		adj := e.Opposite(n)
		if adj == nil {
			continue
		}
		if _, dup := seen[adj]; dup {
			continue
		}
		seen[adj] = struct{}{}
		out = append(out, adj)
	}
	return out
}

// HasCompleteAdjacency reports whether every node in a has at least one
// adjacent node in b. It is vacuously true when a is empty. Because
// adjacency includes self-adjacency, a node appearing in both collections
// always satisfies its own requirement.
func HasCompleteAdjacency(a, b []*Node) bool {
	for _, n := range a {
		found := false
		for _, m := range b {
			if n.IsAdjacent(m) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Sequence renders an ordered list of nodes as "1 -> 2 -> 3".
// An empty list renders as the empty string.
func Sequence(nodes []*Node) string {
	if len(nodes) == 0 {
		return ""
	}
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = strconv.Itoa(n.ID)
	}
	return strings.Join(parts, " -> ")
}
