package traverse

import "github.com/edgewalk/edgewalk/pkg/graph"

// DFS returns the depth-first pre-order visitation sequence from the node
// with the given ID, descending into neighbors in edge-insertion order.
// Returns an empty sequence when startID is absent.
func DFS(g *graph.Graph, startID int) []*graph.Node {
	start := g.Node(startID)
	if start == nil {
		return nil
	}

	visited := make(map[*graph.Node]bool, g.Len())
	result := make([]*graph.Node, 0, g.Len())
	return dfs(start, visited, result)
}

func dfs(n *graph.Node, visited map[*graph.Node]bool, result []*graph.Node) []*graph.Node {
	if visited[n] {
		return result
	}
	visited[n] = true
	result = append(result, n)

	for _, e := range n.Edges() {
		adj := e.Opposite(n)
		if adj != nil && !visited[adj] {
			result = dfs(adj, visited, result)
		}
	}
	return result
}
