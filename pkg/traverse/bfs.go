package traverse

import "github.com/edgewalk/edgewalk/pkg/graph"

// BFS returns the breadth-first visitation sequence from the node with the
// given ID. Neighbors are enqueued in edge-insertion order and marked visited
// as they are enqueued. Returns an empty sequence when startID is absent.
func BFS(g *graph.Graph, startID int) []*graph.Node {
	start := g.Node(startID)
	if start == nil {
		return nil
	}

	visited := map[*graph.Node]bool{start: true}
	queue := []*graph.Node{start}
	result := make([]*graph.Node, 0, g.Len())

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		result = append(result, n)

		for _, e := range n.Edges() {
			adj := e.Opposite(n)
			if adj == nil || visited[adj] {
				continue
			}
			visited[adj] = true
			queue = append(queue, adj)
		}
	}
	return result
}
