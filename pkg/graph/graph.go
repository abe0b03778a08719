package graph

import "fmt"

// DefaultWeight is the weight assigned to edges whose input line omits one.
const DefaultWeight = 1

// Node is a vertex in the graph, identified solely by its integer ID.
// Two nodes with the same ID are the same node; the graph arena guarantees
// at most one Node value exists per ID.
type Node struct {
	ID    int
	edges []*Edge
}

// Edges returns the node's incident edges in insertion order.
// The returned slice is shared with the node and must not be modified.
func (n *Node) Edges() []*Edge {
	if n == nil {
		return nil
	}
	return n.edges
}

// addEdge appends an edge unless an entry with the same adjacent endpoint and
// weight is already present. Insertion order is preserved for the rest.
func (n *Node) addEdge(e *Edge) {
	for _, existing := range n.edges {
		if existing.adjacent == e.adjacent && existing.Weight == e.Weight {
			return
		}
	}
	n.edges = append(n.edges, e)
}

// Edge is one endpoint's view of an undirected connection. Every recorded
// edge (u,v,w) materializes twice: once in u's edge set with adjacent=v and
// once in v's with adjacent=u, keeping the symmetry invariant by construction.
type Edge struct {
	parent   *Node
	adjacent *Node
	Weight   int
}

// Parent returns the endpoint that owns this edge entry.
func (e *Edge) Parent() *Node { return e.parent }

// Adjacent returns the endpoint opposite the owning node.
func (e *Edge) Adjacent() *Node { return e.adjacent }

// Opposite resolves "the other side" of the edge relative to n.
// It returns nil when n is neither endpoint.
func (e *Edge) Opposite(n *Node) *Node {
	switch n {
	case e.parent:
		return e.adjacent
	case e.adjacent:
		return e.parent
	}
	return nil
}

// String renders the edge as "(u - v, w:N)", the shape used in MST reports.
func (e *Edge) String() string {
	return fmt.Sprintf("(%d - %d, w:%d)", e.parent.ID, e.adjacent.ID, e.Weight)
}

// Graph maps node IDs to nodes and records insertion order so that node
// iteration, and therefore every algorithm's output, is deterministic.
// A Graph is safe for concurrent readers once construction is done; nothing
// in this module mutates a graph after it is built.
type Graph struct {
	nodes map[int]*Node
	order []*Node
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{nodes: make(map[int]*Node)}
}

// Node returns the node with the given ID, or nil if absent.
func (g *Graph) Node(id int) *Node {
	return g.nodes[id]
}

// Has reports whether a node with the given ID exists.
func (g *Graph) Has(id int) bool {
	_, ok := g.nodes[id]
	return ok
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Nodes returns all nodes in insertion order. The caller owns the slice.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.order))
	copy(out, g.order)
	return out
}

// First returns the first node inserted into the graph, or nil when empty.
// Prim uses it as the arbitrary-but-reproducible starting point.
func (g *Graph) First() *Node {
	if len(g.order) == 0 {
		return nil
	}
	return g.order[0]
}

// node returns the node for id, creating it on first reference.
func (g *Graph) node(id int) *Node {
	if n, ok := g.nodes[id]; ok {
		return n
	}
	n := &Node{ID: id}
	g.nodes[id] = n
	g.order = append(g.order, n)
	return n
}

// AddEdge records an undirected edge between from and to, creating either
// node on first reference. Both endpoints receive a reciprocal edge entry.
func (g *Graph) AddEdge(from, to, weight int) {
	u := g.node(from)
	v := g.node(to)
	u.addEdge(&Edge{parent: u, adjacent: v, Weight: weight})
	v.addEdge(&Edge{parent: v, adjacent: u, Weight: weight})
}
