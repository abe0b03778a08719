package mst

import (
	"container/heap"
	"errors"

	"github.com/edgewalk/edgewalk/pkg/graph"
)

// ErrEmptyGraph indicates that Prim has no node to start from.
var ErrEmptyGraph = errors.New("mst: empty graph")

// Result holds the edges selected by Prim plus coverage accounting.
type Result struct {
	// Edges lists the selected tree edges in selection order.
	Edges []*graph.Edge

	// TotalWeight is the sum of the selected edges' weights.
	TotalWeight int

	// Reached counts the nodes in the tree, including the start node.
	Reached int

	// Total counts all nodes in the graph.
	Total int
}

// Complete reports whether the tree spans the whole graph.
func (r Result) Complete() bool {
	return len(r.Edges) == r.Total-1
}

// Prim computes a minimum spanning tree of g, starting from the
// first-inserted node. On a disconnected graph it returns the spanning tree
// of the start node's component; inspect [Result.Complete] for coverage.
func Prim(g *graph.Graph) (Result, error) {
	start := g.First()
	if start == nil {
		return Result{}, ErrEmptyGraph
	}

	res := Result{Total: g.Len(), Reached: 1}
	visited := map[*graph.Node]bool{start: true}

	frontier := &edgeHeap{}
	heap.Init(frontier)
	for _, e := range start.Edges() {
		heap.Push(frontier, e)
	}

	for frontier.Len() > 0 && len(res.Edges) < res.Total-1 {
		e := heap.Pop(frontier).(*graph.Edge)
		far := e.Adjacent()
		if visited[far] {
			continue // stale entry, endpoint joined the tree meanwhile
		}

		visited[far] = true
		res.Reached++
		res.Edges = append(res.Edges, e)
		res.TotalWeight += e.Weight

		for _, next := range far.Edges() {
			heap.Push(frontier, next)
		}
	}

	return res, nil
}

// edgeHeap implements heap.Interface for a min-heap of *graph.Edge,
// ordered by weight with the adjacent node's ID as tie-break.
type edgeHeap []*graph.Edge

func (h edgeHeap) Len() int { return len(h) }

func (h edgeHeap) Less(i, j int) bool {
	if h[i].Weight != h[j].Weight {
		return h[i].Weight < h[j].Weight
	}
	return h[i].Adjacent().ID < h[j].Adjacent().ID
}

func (h edgeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *edgeHeap) Push(x any) { *h = append(*h, x.(*graph.Edge)) }

func (h *edgeHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}
