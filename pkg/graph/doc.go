// Package graph provides the in-memory model every edgewalk algorithm reads:
// an undirected, optionally weighted graph built from a comma-separated edge list.
//
// # Model
//
// A [Graph] owns its nodes in an ID-keyed arena and remembers insertion order,
// so iteration is deterministic across runs. Each [Node] holds an
// insertion-ordered collection of incident [Edge] values; edges carry pointers
// back into the arena but never own their endpoints, which sidesteps the
// node↔node reference cycles an ownership-based design would create.
//
// Edge identity within a node's edge set is the pair (adjacent endpoint,
// weight): re-adding an identical edge is a no-op, while a parallel edge with a
// different weight is stored alongside the original. Algorithms assume
// simple-graph semantics; the storage merely tolerates the extra entries.
//
// # Adjacency
//
// [Node.IsAdjacent] treats every node as adjacent to itself. This is not an
// accident: the Bron–Kerbosch completeness guard in package mis relies on
// self-adjacency when it tests excluded nodes against the candidate queue, and
// which sets get reported as maximal depends on it.
//
// # Input format
//
// [Parse] reads one edge per line as "from,to" or "from,to,weight", skipping
// blank lines and "//" comments:
//
//	// a small triangle with one weighted edge
//	1,2
//	2,3,4
//	3,1
//
// Malformed lines abort parsing with a positional error before the offending
// edge mutates the graph.
package graph
