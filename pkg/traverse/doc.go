// Package traverse implements breadth-first and depth-first traversal over an
// edgewalk graph.
//
// Both traversals take a graph and a start node ID and return the visited
// nodes in order. A start ID absent from the graph yields an empty sequence
// rather than an error; the caller decides whether that is worth reporting.
//
// Neighbor visitation follows edge-insertion order in both algorithms, which
// is what makes the output deterministic for a given input file. BFS marks
// nodes visited at enqueue time, not dequeue time — moving the mark changes
// the emitted order on graphs with cross edges.
//
// DFS recurses; its stack depth grows with the longest simple path from the
// start node. That is fine for the graph sizes this tool targets but is a
// known limitation on pathological inputs, not a stack-safe design.
package traverse
