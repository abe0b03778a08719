// Package mst grows a minimum spanning tree with Prim's algorithm.
//
// The tree starts from the graph's first-inserted node and expands one edge at
// a time, always taking the cheapest frontier edge whose far endpoint is not
// yet in the tree. The frontier is a min-heap ordered by weight, with the far
// endpoint's ID as tie-break so runs are reproducible; any valid MST is
// acceptable when weights tie, this one just always picks the same.
//
// Edges incident to a newly reached node are pushed wholesale, including
// edges leading back into the tree. Those stale entries are discarded when
// popped instead of being filtered eagerly; on the small graphs this tool
// targets the extra heap traffic is cheaper than the bookkeeping.
//
// A disconnected graph is not an error: the result reports how many nodes the
// tree reached alongside the edges it collected, and [Result.Complete] tells
// the two cases apart.
package mst
