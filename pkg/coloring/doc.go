// Package coloring assigns colors to graph nodes with the DSatur heuristic.
//
// Colors are positive integers starting at 1 with no upper bound. Each round
// picks the uncolored node with the highest saturation degree — the number of
// distinct colors among its already-colored neighbors — breaking ties first
// by degree within the still-uncolored subgraph, then by smallest node ID.
// The picked node receives the smallest color unused by its colored
// neighbors.
//
// DSatur is a heuristic: it produces a valid coloring, not necessarily the
// chromatic number. The tie-break order above is part of the contract, since
// two valid colorings are not interchangeable for comparing output.
package coloring
