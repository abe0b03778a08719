// Package mis enumerates maximal independent sets using a Bron–Kerbosch style
// recursive backtracking search.
//
// The search maintains the classic three collections: the independent set
// under construction, a FIFO queue of candidates that may still extend it, and
// the nodes already tried and rejected at the current level. A branch keeps
// expanding only while every excluded node still has an adjacent node among
// the remaining candidates; once some excluded node has lost all its
// candidate-neighbors, nothing recorded down this path could be maximal, so
// the branch is abandoned. Note that adjacency here includes self-adjacency
// (see [github.com/edgewalk/edgewalk/pkg/graph.Node.IsAdjacent]), which is
// exactly what makes the guard behave as the output format expects.
//
// Every maximal set found is reported, not just the largest; callers wanting
// size-based selection filter the result themselves.
//
// The search is worst-case exponential in the number of nodes. No pruning
// beyond the completeness guard is applied, and no internal timeout exists;
// bound execution externally if the input is untrusted.
package mis
