// Package engine dispatches algorithm runs and formats their results.
//
// The engine is the one place that knows every operation: it validates the
// requested operation and start node, consults the result cache, invokes the
// algorithm package, and renders the textual result. Both the CLI and the
// HTTP server go through [Runner.Execute] so caching and logging behave the
// same on every surface.
package engine

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/edgewalk/edgewalk/pkg/cache"
	"github.com/edgewalk/edgewalk/pkg/coloring"
	"github.com/edgewalk/edgewalk/pkg/errors"
	"github.com/edgewalk/edgewalk/pkg/graph"
	"github.com/edgewalk/edgewalk/pkg/mis"
	"github.com/edgewalk/edgewalk/pkg/mst"
	"github.com/edgewalk/edgewalk/pkg/observability"
	"github.com/edgewalk/edgewalk/pkg/traverse"
)

// Operation identifies one of the supported graph algorithms.
type Operation string

const (
	// OpBFS is breadth-first traversal.
	OpBFS Operation = "BFS"
	// OpDFS is depth-first traversal.
	OpDFS Operation = "DFS"
	// OpBK enumerates maximal independent sets (Bron–Kerbosch).
	OpBK Operation = "BK"
	// OpPrim computes a minimum spanning tree.
	OpPrim Operation = "PRIM"
	// OpDSatur colors the graph with the DSatur heuristic.
	OpDSatur Operation = "DSATUR"
)

// Operations lists every supported operation in presentation order.
func Operations() []Operation {
	return []Operation{OpBFS, OpDFS, OpBK, OpPrim, OpDSatur}
}

// ParseOperation maps user input to an Operation, case-insensitively.
func ParseOperation(s string) (Operation, error) {
	for _, op := range Operations() {
		if strings.EqualFold(s, string(op)) {
			return op, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidOperation,
		"unknown operation %q (expected one of BFS, DFS, BK, PRIM, DSATUR)", s)
}

// NeedsStart reports whether the operation requires a start node.
func (op Operation) NeedsStart() bool {
	return op == OpBFS || op == OpDFS
}

// Request describes a single algorithm run.
type Request struct {
	// Operation selects the algorithm.
	Operation Operation

	// Start is the start node ID for operations that need one.
	Start int

	// NoCache skips the result cache entirely for this run.
	NoCache bool
}

// Runner executes algorithm requests with result caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely share one Runner.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching via
// [cache.NullCache]; a nil logger falls back to the default logger.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs one algorithm over g and returns its textual result.
//
// Results are cached under a key derived from the graph's canonical edge
// list, the operation, and the start node, so repeated queries on the same
// graph are answered without recomputation.
func (r *Runner) Execute(ctx context.Context, g *graph.Graph, req Request) (string, error) {
	op, err := ParseOperation(string(req.Operation))
	if err != nil {
		return "", err
	}
	if op.NeedsStart() && !g.Has(req.Start) {
		return "", errors.New(errors.ErrCodeNodeNotFound,
			"start node %d not found in graph", req.Start)
	}

	key := cache.ResultKey(cache.Hash([]byte(g.EdgeList())), string(op), req.Start)

	if !req.NoCache {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "result")
			r.Logger.Debug("result cache hit", "op", op, "nodes", g.Len())
			return string(data), nil
		}
		observability.Cache().OnCacheMiss(ctx, "result")
	}

	start := time.Now()
	observability.Engine().OnRunStart(ctx, string(op), g.Len())
	result, err := r.run(g, op, req.Start)
	duration := time.Since(start)
	observability.Engine().OnRunComplete(ctx, string(op), g.Len(), duration, err)
	if err != nil {
		return "", err
	}

	r.Logger.Info("algorithm complete", "op", op, "nodes", g.Len(), "duration", duration)

	if !req.NoCache {
		if err := r.Cache.Set(ctx, key, []byte(result), cache.DefaultTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, "result", len(result))
		}
	}

	return result, nil
}

// run dispatches to the algorithm package and formats its output.
func (r *Runner) run(g *graph.Graph, op Operation, start int) (string, error) {
	switch op {
	case OpBFS:
		return FormatTraversal(traverse.BFS(g, start)), nil
	case OpDFS:
		return FormatTraversal(traverse.DFS(g, start)), nil
	case OpBK:
		return FormatIndependentSets(mis.Find(g)), nil
	case OpPrim:
		res, err := mst.Prim(g)
		if err == mst.ErrEmptyGraph {
			return msgPrimNoStart, nil
		}
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInternal, err, "prim")
		}
		return FormatMST(res), nil
	case OpDSatur:
		return FormatColoring(coloring.DSatur(g)), nil
	default:
		return "", errors.New(errors.ErrCodeInvalidOperation, "unknown operation %q", op)
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
