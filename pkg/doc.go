// Package pkg provides the core libraries for edgewalk graph analysis.
//
// # Overview
//
// Edgewalk parses undirected weighted graphs from comma-separated edge lists
// and runs classic algorithms over them. The pkg directory is organized by
// concern:
//
//  1. [graph] - The graph model and edge-list parser
//  2. [traverse], [mis], [mst], [coloring] - The algorithms
//  3. [engine] - Operation dispatch, result formatting, result caching
//  4. [cache] - Cache backends (file, redis, null)
//  5. [render] - Graphviz DOT/SVG/PNG drawing
//  6. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The typical data flow through edgewalk:
//
//	edge-list text (file or HTTP body)
//	         ↓
//	    [graph] package (parse into nodes and edges)
//	         ↓
//	    [engine] package (dispatch, cache lookup)
//	         ↓
//	    [traverse] / [mis] / [mst] / [coloring]
//	         ↓
//	    textual result (plus optional [render] drawing)
//
// # Quick Start
//
//	g, err := graph.Parse(strings.NewReader("1,2\n2,3,5\n"))
//	if err != nil {
//	    return err
//	}
//	runner := engine.NewRunner(nil, nil)
//	result, err := runner.Execute(ctx, g, engine.Request{
//	    Operation: engine.OpBFS,
//	    Start:     1,
//	})
package pkg
