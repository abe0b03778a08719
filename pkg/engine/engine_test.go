package engine

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgewalk/edgewalk/pkg/cache"
	"github.com/edgewalk/edgewalk/pkg/errors"
	"github.com/edgewalk/edgewalk/pkg/graph"
)

// specimen is the reference graph shared by the dispatcher tests.
const specimen = `1,2
1,4
2,3
2,5
4,5
4,6
5,7
7,8
7,9
8,9
`

func specimenGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.Parse(strings.NewReader(specimen))
	require.NoError(t, err)
	return g
}

// spyCache records Get/Set traffic on top of an in-memory store.
type spyCache struct {
	store map[string][]byte
	gets  int
	sets  int
}

func newSpyCache() *spyCache {
	return &spyCache{store: make(map[string][]byte)}
}

func (c *spyCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.gets++
	data, ok := c.store[key]
	return data, ok, nil
}

func (c *spyCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.sets++
	c.store[key] = data
	return nil
}

func (c *spyCache) Delete(_ context.Context, key string) error {
	delete(c.store, key)
	return nil
}

func (c *spyCache) Close() error { return nil }

func TestParseOperation(t *testing.T) {
	for _, input := range []string{"BFS", "bfs", "Bfs"} {
		op, err := ParseOperation(input)
		require.NoError(t, err)
		assert.Equal(t, OpBFS, op)
	}

	_, err := ParseOperation("DIJKSTRA")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidOperation))
}

func TestNeedsStart(t *testing.T) {
	assert.True(t, OpBFS.NeedsStart())
	assert.True(t, OpDFS.NeedsStart())
	assert.False(t, OpBK.NeedsStart())
	assert.False(t, OpPrim.NeedsStart())
	assert.False(t, OpDSatur.NeedsStart())
}

func TestExecuteTraversals(t *testing.T) {
	r := NewRunner(nil, nil)
	g := specimenGraph(t)
	ctx := context.Background()

	bfs, err := r.Execute(ctx, g, Request{Operation: OpBFS, Start: 1})
	require.NoError(t, err)
	assert.Equal(t, "1 -> 2 -> 4 -> 3 -> 5 -> 6 -> 7 -> 8 -> 9", bfs)

	dfs, err := r.Execute(ctx, g, Request{Operation: OpDFS, Start: 1})
	require.NoError(t, err)
	assert.Equal(t, "1 -> 2 -> 3 -> 5 -> 4 -> 6 -> 7 -> 8 -> 9", dfs)
}

func TestExecuteRejectsAbsentStart(t *testing.T) {
	r := NewRunner(nil, nil)
	g := specimenGraph(t)

	_, err := r.Execute(context.Background(), g, Request{Operation: OpBFS, Start: 42})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeNodeNotFound))
}

func TestExecuteRejectsUnknownOperation(t *testing.T) {
	r := NewRunner(nil, nil)
	g := specimenGraph(t)

	_, err := r.Execute(context.Background(), g, Request{Operation: "SHORTEST_PATH"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidOperation))
}

func TestExecuteIndependentSets(t *testing.T) {
	r := NewRunner(nil, nil)
	g, err := graph.Parse(strings.NewReader("1,2\n2,3\n"))
	require.NoError(t, err)

	got, err := r.Execute(context.Background(), g, Request{Operation: OpBK})
	require.NoError(t, err)
	// Path 1-2-3: the maximal independent sets are {1,3} and {2},
	// listed smallest first.
	assert.Equal(t, "All maximum independent sets (2):\n[2];\n[1, 3]", got)
}

func TestExecutePrim(t *testing.T) {
	r := NewRunner(nil, nil)
	g, err := graph.Parse(strings.NewReader("1,6,3\n6,7,9\n7,2,5\n2,5,10\n6,4,20\n4,3,18\n"))
	require.NoError(t, err)

	got, err := r.Execute(context.Background(), g, Request{Operation: OpPrim})
	require.NoError(t, err)

	want := "Minimum Spanning Tree (Prim's Algorithm):\n" +
		"Edges:\n" +
		"(1 - 6, w:3)\n" +
		"(6 - 7, w:9)\n" +
		"(7 - 2, w:5)\n" +
		"(2 - 5, w:10)\n" +
		"(6 - 4, w:20)\n" +
		"(4 - 3, w:18)\n" +
		"Total Weight: 65"
	assert.Equal(t, want, got)
}

func TestExecutePrimEmptyGraph(t *testing.T) {
	r := NewRunner(nil, nil)

	got, err := r.Execute(context.Background(), graph.New(), Request{Operation: OpPrim})
	require.NoError(t, err)
	assert.Equal(t, "Cannot find a starting node for Prim's algorithm", got)
}

func TestExecuteColoring(t *testing.T) {
	r := NewRunner(nil, nil)
	g := specimenGraph(t)

	got, err := r.Execute(context.Background(), g, Request{Operation: OpDSatur})
	require.NoError(t, err)

	want := "Graph Coloring Result (DSatur Algorithm):\n" +
		"Node 1: Color 2\n" +
		"Node 2: Color 1\n" +
		"Node 3: Color 2\n" +
		"Node 4: Color 1\n" +
		"Node 5: Color 2\n" +
		"Node 6: Color 2\n" +
		"Node 7: Color 1\n" +
		"Node 8: Color 2\n" +
		"Node 9: Color 3\n" +
		"\nTotal colors used: 3"
	assert.Equal(t, want, got)
}

func TestExecuteUsesCache(t *testing.T) {
	spy := newSpyCache()
	r := NewRunner(spy, nil)
	g := specimenGraph(t)
	ctx := context.Background()

	first, err := r.Execute(ctx, g, Request{Operation: OpBFS, Start: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, spy.sets, "first run should write the cache")

	second, err := r.Execute(ctx, g, Request{Operation: OpBFS, Start: 1})
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, spy.sets, "second run should be served from cache")
	assert.Equal(t, 2, spy.gets)
}

func TestExecuteDistinctCacheKeys(t *testing.T) {
	spy := newSpyCache()
	r := NewRunner(spy, nil)
	g := specimenGraph(t)
	ctx := context.Background()

	_, err := r.Execute(ctx, g, Request{Operation: OpBFS, Start: 1})
	require.NoError(t, err)
	_, err = r.Execute(ctx, g, Request{Operation: OpBFS, Start: 2})
	require.NoError(t, err)
	_, err = r.Execute(ctx, g, Request{Operation: OpDFS, Start: 1})
	require.NoError(t, err)

	assert.Equal(t, 3, spy.sets, "each (op, start) pair gets its own entry")
}

func TestExecuteNoCacheSkipsCache(t *testing.T) {
	spy := newSpyCache()
	r := NewRunner(spy, nil)
	g := specimenGraph(t)

	_, err := r.Execute(context.Background(), g, Request{Operation: OpBFS, Start: 1, NoCache: true})
	require.NoError(t, err)
	assert.Zero(t, spy.gets)
	assert.Zero(t, spy.sets)
}

func TestCacheEntryIsResultText(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	r := NewRunner(c, nil)
	g := specimenGraph(t)
	ctx := context.Background()

	want, err := r.Execute(ctx, g, Request{Operation: OpDSatur})
	require.NoError(t, err)

	key := cache.ResultKey(cache.Hash([]byte(g.EdgeList())), string(OpDSatur), 0)
	data, hit, err := c.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, want, string(data))
}
