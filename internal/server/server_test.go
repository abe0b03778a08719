package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgewalk/edgewalk/pkg/engine"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := log.New(io.Discard)
	return New(Config{}, engine.NewRunner(nil, logger), logger)
}

func postRun(t *testing.T, s *Server, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/run", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRunBFS(t *testing.T) {
	s := newTestServer(t)

	rec := postRun(t, s, runRequest{
		Edges:     "1,2\n1,4\n2,3\n2,5\n4,5\n4,6\n5,7\n7,8\n7,9\n8,9\n",
		Operation: "BFS",
		Start:     1,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp runResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "BFS", resp.Operation)
	assert.Equal(t, 9, resp.Nodes)
	assert.Equal(t, "1 -> 2 -> 4 -> 3 -> 5 -> 6 -> 7 -> 8 -> 9", resp.Result)
	assert.NotEmpty(t, resp.ID)
}

func TestRunOperationIsCaseInsensitive(t *testing.T) {
	s := newTestServer(t)

	rec := postRun(t, s, runRequest{Edges: "1,2\n", Operation: "prim"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp runResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "PRIM", resp.Operation)
	assert.Contains(t, resp.Result, "Total Weight: 1")
}

func TestRunUnknownOperation(t *testing.T) {
	s := newTestServer(t)

	rec := postRun(t, s, runRequest{Edges: "1,2\n", Operation: "DIJKSTRA"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_OPERATION", resp.Error.Code)
}

func TestRunAbsentStartNode(t *testing.T) {
	s := newTestServer(t)

	rec := postRun(t, s, runRequest{Edges: "1,2\n", Operation: "BFS", Start: 42})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "NODE_NOT_FOUND", resp.Error.Code)
}

func TestRunMalformedEdgeList(t *testing.T) {
	s := newTestServer(t)

	rec := postRun(t, s, runRequest{Edges: "1,2\nnot-an-edge\n", Operation: "BFS", Start: 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_INPUT", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "line 2")
}

func TestRunEmptyEdgeList(t *testing.T) {
	s := newTestServer(t)

	rec := postRun(t, s, runRequest{Edges: "", Operation: "BK"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRunInvalidJSON(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/run", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRunIDsAreUnique(t *testing.T) {
	s := newTestServer(t)

	ids := map[string]bool{}
	for i := 0; i < 3; i++ {
		rec := postRun(t, s, runRequest{Edges: "1,2\n", Operation: "DSATUR"})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp runResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, ids[resp.ID], "run ID reused: %s", resp.ID)
		ids[resp.ID] = true
	}
}
