package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/edgewalk/edgewalk/pkg/engine"
	"github.com/edgewalk/edgewalk/pkg/errors"
	"github.com/edgewalk/edgewalk/pkg/graph"
)

// runRequest is the body of POST /v1/run.
type runRequest struct {
	// Edges is the graph as edge-list text, one "from,to[,weight]" per line.
	Edges string `json:"edges"`

	// Operation is one of BFS, DFS, BK, PRIM, DSATUR (case-insensitive).
	Operation string `json:"operation"`

	// Start is the start node for BFS/DFS.
	Start int `json:"start,omitempty"`
}

// runResponse is the body of a successful run.
type runResponse struct {
	ID        string `json:"id"`
	Operation string `json:"operation"`
	Nodes     int    `json:"nodes"`
	Result    string `json:"result"`
}

// errorResponse is the body of any failed request.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleRun executes one algorithm over the posted graph.
func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid JSON body"))
		return
	}

	if err := errors.ValidateEdgeList(req.Edges); err != nil {
		writeError(w, err)
		return
	}

	op, err := engine.ParseOperation(req.Operation)
	if err != nil {
		writeError(w, err)
		return
	}

	g, err := graph.Parse(strings.NewReader(req.Edges))
	if err != nil {
		writeError(w, err)
		return
	}

	runID := uuid.NewString()
	s.logger.Debug("run accepted", "id", runID, "op", op, "nodes", g.Len())

	result, err := s.runner.Execute(r.Context(), g, engine.Request{
		Operation: op,
		Start:     req.Start,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, runResponse{
		ID:        runID,
		Operation: string(op),
		Nodes:     g.Len(),
		Result:    result,
	})
}

// writeJSON serializes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps an error to an HTTP status by its code.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)

	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidOperation,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidStart,
		errors.ErrCodeEmptyGraph:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound, errors.ErrCodeNodeNotFound:
		status = http.StatusNotFound
	}

	writeJSON(w, status, errorResponse{
		Error: errorBody{
			Code:    string(code),
			Message: errors.UserMessage(err),
		},
	})
}
