package graph

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/edgewalk/edgewalk/pkg/errors"
)

// ParseOptions configures edge-list parsing.
type ParseOptions struct {
	// DefaultWeight is assigned to two-field lines. Zero means DefaultWeight.
	DefaultWeight int
}

// Parse reads an edge list and builds the graph, one edge per line:
//
//	from,to
//	from,to,weight
//
// Blank lines and lines starting with "//" are skipped. A malformed line
// aborts parsing with an INVALID_INPUT error naming the line number, before
// that line's edge touches the graph.
func Parse(r io.Reader) (*Graph, error) {
	return ParseWith(r, ParseOptions{})
}

// ParseWith is Parse with explicit options.
func ParseWith(r io.Reader, opts ParseOptions) (*Graph, error) {
	defWeight := opts.DefaultWeight
	if defWeight == 0 {
		defWeight = DefaultWeight
	}

	g := New()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		from, to, weight, err := parseEdgeLine(line, lineNo, defWeight)
		if err != nil {
			return nil, err
		}
		g.AddEdge(from, to, weight)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read edge list")
	}

	return g, nil
}

// ParseFile reads an edge-list file from disk and builds the graph.
func ParseFile(path string) (*Graph, error) {
	return ParseFileWith(path, ParseOptions{})
}

// ParseFileWith is ParseFile with explicit parse options.
func ParseFileWith(path string, opts ParseOptions) (*Graph, error) {
	if err := errors.ValidateGraphFile(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "graph file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	return ParseWith(f, opts)
}

// parseEdgeLine splits one non-blank line into its edge components.
func parseEdgeLine(line string, lineNo, defWeight int) (from, to, weight int, err error) {
	fields := strings.Split(line, ",")
	if len(fields) < 2 || len(fields) > 3 {
		return 0, 0, 0, errors.New(errors.ErrCodeInvalidInput,
			"line %d: expected 2 or 3 comma-separated fields, got %d", lineNo, len(fields))
	}

	from, err = parseIntField(fields[0], "from", lineNo)
	if err != nil {
		return 0, 0, 0, err
	}
	to, err = parseIntField(fields[1], "to", lineNo)
	if err != nil {
		return 0, 0, 0, err
	}

	weight = defWeight
	if len(fields) == 3 {
		weight, err = parseIntField(fields[2], "weight", lineNo)
		if err != nil {
			return 0, 0, 0, err
		}
	}
	return from, to, weight, nil
}

func parseIntField(field, name string, lineNo int) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput,
			"line %d: %s field %q is not an integer", lineNo, name, strings.TrimSpace(field))
	}
	return v, nil
}
