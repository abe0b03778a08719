package errors

import (
	"strings"
	"unicode"
)

// MaxEdgeListBytes bounds the size of an edge list accepted over the API.
// The algorithms are textbook variants, not built for large graphs, and a
// megabyte of edge lines is far beyond anything they handle gracefully.
const MaxEdgeListBytes = 1 << 20

// ValidateEdgeList validates raw edge-list text before it reaches the parser.
// It rejects input that could not possibly be a well-formed edge list, keeping
// the parser's error reporting focused on per-line format problems.
//
// The validation rules are intentionally conservative:
//   - No empty input
//   - Maximum size of MaxEdgeListBytes
//   - No control characters other than newline, carriage return, and tab
func ValidateEdgeList(text string) error {
	if strings.TrimSpace(text) == "" {
		return New(ErrCodeInvalidInput, "edge list cannot be empty")
	}

	if len(text) > MaxEdgeListBytes {
		return New(ErrCodeInvalidInput, "edge list too large (max %d bytes)", MaxEdgeListBytes)
	}

	for _, r := range text {
		if r == '\n' || r == '\r' || r == '\t' {
			continue
		}
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "edge list contains control characters")
		}
	}

	return nil
}

// ValidateGraphFile validates a user-supplied graph file path.
// It ensures the path is non-empty and free of null bytes; existence checks
// are left to the caller so missing files surface as ErrCodeFileNotFound with
// the underlying cause attached.
func ValidateGraphFile(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "graph file path cannot be empty")
	}

	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidInput, "graph file path contains invalid characters")
	}

	return nil
}
