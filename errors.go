package dudecheck

import (
	"fmt"
)

// ParseError represents a syntax error in notation source.
type ParseError struct {
	Line    int    // 1-based line number
	Column  int    // 1-based column number
	Message string // Error description
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Column, e.Message)
}

// DecodeError represents a structural problem in a JSON or YAML document.
type DecodeError struct {
	Path    string // Location of the offending node, e.g. statements[2].body
	Line    int    // Line of the node when the document records it, else 0
	Message string // Error description
}

func (e *DecodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("decode error at %s (line %d): %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("decode error at %s: %s", e.Path, e.Message)
}
