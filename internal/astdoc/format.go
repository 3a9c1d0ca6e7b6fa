// Package astdoc loads and stores dude programs as JSON or YAML documents.
//
// A document is an object with a "statements" list (a bare list is also
// accepted). Every node is an object whose "type" field names its kind:
//
//	{"statements": [
//	  {"type": "Assignment", "var": "x", "expression": {"type": "Number", "value": 0}},
//	  {"type": "Return", "expression": {"type": "Identifier", "name": "x", "line": 2}}
//	]}
//
// Unrecognized kinds are kept as ast.UnknownStmt / ast.UnknownExpr.
package astdoc

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a program representation.
type Format int

const (
	FormatAuto     Format = iota // Detect from file name and content
	FormatJSON                   // JSON document
	FormatYAML                   // YAML document
	FormatNotation               // Textual s-expression notation
)

// String returns the format name as accepted by ParseFormat.
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatNotation:
		return "notation"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "notation", "dast":
		return FormatNotation, nil
	default:
		return FormatAuto, fmt.Errorf("unknown format %q", s)
	}
}

// Detect picks the format of a source by file extension, falling back to
// sniffing the content: '{' or '[' first means JSON, a leading '(' or ';'
// means notation, anything else is treated as YAML.
func Detect(filename string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".dast":
		return FormatNotation
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return FormatNotation
	}
	switch trimmed[0] {
	case '{', '[':
		return FormatJSON
	case '(', ';':
		return FormatNotation
	default:
		return FormatYAML
	}
}
