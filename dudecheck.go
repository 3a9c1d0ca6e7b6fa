package dudecheck

import (
	"errors"
	"os"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/kolkov/dudecheck/internal/ast"
	"github.com/kolkov/dudecheck/internal/astdoc"
	"github.com/kolkov/dudecheck/internal/parser"
)

// Version is the dudecheck version string.
const Version = "0.1.0"

// Load reads a program from src. The format is one of "auto", "json",
// "yaml" or "notation"; with "auto" it is detected from filename and
// content. filename is only used for detection and in positions.
//
// Example:
//
//	prog, err := dudecheck.Load("prog.dast", []byte(`(return (ident y))`), "auto")
func Load(filename string, src []byte, format string) (*Program, error) {
	f, err := astdoc.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	if f == astdoc.FormatAuto {
		f = astdoc.Detect(filename, src)
	}

	var tree *ast.Program
	if f == astdoc.FormatNotation {
		tree, err = parser.ParseFile(filename, src)
		if err != nil {
			return nil, convertParseError(err)
		}
	} else {
		tree, err = astdoc.Decode(filename, src, f)
		if err != nil {
			return nil, convertDecodeError(err)
		}
	}

	return &Program{tree: tree, format: f}, nil
}

// LoadFile reads and loads the program stored at path.
func LoadFile(path, format string) (*Program, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "load %s", path)
	}
	return Load(path, src, format)
}

// MustLoad is like Load for notation source but panics on error.
// It simplifies initialization of global programs in tests and tools.
//
// Example:
//
//	var sample = dudecheck.MustLoad(`(assign x 0) (return (ident x))`)
func MustLoad(src string) *Program {
	prog, err := Load("", []byte(src), "notation")
	if err != nil {
		panic(err)
	}
	return prog
}

// convertParseError maps parser errors to the public type, keeping the
// first error of a list.
func convertParseError(err error) error {
	var pe *parser.ParseError
	if errors.As(err, &pe) {
		return &ParseError{Line: pe.Pos.Line, Column: pe.Pos.Column, Message: pe.Message}
	}
	var el parser.ErrorList
	if errors.As(err, &el) && len(el) > 0 {
		return &ParseError{Line: el[0].Pos.Line, Column: el[0].Pos.Column, Message: el[0].Message}
	}
	return &ParseError{Message: err.Error()}
}

// convertDecodeError maps every document problem to a DecodeError and
// combines them. Syntax errors of the document encoding are reported
// at the root path.
func convertDecodeError(err error) error {
	var out error
	for _, e := range astdoc.Errors(err) {
		var de *astdoc.Error
		if errors.As(e, &de) {
			out = multierr.Append(out, &DecodeError{Path: de.Path, Line: de.Pos.Line, Message: de.Message})
			continue
		}
		out = multierr.Append(out, &DecodeError{Path: "$", Message: e.Error()})
	}
	return out
}

// Grammar returns the EBNF grammar of the textual notation.
func Grammar() string {
	return parser.Grammar()
}
