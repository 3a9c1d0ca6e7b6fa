// Package parser reads the textual AST notation into an *ast.Program.
package parser

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"

	"github.com/kolkov/dudecheck/internal/lexer"
	"github.com/kolkov/dudecheck/internal/token"
)

// ParseError represents a syntax error encountered during parsing.
// It implements the error interface and includes source position information.
type ParseError struct {
	Pos     token.Position // Position where the error occurred
	Message string         // Human-readable error message
}

// Error returns a formatted error message with position information.
func (e *ParseError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return e.Message
}

// ErrorList is a list of parse errors.
type ErrorList []*ParseError

// Error returns a combined error message for all errors.
func (el ErrorList) Error() string {
	switch len(el) {
	case 0:
		return "no errors"
	case 1:
		return el[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more errors)", el[0].Error(), len(el)-1)
	}
}

// Add appends an error to the list.
func (el *ErrorList) Add(pos token.Position, format string, args ...any) {
	*el = append(*el, errorf(pos, format, args...))
}

// Err returns an error if there are any errors, nil otherwise.
func (el ErrorList) Err() error {
	if len(el) == 0 {
		return nil
	}
	return el
}

// errorf creates a ParseError at the given position with formatted message.
func errorf(pos token.Position, format string, args ...any) *ParseError {
	return &ParseError{
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	}
}

// fromParticiple converts a grammar or lexer failure into a ParseError.
func fromParticiple(err error) *ParseError {
	var perr participle.Error
	if errors.As(err, &perr) {
		return &ParseError{
			Pos:     lexer.Position(perr.Position()),
			Message: perr.Message(),
		}
	}
	return &ParseError{Message: err.Error()}
}
