// Package semantic implements the scope checker for dude programs.
//
// The checker walks a program in order with a single flat Scope and
// reports at most one Diagnostic:
//   - UseBeforeDefinition: an identifier is referenced before any
//     assignment, for-loop index or function parameter declared it.
//     Fatal: the run fails.
//   - ShadowingOuterScope: a for-loop index or function parameter reuses a
//     declared name. Advisory: the run succeeds, but analysis stops there.
//
// Blocks and function bodies do not open a new scope; a name declared
// anywhere stays visible to everything after it in program order.
package semantic

import (
	"fmt"

	"github.com/kolkov/dudecheck/internal/token"
)

// Severity classifies a diagnostic.
type Severity int

const (
	SeverityError   Severity = iota // Halts analysis, run fails
	SeverityWarning                 // Halts analysis, run still succeeds
)

// String returns a human-readable name for the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Kind identifies what a diagnostic is about.
type Kind int

const (
	KindUseBeforeDefinition Kind = iota
	KindShadowingOuterScope
	KindMalformedNode
)

// String returns the diagnostic kind name.
func (k Kind) String() string {
	switch k {
	case KindUseBeforeDefinition:
		return "UseBeforeDefinition"
	case KindShadowingOuterScope:
		return "ShadowingOuterScope"
	case KindMalformedNode:
		return "MalformedNode"
	default:
		return "unknown"
	}
}

// Diagnostic is a single finding of the scope checker.
type Diagnostic struct {
	Severity Severity
	Kind     Kind
	Name     string         // Offending variable name (empty for MalformedNode)
	Pos      token.Position // Position of the offending node, if known
	Message  string         // Human-readable text, printed verbatim by the driver
}

// Error implements the error interface so fatal diagnostics can travel as
// errors through callers that want them to.
func (d *Diagnostic) Error() string {
	return d.Message
}

// String returns the message prefixed by the position when one is known.
func (d *Diagnostic) String() string {
	if d.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", d.Pos, d.Message)
	}
	return d.Message
}

// Outcome returns how the driver must react to d.
func (d *Diagnostic) Outcome() Outcome {
	switch {
	case d == nil:
		return Continue
	case d.Severity == SeverityWarning:
		return HaltSuccess
	default:
		return HaltFailure
	}
}

// Message formats, kept identical to what users of the checker expect.
const (
	msgUseBeforeDefinition = "Variable %q used before definition."
	msgShadowingOuterScope = "Variable %q shadows variable from outer scope."
	msgMalformedNode       = "Malformed AST: %s."
)

// UseBeforeDefinition creates the diagnostic for an unresolved reference.
func UseBeforeDefinition(name string, pos token.Position) *Diagnostic {
	return &Diagnostic{
		Severity: SeverityError,
		Kind:     KindUseBeforeDefinition,
		Name:     name,
		Pos:      pos,
		Message:  fmt.Sprintf(msgUseBeforeDefinition, name),
	}
}

// ShadowingOuterScope creates the diagnostic for a redeclared loop index
// or function parameter.
func ShadowingOuterScope(name string, pos token.Position) *Diagnostic {
	return &Diagnostic{
		Severity: SeverityWarning,
		Kind:     KindShadowingOuterScope,
		Name:     name,
		Pos:      pos,
		Message:  fmt.Sprintf(msgShadowingOuterScope, name),
	}
}

// malformed creates the diagnostic for a violated AST precondition.
func malformed(pos token.Position, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Severity: SeverityError,
		Kind:     KindMalformedNode,
		Pos:      pos,
		Message:  fmt.Sprintf(msgMalformedNode, fmt.Sprintf(format, args...)),
	}
}
