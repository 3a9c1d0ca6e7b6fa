package ast

import "github.com/kolkov/dudecheck/internal/token"

// Program represents a complete dude program: an ordered list of
// top-level statements. Analyzers treat it as read-only.
type Program struct {
	// Source file name (for error messages)
	Filename string

	// Top-level statements in program order.
	Stmts []Stmt

	// Position information for the entire program.
	StartPos token.Position
	EndPos   token.Position
}

// Pos returns the position of the first token in the program.
func (p *Program) Pos() token.Position { return p.StartPos }

// End returns the position after the last token in the program.
func (p *Program) End() token.Position { return p.EndPos }

// CountNodes returns the number of nodes reachable from n, n included.
func CountNodes(n Node) int {
	count := 0
	Walk(n, func(Node) bool {
		count++
		return true
	})
	return count
}

var _ Node = (*Program)(nil)
