// Package ast defines the abstract syntax tree of dude programs as seen by
// the scope checker.
//
// The node set is closed: loaders map every kind they do not model onto
// UnknownExpr or UnknownStmt, which analyzers accept without inspection.
//
// Node hierarchy:
//
//	Node (interface)
//	├── Expr (interface) - expressions
//	│   ├── EmptyExpr, NullLit, NumLit, BoolLit - atoms
//	│   ├── StrLit, CharLit, OperatorLit - atoms
//	│   ├── Ident - name reference
//	│   ├── CondExpr, NestedExpr, ListExpr, SeqExpr - composites
//	│   └── UnknownExpr - unmodeled kind
//	├── Stmt (interface) - statements
//	│   ├── AssignStmt, ReturnStmt, StructStmt - simple
//	│   ├── WhileStmt, ForStmt - loops
//	│   ├── FuncStmt, IfStmt - compound
//	│   └── UnknownStmt - unmodeled kind
//	└── Program - top-level statement list
package ast

import "github.com/kolkov/dudecheck/internal/token"

// Node is the interface implemented by all AST nodes.
type Node interface {
	// Pos returns the position of the first character belonging to this node.
	Pos() token.Position

	// End returns the position of the first character immediately after this node.
	End() token.Position
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	exprNode() // marker method to prevent external implementations
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	stmtNode() // marker method to prevent external implementations
}

// BaseExpr provides common fields for all expression nodes.
// Embedded in concrete expression types for position tracking.
type BaseExpr struct {
	StartPos token.Position // Position of first token
	EndPos   token.Position // Position after last token
}

func (b *BaseExpr) Pos() token.Position { return b.StartPos }
func (b *BaseExpr) End() token.Position { return b.EndPos }
func (b *BaseExpr) exprNode()           {}

// BaseStmt provides common fields for all statement nodes.
// Embedded in concrete statement types for position tracking.
type BaseStmt struct {
	StartPos token.Position // Position of first token
	EndPos   token.Position // Position after last token
}

func (b *BaseStmt) Pos() token.Position { return b.StartPos }
func (b *BaseStmt) End() token.Position { return b.EndPos }
func (b *BaseStmt) stmtNode()           {}

// IsAtom reports whether e carries no scoping obligation.
func IsAtom(e Expr) bool {
	switch e.(type) {
	case *EmptyExpr, *NullLit, *NumLit, *BoolLit, *StrLit, *CharLit, *OperatorLit:
		return true
	default:
		return false
	}
}

// -----------------------------------------------------------------------------
// Constructor helpers
// -----------------------------------------------------------------------------

// MakeBaseExpr creates a BaseExpr with the given positions.
func MakeBaseExpr(start, end token.Position) BaseExpr {
	return BaseExpr{StartPos: start, EndPos: end}
}

// MakeBaseStmt creates a BaseStmt with the given positions.
func MakeBaseStmt(start, end token.Position) BaseStmt {
	return BaseStmt{StartPos: start, EndPos: end}
}
