package ast

// -----------------------------------------------------------------------------
// Simple statements
// -----------------------------------------------------------------------------

// AssignStmt represents an assignment. It declares Var.
// Example: x = y + 1
type AssignStmt struct {
	BaseStmt
	Var   *Ident // Target
	Value Expr   // Right-hand side
}

// ReturnStmt represents a return statement.
type ReturnStmt struct {
	BaseStmt
	Value Expr
}

// StructStmt represents a structure declaration. Its members are not
// relevant to scoping and are not modeled.
type StructStmt struct {
	BaseStmt
	Name string
}

// -----------------------------------------------------------------------------
// Loops
// -----------------------------------------------------------------------------

// WhileStmt represents a while loop.
type WhileStmt struct {
	BaseStmt
	Cond Expr
	Body []Stmt
}

// ForStmt represents a for loop over a sequence. It declares Index.
// Example: for i in 0..10 { body }
type ForStmt struct {
	BaseStmt
	Index *Ident // Loop index
	Seq   Expr   // Iterated expression, usually *SeqExpr
	Body  []Stmt
}

// -----------------------------------------------------------------------------
// Compound statements
// -----------------------------------------------------------------------------

// FuncStmt represents a function declaration. It declares each parameter.
type FuncStmt struct {
	BaseStmt
	Name   string
	Params []*Ident
	Body   []Stmt
}

// IfStmt represents an if/elif/else statement. All three groups are always
// present: an absent elif clause has an *EmptyExpr condition and an empty
// body, an absent else clause has an empty body.
type IfStmt struct {
	BaseStmt
	IfCond   Expr
	ElifCond Expr
	IfBody   []Stmt
	ElifBody []Stmt
	ElseBody []Stmt
}

// UnknownStmt stands for a statement kind this package does not model.
type UnknownStmt struct {
	BaseStmt
	Kind string
}

// -----------------------------------------------------------------------------
// Compile-time checks
// -----------------------------------------------------------------------------

// Ensure all statement types implement Stmt interface.
var (
	_ Stmt = (*AssignStmt)(nil)
	_ Stmt = (*ReturnStmt)(nil)
	_ Stmt = (*StructStmt)(nil)
	_ Stmt = (*WhileStmt)(nil)
	_ Stmt = (*ForStmt)(nil)
	_ Stmt = (*FuncStmt)(nil)
	_ Stmt = (*IfStmt)(nil)
	_ Stmt = (*UnknownStmt)(nil)
)
