package ast

// -----------------------------------------------------------------------------
// Atoms
// -----------------------------------------------------------------------------

// EmptyExpr is the placeholder for an absent expression.
// Loaders use it for the condition of an omitted elif clause.
type EmptyExpr struct {
	BaseExpr
}

// NullLit represents the null literal.
type NullLit struct {
	BaseExpr
}

// NumLit represents a numeric literal.
// Examples: 42, 3.14, -1
type NumLit struct {
	BaseExpr
	Value float64 // Parsed numeric value
	Raw   string  // Original source text
}

// BoolLit represents true or false.
type BoolLit struct {
	BaseExpr
	Value bool
}

// StrLit represents a string literal.
type StrLit struct {
	BaseExpr
	Value string // Unescaped string value
}

// CharLit represents a character literal.
type CharLit struct {
	BaseExpr
	Value string // Unescaped character (one rune)
}

// OperatorLit represents an operator token appearing as an operand,
// e.g. inside a list of condition parts.
type OperatorLit struct {
	BaseExpr
	Op string
}

// -----------------------------------------------------------------------------
// References
// -----------------------------------------------------------------------------

// Ident represents an identifier. As an expression it is a name
// reference that must resolve; it also names declaration targets.
type Ident struct {
	BaseExpr
	Name string
}

// -----------------------------------------------------------------------------
// Composites
// -----------------------------------------------------------------------------

// CondExpr represents a binary condition.
// Example: x < 10
type CondExpr struct {
	BaseExpr
	Left  Expr
	Op    string // Operator text, may be empty
	Right Expr
}

// NestedExpr represents a parenthesized expression.
type NestedExpr struct {
	BaseExpr
	Expr Expr // Inner expression
}

// ListExpr represents a list literal.
type ListExpr struct {
	BaseExpr
	Elems []Expr
}

// SeqExpr represents a range construct start..stop by step.
type SeqExpr struct {
	BaseExpr
	Start Expr
	Stop  Expr
	Step  Expr
}

// UnknownExpr stands for an expression kind this package does not model.
type UnknownExpr struct {
	BaseExpr
	Kind string // Kind name as found in the source document
}

// -----------------------------------------------------------------------------
// Compile-time checks
// -----------------------------------------------------------------------------

// Ensure all expression types implement Expr interface.
var (
	_ Expr = (*EmptyExpr)(nil)
	_ Expr = (*NullLit)(nil)
	_ Expr = (*NumLit)(nil)
	_ Expr = (*BoolLit)(nil)
	_ Expr = (*StrLit)(nil)
	_ Expr = (*CharLit)(nil)
	_ Expr = (*OperatorLit)(nil)
	_ Expr = (*Ident)(nil)
	_ Expr = (*CondExpr)(nil)
	_ Expr = (*NestedExpr)(nil)
	_ Expr = (*ListExpr)(nil)
	_ Expr = (*SeqExpr)(nil)
	_ Expr = (*UnknownExpr)(nil)
)
