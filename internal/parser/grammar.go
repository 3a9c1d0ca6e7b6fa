package parser

import plexer "github.com/alecthomas/participle/v2/lexer"

// Grammar of the notation. Every statement and compound expression is a
// parenthesized form whose head names the node kind; statement bodies are
// bracketed lists. Forms with an unrecognized head are kept as unknown
// nodes so that newer producers remain loadable.

type file struct {
	Stmts []*stmtNode `parser:"@@*"`
}

type stmtNode struct {
	Pos    plexer.Position
	EndPos plexer.Position

	Form *stmtForm `parser:"'(' @@ ')'"`
}

type stmtForm struct {
	Assign  *assignForm  `parser:"  'assign' @@"`
	Return  *returnForm  `parser:"| @@"`
	Struct  *structForm  `parser:"| 'struct' @@"`
	While   *whileForm   `parser:"| 'while' @@"`
	For     *forForm     `parser:"| 'for' @@"`
	Func    *funcForm    `parser:"| 'func' @@"`
	If      *ifForm      `parser:"| 'if' @@"`
	Unknown *unknownForm `parser:"| @@"`
}

type assignForm struct {
	Name  *identTok `parser:"@@"`
	Value *exprNode `parser:"@@"`
}

type returnForm struct {
	Keyword bool      `parser:"@'return'"`
	Value   *exprNode `parser:"@@?"`
}

type structForm struct {
	Name    string     `parser:"@Ident"`
	Members []*rawNode `parser:"@@*"`
}

type whileForm struct {
	Cond *exprNode `parser:"@@"`
	Body *bodyForm `parser:"@@"`
}

type forForm struct {
	Index *identTok `parser:"@@"`
	Seq   *exprNode `parser:"@@"`
	Body  *bodyForm `parser:"@@"`
}

type funcForm struct {
	Name   string      `parser:"@Ident"`
	Params []*identTok `parser:"'[' @@* ']'"`
	Body   *bodyForm   `parser:"@@"`
}

type ifForm struct {
	Cond *exprNode `parser:"@@"`
	Body *bodyForm `parser:"@@"`
	Elif *elifForm `parser:"( '(' 'elif' @@ ')' )?"`
	Else *bodyForm `parser:"( '(' 'else' @@ ')' )?"`
}

type elifForm struct {
	Cond *exprNode `parser:"@@"`
	Body *bodyForm `parser:"@@"`
}

type bodyForm struct {
	Stmts []*stmtNode `parser:"'[' @@* ']'"`
}

// identTok is a bare name in declaring position.
type identTok struct {
	Pos    plexer.Position
	EndPos plexer.Position

	Name string `parser:"@Ident"`
}

type exprNode struct {
	Pos    plexer.Position
	EndPos plexer.Position

	Number *string   `parser:"  @Number"`
	String *string   `parser:"| @String"`
	Char   *string   `parser:"| @Char"`
	Form   *exprForm `parser:"| '(' @@ ')'"`
}

type exprForm struct {
	Empty   bool         `parser:"  @'empty'"`
	Null    bool         `parser:"| @'null'"`
	Bool    *string      `parser:"| 'bool' @('true' | 'false')"`
	Op      *string      `parser:"| 'op' @(Operator | Ident)"`
	Ident   *string      `parser:"| 'ident' @Ident"`
	Cond    *condForm    `parser:"| 'cond' @@"`
	Nested  *exprNode    `parser:"| 'nested' @@"`
	List    *listForm    `parser:"| @@"`
	Seq     *seqForm     `parser:"| 'seq' @@"`
	Unknown *unknownForm `parser:"| @@"`
}

type condForm struct {
	Op    *string   `parser:"@(Operator | Ident)?"`
	Left  *exprNode `parser:"@@"`
	Right *exprNode `parser:"@@"`
}

type listForm struct {
	Keyword bool        `parser:"@'list'"`
	Elems   []*exprNode `parser:"@@*"`
}

type seqForm struct {
	Start *exprNode `parser:"@@"`
	Stop  *exprNode `parser:"@@"`
	Step  *exprNode `parser:"@@"`
}

// unknownForm swallows the whole form, whatever it contains.
type unknownForm struct {
	Kind string     `parser:"@Ident"`
	Args []*rawNode `parser:"@@*"`
}

type rawNode struct {
	Atom  *string   `parser:"  @(Ident | Number | String | Char | Operator)"`
	Group *rawGroup `parser:"| @@"`
}

type rawGroup struct {
	Open  string     `parser:"@( '(' | '[' )"`
	Items []*rawNode `parser:"@@* ( ')' | ']' )"`
}
