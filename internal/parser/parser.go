package parser

import (
	"strconv"

	"github.com/alecthomas/participle/v2"

	"github.com/kolkov/dudecheck/internal/ast"
	"github.com/kolkov/dudecheck/internal/lexer"
	"github.com/kolkov/dudecheck/internal/token"
)

var notation = participle.MustBuild[file](
	participle.Lexer(lexer.Definition),
	participle.Elide(lexer.Elided...),
	participle.Unquote(lexer.String, lexer.Char),
	participle.UseLookahead(2),
)

// keywords are form heads with a fixed shape. A keyword reaching the
// unknown-form fallback means its form was malformed.
var keywords = map[string]bool{
	"assign": true, "return": true, "struct": true, "while": true,
	"for": true, "func": true, "if": true, "elif": true, "else": true,
	"empty": true, "null": true, "bool": true, "op": true, "ident": true,
	"cond": true, "nested": true, "list": true, "seq": true,
}

// Parse parses notation source into a program.
func Parse(src string) (*ast.Program, error) {
	return ParseFile("", []byte(src))
}

// ParseFile parses notation source read from filename.
// The filename is only used in positions.
func ParseFile(filename string, src []byte) (*ast.Program, error) {
	f, err := notation.ParseBytes(filename, src)
	if err != nil {
		return nil, fromParticiple(err)
	}

	c := &converter{}
	prog := &ast.Program{
		Filename: filename,
		Stmts:    c.stmts(f.Stmts),
		StartPos: token.Position{Filename: filename, Line: 1, Column: 1},
	}
	if n := len(f.Stmts); n > 0 {
		prog.StartPos = lexer.Position(f.Stmts[0].Pos)
		prog.EndPos = lexer.Position(f.Stmts[n-1].EndPos)
	}
	if err := c.errs.Err(); err != nil {
		return nil, err
	}
	return prog, nil
}

// Grammar returns the notation grammar in EBNF.
func Grammar() string {
	return notation.String()
}

// converter turns grammar nodes into AST nodes, collecting the semantic
// problems the grammar alone cannot express.
type converter struct {
	errs ErrorList
}

func (c *converter) stmts(nodes []*stmtNode) []ast.Stmt {
	out := make([]ast.Stmt, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, c.stmt(n))
	}
	return out
}

func (c *converter) body(b *bodyForm) []ast.Stmt {
	if b == nil {
		return nil
	}
	return c.stmts(b.Stmts)
}

func (c *converter) stmt(n *stmtNode) ast.Stmt {
	base := ast.MakeBaseStmt(lexer.Position(n.Pos), lexer.Position(n.EndPos))
	f := n.Form

	switch {
	case f.Assign != nil:
		return &ast.AssignStmt{BaseStmt: base, Var: ident(f.Assign.Name), Value: c.expr(f.Assign.Value)}

	case f.Return != nil:
		s := &ast.ReturnStmt{BaseStmt: base}
		if f.Return.Value != nil {
			s.Value = c.expr(f.Return.Value)
		}
		return s

	case f.Struct != nil:
		return &ast.StructStmt{BaseStmt: base, Name: f.Struct.Name}

	case f.While != nil:
		return &ast.WhileStmt{BaseStmt: base, Cond: c.expr(f.While.Cond), Body: c.body(f.While.Body)}

	case f.For != nil:
		return &ast.ForStmt{
			BaseStmt: base,
			Index:    ident(f.For.Index),
			Seq:      c.expr(f.For.Seq),
			Body:     c.body(f.For.Body),
		}

	case f.Func != nil:
		s := &ast.FuncStmt{BaseStmt: base, Name: f.Func.Name, Body: c.body(f.Func.Body)}
		for _, p := range f.Func.Params {
			s.Params = append(s.Params, ident(p))
		}
		return s

	case f.If != nil:
		return c.ifStmt(base, f.If)

	default:
		if keywords[f.Unknown.Kind] {
			c.errs.Add(base.StartPos, "malformed %s form", f.Unknown.Kind)
		}
		return &ast.UnknownStmt{BaseStmt: base, Kind: f.Unknown.Kind}
	}
}

// ifStmt fills absent clauses so that both conditions are always present.
func (c *converter) ifStmt(base ast.BaseStmt, f *ifForm) *ast.IfStmt {
	s := &ast.IfStmt{
		BaseStmt: base,
		IfCond:   c.expr(f.Cond),
		IfBody:   c.body(f.Body),
		ElseBody: c.body(f.Else),
	}
	if f.Elif != nil {
		s.ElifCond = c.expr(f.Elif.Cond)
		s.ElifBody = c.body(f.Elif.Body)
	} else {
		s.ElifCond = &ast.EmptyExpr{BaseExpr: ast.MakeBaseExpr(base.EndPos, base.EndPos)}
	}
	return s
}

func ident(t *identTok) *ast.Ident {
	return &ast.Ident{
		BaseExpr: ast.MakeBaseExpr(lexer.Position(t.Pos), lexer.Position(t.EndPos)),
		Name:     t.Name,
	}
}

func (c *converter) exprs(nodes []*exprNode) []ast.Expr {
	out := make([]ast.Expr, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, c.expr(n))
	}
	return out
}

func (c *converter) expr(n *exprNode) ast.Expr {
	base := ast.MakeBaseExpr(lexer.Position(n.Pos), lexer.Position(n.EndPos))

	switch {
	case n.Number != nil:
		v, err := strconv.ParseFloat(*n.Number, 64)
		if err != nil {
			c.errs.Add(base.StartPos, "invalid number %s", *n.Number)
		}
		return &ast.NumLit{BaseExpr: base, Value: v, Raw: *n.Number}
	case n.String != nil:
		return &ast.StrLit{BaseExpr: base, Value: *n.String}
	case n.Char != nil:
		return &ast.CharLit{BaseExpr: base, Value: *n.Char}
	}

	f := n.Form
	switch {
	case f.Empty:
		return &ast.EmptyExpr{BaseExpr: base}
	case f.Null:
		return &ast.NullLit{BaseExpr: base}
	case f.Bool != nil:
		return &ast.BoolLit{BaseExpr: base, Value: *f.Bool == "true"}
	case f.Op != nil:
		return &ast.OperatorLit{BaseExpr: base, Op: *f.Op}
	case f.Ident != nil:
		return &ast.Ident{BaseExpr: base, Name: *f.Ident}
	case f.Cond != nil:
		e := &ast.CondExpr{BaseExpr: base, Left: c.expr(f.Cond.Left), Right: c.expr(f.Cond.Right)}
		if f.Cond.Op != nil {
			e.Op = *f.Cond.Op
		}
		return e
	case f.Nested != nil:
		return &ast.NestedExpr{BaseExpr: base, Expr: c.expr(f.Nested)}
	case f.List != nil:
		return &ast.ListExpr{BaseExpr: base, Elems: c.exprs(f.List.Elems)}
	case f.Seq != nil:
		return &ast.SeqExpr{
			BaseExpr: base,
			Start:    c.expr(f.Seq.Start),
			Stop:     c.expr(f.Seq.Stop),
			Step:     c.expr(f.Seq.Step),
		}
	default:
		if keywords[f.Unknown.Kind] {
			c.errs.Add(base.StartPos, "malformed %s form", f.Unknown.Kind)
		}
		return &ast.UnknownExpr{BaseExpr: base, Kind: f.Unknown.Kind}
	}
}
