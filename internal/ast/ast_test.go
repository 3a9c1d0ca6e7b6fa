package ast_test

import (
	"strings"
	"testing"

	"github.com/kolkov/dudecheck/internal/ast"
	"github.com/kolkov/dudecheck/internal/token"
)

func ident(name string) *ast.Ident { return &ast.Ident{Name: name} }

func num(raw string) *ast.NumLit { return &ast.NumLit{Raw: raw} }

// TestNodeInterface verifies all node types implement Node interface correctly.
func TestNodeInterface(t *testing.T) {
	pos := token.Position{Line: 2, Column: 4, Offset: 10}
	endPos := token.Position{Line: 2, Column: 9, Offset: 15}

	tests := []struct {
		name string
		node ast.Node
	}{
		{"EmptyExpr", &ast.EmptyExpr{BaseExpr: ast.MakeBaseExpr(pos, endPos)}},
		{"NullLit", &ast.NullLit{BaseExpr: ast.MakeBaseExpr(pos, endPos)}},
		{"Ident", &ast.Ident{BaseExpr: ast.MakeBaseExpr(pos, endPos), Name: "x"}},
		{"SeqExpr", &ast.SeqExpr{BaseExpr: ast.MakeBaseExpr(pos, endPos)}},
		{"AssignStmt", &ast.AssignStmt{BaseStmt: ast.MakeBaseStmt(pos, endPos)}},
		{"IfStmt", &ast.IfStmt{BaseStmt: ast.MakeBaseStmt(pos, endPos)}},
		{"UnknownStmt", &ast.UnknownStmt{BaseStmt: ast.MakeBaseStmt(pos, endPos), Kind: "Import"}},
		{"Program", &ast.Program{StartPos: pos, EndPos: endPos}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Pos(); got != pos {
				t.Errorf("Pos() = %v, want %v", got, pos)
			}
			if got := tt.node.End(); got != endPos {
				t.Errorf("End() = %v, want %v", got, endPos)
			}
		})
	}
}

func TestIsAtom(t *testing.T) {
	tests := []struct {
		expr ast.Expr
		want bool
	}{
		{&ast.EmptyExpr{}, true},
		{&ast.NullLit{}, true},
		{num("1"), true},
		{&ast.BoolLit{Value: true}, true},
		{&ast.StrLit{Value: "s"}, true},
		{&ast.CharLit{Value: "c"}, true},
		{&ast.OperatorLit{Op: "+"}, true},
		{ident("x"), false},
		{&ast.ListExpr{}, false},
		{&ast.UnknownExpr{Kind: "Lambda"}, false},
	}
	for _, tt := range tests {
		if got := ast.IsAtom(tt.expr); got != tt.want {
			t.Errorf("IsAtom(%T) = %v, want %v", tt.expr, got, tt.want)
		}
	}
}

func sampleProgram() *ast.Program {
	return &ast.Program{Stmts: []ast.Stmt{
		&ast.AssignStmt{Var: ident("x"), Value: num("0")},
		&ast.ForStmt{
			Index: ident("i"),
			Seq:   &ast.SeqExpr{Start: num("0"), Stop: num("10"), Step: num("1")},
			Body: []ast.Stmt{
				&ast.AssignStmt{Var: ident("y"), Value: &ast.CondExpr{Left: ident("i"), Op: "+", Right: ident("x")}},
			},
		},
		&ast.FuncStmt{
			Name:   "f",
			Params: []*ast.Ident{ident("a"), ident("b")},
			Body:   []ast.Stmt{&ast.ReturnStmt{Value: &ast.NestedExpr{Expr: ident("a")}}},
		},
		&ast.IfStmt{
			IfCond:   ident("x"),
			ElifCond: &ast.EmptyExpr{},
			IfBody:   []ast.Stmt{&ast.StructStmt{Name: "Point"}},
			ElseBody: []ast.Stmt{&ast.ReturnStmt{}},
		},
	}}
}

func TestWalk(t *testing.T) {
	prog := sampleProgram()

	var names []string
	ast.Walk(prog, func(n ast.Node) bool {
		if id, ok := n.(*ast.Ident); ok {
			names = append(names, id.Name)
		}
		return true
	})

	want := "x i y i x a b a x"
	if got := strings.Join(names, " "); got != want {
		t.Errorf("identifiers = %q, want %q", got, want)
	}
}

func TestWalkPrune(t *testing.T) {
	prog := sampleProgram()

	visited := 0
	ast.Walk(prog, func(n ast.Node) bool {
		visited++
		_, isFor := n.(*ast.ForStmt)
		_, isFunc := n.(*ast.FuncStmt)
		return !isFor && !isFunc
	})

	// program, assign x 0, for, func, if x empty struct return
	if visited != 11 {
		t.Errorf("visited %d nodes, want 11", visited)
	}
}

func TestCountNodes(t *testing.T) {
	if got := ast.CountNodes(&ast.Program{}); got != 1 {
		t.Errorf("empty program: got %d nodes, want 1", got)
	}
	if got := ast.CountNodes(sampleProgram()); got != 26 {
		t.Errorf("sample program: got %d nodes, want 26", got)
	}
}

func TestPrint(t *testing.T) {
	var sb strings.Builder
	if err := ast.Fprint(&sb, sampleProgram()); err != nil {
		t.Fatalf("Fprint: %v", err)
	}

	want := `(assign x 0)
(for i (seq 0 10 1) [
    (assign y (cond + (ident i) (ident x)))
])
(func f [a b] [
    (return (nested (ident a)))
])
(if (ident x) [
    (struct Point)
] (else [
    (return)
]))
`
	if got := sb.String(); got != want {
		t.Errorf("Print mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrintExpressions(t *testing.T) {
	tests := []struct {
		expr ast.Expr
		want string
	}{
		{&ast.EmptyExpr{}, "(empty)"},
		{&ast.NullLit{}, "(null)"},
		{&ast.NumLit{Value: 2.5}, "2.5"},
		{&ast.BoolLit{Value: false}, "(bool false)"},
		{&ast.StrLit{Value: "a\"b"}, `"a\"b"`},
		{&ast.CharLit{Value: "c"}, "'c'"},
		{&ast.OperatorLit{Op: "<="}, "(op <=)"},
		{&ast.CondExpr{Left: ident("a"), Right: ident("b")}, "(cond (ident a) (ident b))"},
		{&ast.ListExpr{Elems: []ast.Expr{num("1"), ident("z")}}, "(list 1 (ident z))"},
		{&ast.ListExpr{}, "(list)"},
		{&ast.UnknownExpr{Kind: "Lambda"}, "(Lambda)"},
		{nil, "<nil>"},
	}
	for _, tt := range tests {
		var sb strings.Builder
		p := ast.NewPrinter(&sb)
		if err := p.Print(tt.expr); err != nil {
			t.Fatalf("Print: %v", err)
		}
		if got := sb.String(); got != tt.want {
			t.Errorf("print %T = %q, want %q", tt.expr, got, tt.want)
		}
	}
}
