package astdoc

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
	"gopkg.in/yaml.v3"

	"github.com/kolkov/dudecheck/internal/ast"
	"github.com/kolkov/dudecheck/internal/token"
)

// Encode writes prog to w as a JSON or YAML document.
func Encode(w io.Writer, prog *ast.Program, format Format) error {
	doc := map[string]any{"statements": encodeBody(prog.Stmts)}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(doc), "encode json")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return errors.Wrap(enc.Close(), "encode yaml")
	default:
		return errors.Errorf("astdoc: cannot encode %s documents", format)
	}
}

func encodeBody(stmts []ast.Stmt) []any {
	out := make([]any, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, encodeStmt(s))
	}
	return out
}

func encodeStmt(s ast.Stmt) any {
	if s == nil {
		return nil
	}
	var m map[string]any
	switch s := s.(type) {
	case *ast.AssignStmt:
		m = map[string]any{"type": "Assignment", "var": encodeIdent(s.Var)}
		if s.Value != nil {
			m["expression"] = encodeExpr(s.Value)
		}
	case *ast.ReturnStmt:
		m = map[string]any{"type": "Return"}
		if s.Value != nil {
			m["expression"] = encodeExpr(s.Value)
		}
	case *ast.StructStmt:
		m = map[string]any{"type": "Structure", "name": s.Name}
	case *ast.WhileStmt:
		m = map[string]any{
			"type":      "WhileLoop",
			"condition": encodeExpr(s.Cond),
			"body":      encodeBody(s.Body),
		}
	case *ast.ForStmt:
		m = map[string]any{
			"type":     "ForLoop",
			"index":    encodeIdent(s.Index),
			"sequence": encodeExpr(s.Seq),
			"body":     encodeBody(s.Body),
		}
	case *ast.FuncStmt:
		args := make([]any, 0, len(s.Params))
		for _, p := range s.Params {
			args = append(args, encodeIdent(p))
		}
		m = map[string]any{
			"type":      "Function",
			"name":      s.Name,
			"arguments": args,
			"body":      encodeBody(s.Body),
		}
	case *ast.IfStmt:
		m = map[string]any{
			"type":           "Conditional",
			"if_condition":   encodeExpr(s.IfCond),
			"elif_condition": encodeExpr(s.ElifCond),
			"if_body":        encodeBody(s.IfBody),
			"elif_body":      encodeBody(s.ElifBody),
			"else_body":      encodeBody(s.ElseBody),
		}
	case *ast.UnknownStmt:
		m = map[string]any{"type": s.Kind}
	default:
		m = map[string]any{"type": fmt.Sprintf("%T", s)}
	}
	addPos(m, s.Pos())
	return m
}

// encodeIdent writes declared names as bare strings.
func encodeIdent(id *ast.Ident) any {
	if id == nil {
		return nil
	}
	return id.Name
}

func encodeExpr(e ast.Expr) any {
	if e == nil {
		return nil
	}
	var m map[string]any
	switch e := e.(type) {
	case *ast.EmptyExpr:
		m = map[string]any{"type": "Empty"}
	case *ast.NullLit:
		m = map[string]any{"type": "Null"}
	case *ast.NumLit:
		m = map[string]any{"type": "Number", "value": e.Value}
	case *ast.BoolLit:
		m = map[string]any{"type": "Boolean", "value": e.Value}
	case *ast.StrLit:
		m = map[string]any{"type": "String", "value": e.Value}
	case *ast.CharLit:
		m = map[string]any{"type": "Character", "value": e.Value}
	case *ast.OperatorLit:
		m = map[string]any{"type": "Operator", "value": e.Op}
	case *ast.Ident:
		m = map[string]any{"type": "Identifier", "name": e.Name}
	case *ast.CondExpr:
		m = map[string]any{
			"type":  "Condition",
			"left":  encodeExpr(e.Left),
			"right": encodeExpr(e.Right),
		}
		if e.Op != "" {
			m["op"] = e.Op
		}
	case *ast.NestedExpr:
		m = map[string]any{"type": "NestedExpression", "expression": encodeExpr(e.Expr)}
	case *ast.ListExpr:
		elems := make([]any, 0, len(e.Elems))
		for _, el := range e.Elems {
			elems = append(elems, encodeExpr(el))
		}
		m = map[string]any{"type": "List", "elements": elems}
	case *ast.SeqExpr:
		m = map[string]any{
			"type":  "Sequence",
			"start": encodeExpr(e.Start),
			"stop":  encodeExpr(e.Stop),
			"step":  encodeExpr(e.Step),
		}
	case *ast.UnknownExpr:
		m = map[string]any{"type": e.Kind}
	default:
		m = map[string]any{"type": fmt.Sprintf("%T", e)}
	}
	addPos(m, e.Pos())
	return m
}

func addPos(m map[string]any, p token.Position) {
	if !p.IsValid() {
		return
	}
	m["line"] = p.Line
	m["column"] = p.Column
}
