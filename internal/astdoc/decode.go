package astdoc

import (
	"fmt"
	"math"
	"os"

	"github.com/coregx/coregex"
	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/kolkov/dudecheck/internal/ast"
	"github.com/kolkov/dudecheck/internal/token"
)

// identPattern is the shape every declared or referenced name must have.
var identPattern = mustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func mustCompile(pattern string) *coregex.Regexp {
	re, err := coregex.Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// IsIdent reports whether s is a well-formed identifier.
func IsIdent(s string) bool {
	return identPattern.MatchString(s)
}

// Error describes one structural problem in a document.
type Error struct {
	Path    string         // Location in the document, e.g. statements[1].body[0]
	Pos     token.Position // Node position when the document provides one
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s (%s): %s", e.Path, e.Pos, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Errors returns the individual problems aggregated in err.
func Errors(err error) []error {
	return multierr.Errors(err)
}

// ReadFile reads and decodes the document at path.
func ReadFile(path string, format Format) (*ast.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return Decode(path, data, format)
}

// Decode decodes a JSON or YAML document. FormatAuto detects the format
// from filename and content. All structural problems are reported
// together; use Errors to split them.
func Decode(filename string, data []byte, format Format) (*ast.Program, error) {
	if format == FormatAuto {
		format = Detect(filename, data)
	}

	var doc any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, "decode json")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, "decode yaml")
		}
	default:
		return nil, errors.Errorf("astdoc: cannot decode %s documents", format)
	}

	b := &builder{filename: filename}
	prog := b.program(doc)
	if b.errs != nil {
		return nil, b.errs
	}
	return prog, nil
}

// builder converts a generic decoded document into AST nodes.
type builder struct {
	filename string
	errs     error
}

func (b *builder) failf(path string, m map[string]any, format string, args ...any) {
	b.errs = multierr.Append(b.errs, &Error{
		Path:    path,
		Pos:     b.pos(m),
		Message: fmt.Sprintf(format, args...),
	})
}

func (b *builder) program(doc any) *ast.Program {
	prog := &ast.Program{Filename: b.filename}

	var stmts any
	switch d := doc.(type) {
	case map[string]any:
		stmts = d["statements"]
		prog.StartPos = b.pos(d)
	case []any:
		stmts = d
	case nil:
		// Empty document
	default:
		b.failf("$", nil, "expected object or list, got %s", kindOf(doc))
		return prog
	}
	prog.Stmts = b.body("statements", stmts)
	return prog
}

// pos reads the optional line/column fields of a node.
func (b *builder) pos(m map[string]any) token.Position {
	if m == nil {
		return token.NoPos
	}
	line, _ := toInt(m["line"])
	col, _ := toInt(m["column"])
	if line <= 0 {
		return token.NoPos
	}
	if col <= 0 {
		col = 1
	}
	return token.Position{Filename: b.filename, Line: line, Column: col}
}

func (b *builder) node(path string, v any) (map[string]any, string, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		b.failf(path, nil, "expected node object, got %s", kindOf(v))
		return nil, "", false
	}
	typ, ok := m["type"].(string)
	if !ok || typ == "" {
		b.failf(path, m, "node has no type")
		return nil, "", false
	}
	return m, typ, true
}

func (b *builder) body(path string, v any) []ast.Stmt {
	if v == nil {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		b.failf(path, nil, "expected statement list, got %s", kindOf(v))
		return nil
	}
	out := make([]ast.Stmt, 0, len(list))
	for i, item := range list {
		if s := b.stmt(fmt.Sprintf("%s[%d]", path, i), item); s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (b *builder) stmt(path string, v any) ast.Stmt {
	m, typ, ok := b.node(path, v)
	if !ok {
		return nil
	}
	p := b.pos(m)
	base := ast.MakeBaseStmt(p, p)

	switch stmtKinds[typ] {
	case "Assignment":
		return &ast.AssignStmt{
			BaseStmt: base,
			Var:      b.ident(path+".var", m["var"]),
			Value:    b.optExpr(path+".expression", m["expression"]),
		}

	case "Return":
		return &ast.ReturnStmt{BaseStmt: base, Value: b.optExpr(path+".expression", m["expression"])}

	case "Structure":
		name, _ := m["name"].(string)
		return &ast.StructStmt{BaseStmt: base, Name: name}

	case "WhileLoop":
		return &ast.WhileStmt{
			BaseStmt: base,
			Cond:     b.expr(path+".condition", m["condition"]),
			Body:     b.body(path+".body", m["body"]),
		}

	case "ForLoop":
		return &ast.ForStmt{
			BaseStmt: base,
			Index:    b.ident(path+".index", m["index"]),
			Seq:      b.expr(path+".sequence", m["sequence"]),
			Body:     b.body(path+".body", m["body"]),
		}

	case "Function":
		s := &ast.FuncStmt{BaseStmt: base, Body: b.body(path+".body", m["body"])}
		s.Name, _ = m["name"].(string)
		if args, ok := m["arguments"].([]any); ok {
			for i, a := range args {
				s.Params = append(s.Params, b.ident(fmt.Sprintf("%s.arguments[%d]", path, i), a))
			}
		} else if m["arguments"] != nil {
			b.failf(path+".arguments", m, "expected list, got %s", kindOf(m["arguments"]))
		}
		return s

	case "Conditional":
		return &ast.IfStmt{
			BaseStmt: base,
			IfCond:   b.condition(path+".if_condition", m["if_condition"], p),
			ElifCond: b.condition(path+".elif_condition", m["elif_condition"], p),
			IfBody:   b.body(path+".if_body", m["if_body"]),
			ElifBody: b.body(path+".elif_body", m["elif_body"]),
			ElseBody: b.body(path+".else_body", m["else_body"]),
		}

	default:
		return &ast.UnknownStmt{BaseStmt: base, Kind: typ}
	}
}

// condition decodes a conditional clause condition; absent clauses become
// *ast.EmptyExpr so analyzers can rely on both conditions being present.
func (b *builder) condition(path string, v any, p token.Position) ast.Expr {
	if v == nil {
		return &ast.EmptyExpr{BaseExpr: ast.MakeBaseExpr(p, p)}
	}
	return b.expr(path, v)
}

// ident decodes a declared name given either as a bare string or as an
// Identifier node.
func (b *builder) ident(path string, v any) *ast.Ident {
	var (
		name string
		m    map[string]any
	)
	switch x := v.(type) {
	case string:
		name = x
	case map[string]any:
		m = x
		name, _ = x["name"].(string)
	case nil:
		b.failf(path, nil, "missing identifier")
		return nil
	default:
		b.failf(path, nil, "expected identifier, got %s", kindOf(v))
		return nil
	}
	if !IsIdent(name) {
		b.failf(path, m, "invalid identifier %q", name)
		return nil
	}
	p := b.pos(m)
	return &ast.Ident{BaseExpr: ast.MakeBaseExpr(p, p), Name: name}
}

func (b *builder) optExpr(path string, v any) ast.Expr {
	if v == nil {
		return nil
	}
	return b.expr(path, v)
}

func (b *builder) expr(path string, v any) ast.Expr {
	if v == nil {
		b.failf(path, nil, "missing expression")
		return nil
	}
	m, typ, ok := b.node(path, v)
	if !ok {
		return nil
	}
	p := b.pos(m)
	base := ast.MakeBaseExpr(p, p)

	switch exprKinds[typ] {
	case "Empty":
		return &ast.EmptyExpr{BaseExpr: base}
	case "Null":
		return &ast.NullLit{BaseExpr: base}
	case "Number":
		f, ok := toFloat(m["value"])
		if !ok {
			b.failf(path+".value", m, "expected number, got %s", kindOf(m["value"]))
		}
		return &ast.NumLit{BaseExpr: base, Value: f}
	case "Boolean":
		val, ok := m["value"].(bool)
		if !ok {
			b.failf(path+".value", m, "expected bool, got %s", kindOf(m["value"]))
		}
		return &ast.BoolLit{BaseExpr: base, Value: val}
	case "String":
		return &ast.StrLit{BaseExpr: base, Value: b.text(path, m)}
	case "Character":
		return &ast.CharLit{BaseExpr: base, Value: b.text(path, m)}
	case "Operator":
		return &ast.OperatorLit{BaseExpr: base, Op: b.text(path, m)}
	case "Identifier":
		name, _ := m["name"].(string)
		if !IsIdent(name) {
			b.failf(path+".name", m, "invalid identifier %q", name)
		}
		return &ast.Ident{BaseExpr: base, Name: name}
	case "Condition":
		op, _ := m["op"].(string)
		return &ast.CondExpr{
			BaseExpr: base,
			Left:     b.expr(path+".left", m["left"]),
			Op:       op,
			Right:    b.expr(path+".right", m["right"]),
		}
	case "NestedExpression":
		return &ast.NestedExpr{BaseExpr: base, Expr: b.expr(path+".expression", m["expression"])}
	case "List":
		e := &ast.ListExpr{BaseExpr: base}
		elems, ok := m["elements"].([]any)
		if !ok && m["elements"] != nil {
			b.failf(path+".elements", m, "expected list, got %s", kindOf(m["elements"]))
		}
		for i, el := range elems {
			e.Elems = append(e.Elems, b.expr(fmt.Sprintf("%s.elements[%d]", path, i), el))
		}
		return e
	case "Sequence":
		return &ast.SeqExpr{
			BaseExpr: base,
			Start:    b.expr(path+".start", m["start"]),
			Stop:     b.expr(path+".stop", m["stop"]),
			Step:     b.expr(path+".step", m["step"]),
		}
	default:
		return &ast.UnknownExpr{BaseExpr: base, Kind: typ}
	}
}

func (b *builder) text(path string, m map[string]any) string {
	s, ok := m["value"].(string)
	if !ok {
		b.failf(path+".value", m, "expected string, got %s", kindOf(m["value"]))
	}
	return s
}

// stmtKinds and exprKinds map accepted type names, including the long
// names used by older producers, to canonical kinds.
var stmtKinds = map[string]string{
	"Assignment":           "Assignment",
	"AssignmentStatement":  "Assignment",
	"Return":               "Return",
	"ReturnStatement":      "Return",
	"Structure":            "Structure",
	"StructureStatement":   "Structure",
	"WhileLoop":            "WhileLoop",
	"WhileLoopStatement":   "WhileLoop",
	"ForLoop":              "ForLoop",
	"ForLoopStatement":     "ForLoop",
	"Function":             "Function",
	"FunctionStatement":    "Function",
	"Conditional":          "Conditional",
	"ConditionalStatement": "Conditional",
}

var exprKinds = map[string]string{
	"Empty":            "Empty",
	"EmptyStatement":   "Empty",
	"Null":             "Null",
	"Number":           "Number",
	"Boolean":          "Boolean",
	"String":           "String",
	"Character":        "Character",
	"Operator":         "Operator",
	"Identifier":       "Identifier",
	"Condition":        "Condition",
	"NestedExpression": "NestedExpression",
	"List":             "List",
	"Sequence":         "Sequence",
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func toInt(v any) (int, bool) {
	f, ok := toFloat(v)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "nothing"
	case map[string]any:
		return "object"
	case []any:
		return "list"
	case string:
		return "string"
	case bool:
		return "bool"
	default:
		if _, ok := toFloat(v); ok {
			return "number"
		}
		return fmt.Sprintf("%T", v)
	}
}
