package astdoc

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/kolkov/dudecheck/internal/ast"
	"github.com/kolkov/dudecheck/internal/parser"
)

const sampleJSON = `{
  "statements": [
    {"type": "Assignment", "var": "x", "expression": {"type": "Number", "value": 0}, "line": 1, "column": 1},
    {"type": "Structure", "name": "Point", "fields": ["a", "b"]},
    {"type": "WhileLoop",
     "condition": {"type": "Condition", "left": {"type": "Identifier", "name": "x"}, "op": "<", "right": {"type": "Number", "value": 10}},
     "body": [{"type": "Assignment", "var": {"type": "Identifier", "name": "x"}, "expression": {"type": "Null"}}]},
    {"type": "ForLoop", "index": "i",
     "sequence": {"type": "Sequence", "start": {"type": "Number", "value": 0}, "stop": {"type": "Number", "value": 3}, "step": {"type": "Number", "value": 1}},
     "body": []},
    {"type": "Function", "name": "f", "arguments": ["a", {"type": "Identifier", "name": "b"}],
     "body": [{"type": "Return", "expression": {"type": "NestedExpression", "expression": {"type": "Identifier", "name": "a"}}}]},
    {"type": "Conditional", "if_condition": {"type": "Boolean", "value": true},
     "if_body": [{"type": "Return"}], "else_body": [{"type": "Return", "expression": {"type": "Empty"}}]},
    {"type": "Return", "expression": {"type": "List", "elements": [
      {"type": "String", "value": "s"}, {"type": "Character", "value": "c"}, {"type": "Operator", "value": "+"}
    ]}},
    {"type": "Import", "module": "os"}
  ]
}`

const sampleNotation = `(assign x 0)
(struct Point)
(while (cond < (ident x) 10) [ (assign x (null)) ])
(for i (seq 0 3 1) [])
(func f [a b] [ (return (nested (ident a))) ])
(if (bool true) [ (return) ] (else [ (return (empty)) ]))
(return (list "s" 'c' (op +)))
(Import)
`

func notation(t *testing.T, prog *ast.Program) string {
	t.Helper()
	var buf bytes.Buffer
	if err := ast.Fprint(&buf, prog); err != nil {
		t.Fatalf("print: %v", err)
	}
	return buf.String()
}

func TestDecodeJSON(t *testing.T) {
	prog, err := Decode("sample.json", []byte(sampleJSON), FormatAuto)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want, err := parser.Parse(sampleNotation)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got, exp := notation(t, prog), notation(t, want); got != exp {
		t.Errorf("decoded program:\n%s\nwant:\n%s", got, exp)
	}

	pos := prog.Stmts[0].Pos()
	if pos.Filename != "sample.json" || pos.Line != 1 || pos.Column != 1 {
		t.Errorf("position = %v", pos)
	}
	if prog.Stmts[1].Pos().IsValid() {
		t.Errorf("node without line must have no position, got %v", prog.Stmts[1].Pos())
	}

	ifs := prog.Stmts[5].(*ast.IfStmt)
	if _, ok := ifs.ElifCond.(*ast.EmptyExpr); !ok {
		t.Errorf("missing elif_condition decoded as %T, want *ast.EmptyExpr", ifs.ElifCond)
	}
	if ifs.ElifBody != nil {
		t.Errorf("missing elif_body decoded as %v", ifs.ElifBody)
	}
	if u, ok := prog.Stmts[7].(*ast.UnknownStmt); !ok || u.Kind != "Import" {
		t.Errorf("unknown statement = %#v", prog.Stmts[7])
	}
}

func TestDecodeYAML(t *testing.T) {
	src := `
statements:
  - type: AssignmentStatement
    var: total
    expression: {type: Number, value: 2.5}
  - type: ConditionalStatement
    if_condition: {type: Identifier, name: total}
    elif_condition: {type: EmptyStatement}
    if_body:
      - type: ReturnStatement
        expression: {type: Identifier, name: total, line: 5, column: 9}
`
	prog, err := Decode("prog.yaml", []byte(src), FormatAuto)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := "(assign total 2.5)\n(if (ident total) [\n    (return (ident total))\n])\n"
	if got := notation(t, prog); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
	ret := prog.Stmts[1].(*ast.IfStmt).IfBody[0].(*ast.ReturnStmt)
	if p := ret.Value.Pos(); p.Line != 5 || p.Column != 9 {
		t.Errorf("identifier position = %v", p)
	}
}

func TestDecodeBareList(t *testing.T) {
	prog, err := Decode("", []byte(`[{"type": "Return"}]`), FormatJSON)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(prog.Stmts) != 1 {
		t.Fatalf("got %d statements", len(prog.Stmts))
	}
}

func TestDecodeErrors(t *testing.T) {
	src := `{"statements": [
		{"var": "x"},
		{"type": "Assignment", "var": "1x", "expression": {"type": "Null"}},
		{"type": "ForLoop", "sequence": {"type": "Null"}, "body": 3},
		{"type": "Return", "expression": {"type": "Number", "value": "ten"}}
	]}`
	_, err := Decode("bad.json", []byte(src), FormatJSON)
	if err == nil {
		t.Fatal("expected error")
	}

	errs := Errors(err)
	want := []string{
		"statements[0]: node has no type",
		`statements[1].var: invalid identifier "1x"`,
		"statements[2].index: missing identifier",
		"statements[2].body: expected statement list, got number",
		"statements[3].expression.value: expected number, got string",
	}
	if len(errs) != len(want) {
		t.Fatalf("got %d errors %v, want %d", len(errs), errs, len(want))
	}
	for i, e := range errs {
		var de *Error
		if !errors.As(e, &de) {
			t.Errorf("error %d has type %T", i, e)
			continue
		}
		if de.Error() != want[i] {
			t.Errorf("error %d = %q, want %q", i, de.Error(), want[i])
		}
	}
}

func TestDecodeSyntaxError(t *testing.T) {
	_, err := Decode("broken.json", []byte(`{"statements": [`), FormatJSON)
	if err == nil || !strings.Contains(err.Error(), "decode json") {
		t.Errorf("err = %v", err)
	}
	if _, err := Decode("x", []byte("(return)"), FormatNotation); err == nil {
		t.Error("notation must be rejected")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	orig, err := parser.ParseFile("sample.dast", []byte(sampleNotation))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := notation(t, orig)

	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, orig, format); err != nil {
				t.Fatalf("encode: %v", err)
			}
			prog, err := Decode("sample.dast", buf.Bytes(), format)
			if err != nil {
				t.Fatalf("decode: %v\n%s", err, buf.String())
			}
			if got := notation(t, prog); got != want {
				t.Errorf("round trip:\n%s\nwant:\n%s", got, want)
			}
			if got, exp := prog.Stmts[2].Pos(), orig.Stmts[2].Pos(); got.Line != exp.Line || got.Column != exp.Column {
				t.Errorf("position %v, want %v", got, exp)
			}
		})
	}

	if err := Encode(&bytes.Buffer{}, orig, FormatNotation); err == nil {
		t.Error("notation encode must fail")
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Format
	}{
		{"a.json", "", FormatJSON},
		{"a.YML", "", FormatYAML},
		{"a.dast", "", FormatNotation},
		{"-", `  {"statements": []}`, FormatJSON},
		{"-", "[]", FormatJSON},
		{"-", "; comment\n(return)", FormatNotation},
		{"-", "statements: []", FormatYAML},
		{"-", "", FormatNotation},
	}
	for _, tt := range tests {
		if got := Detect(tt.name, []byte(tt.data)); got != tt.want {
			t.Errorf("Detect(%q, %q) = %v, want %v", tt.name, tt.data, got, tt.want)
		}
	}

	for _, s := range []string{"auto", "json", "yaml", "notation"} {
		f, err := ParseFormat(s)
		if err != nil || f.String() != s {
			t.Errorf("ParseFormat(%q) = %v, %v", s, f, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestIsIdent(t *testing.T) {
	for _, s := range []string{"x", "_tmp", "Point2"} {
		if !IsIdent(s) {
			t.Errorf("IsIdent(%q) = false", s)
		}
	}
	for _, s := range []string{"", "2x", "a-b", "a b"} {
		if IsIdent(s) {
			t.Errorf("IsIdent(%q) = true", s)
		}
	}
}
