package ast

import (
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"
)

// Printer renders AST nodes in the textual AST notation read by
// internal/parser, so printed programs can be loaded again.
type Printer struct {
	w      io.Writer
	indent int
	err    error
}

// NewPrinter creates a new Printer that writes to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes the notation form of node to the writer.
func (p *Printer) Print(node Node) error {
	p.printNode(node)
	return p.err
}

// Fprint is a convenience wrapper around NewPrinter(w).Print(node).
func Fprint(w io.Writer, node Node) error {
	return NewPrinter(w).Print(node)
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) writeIndent() {
	if p.err != nil {
		return
	}
	for i := 0; i < p.indent; i++ {
		_, p.err = io.WriteString(p.w, "    ")
	}
}

func (p *Printer) printNode(node Node) {
	if node == nil {
		p.printf("<nil>")
		return
	}

	switch n := node.(type) {
	case *Program:
		p.printProgram(n)
	case Expr:
		p.printExpr(n)
	case Stmt:
		p.printStmt(n)
	default:
		p.printf("<%T>", node)
	}
}

func (p *Printer) printProgram(prog *Program) {
	for _, s := range prog.Stmts {
		p.printStmt(s)
		p.printf("\n")
	}
}

func (p *Printer) printBody(stmts []Stmt) {
	if len(stmts) == 0 {
		p.printf("[]")
		return
	}
	p.printf("[\n")
	p.indent++
	for _, s := range stmts {
		p.writeIndent()
		p.printStmt(s)
		p.printf("\n")
	}
	p.indent--
	p.writeIndent()
	p.printf("]")
}

func (p *Printer) printIdentName(id *Ident) {
	if id == nil {
		p.printf("<nil>")
		return
	}
	p.printf("%s", id.Name)
}

func (p *Printer) printStmt(s Stmt) {
	if s == nil {
		p.printf("<nil>")
		return
	}

	switch n := s.(type) {
	case *AssignStmt:
		p.printf("(assign ")
		p.printIdentName(n.Var)
		p.printf(" ")
		p.printExpr(n.Value)
		p.printf(")")

	case *ReturnStmt:
		if n.Value == nil {
			p.printf("(return)")
			return
		}
		p.printf("(return ")
		p.printExpr(n.Value)
		p.printf(")")

	case *StructStmt:
		p.printf("(struct %s)", n.Name)

	case *WhileStmt:
		p.printf("(while ")
		p.printExpr(n.Cond)
		p.printf(" ")
		p.printBody(n.Body)
		p.printf(")")

	case *ForStmt:
		p.printf("(for ")
		p.printIdentName(n.Index)
		p.printf(" ")
		p.printExpr(n.Seq)
		p.printf(" ")
		p.printBody(n.Body)
		p.printf(")")

	case *FuncStmt:
		p.printf("(func %s [", n.Name)
		for i, param := range n.Params {
			if i > 0 {
				p.printf(" ")
			}
			p.printIdentName(param)
		}
		p.printf("] ")
		p.printBody(n.Body)
		p.printf(")")

	case *IfStmt:
		p.printIf(n)

	case *UnknownStmt:
		p.printf("(%s)", n.Kind)

	default:
		p.printf("<%T>", s)
	}
}

func (p *Printer) printIf(n *IfStmt) {
	p.printf("(if ")
	p.printExpr(n.IfCond)
	p.printf(" ")
	p.printBody(n.IfBody)

	_, emptyElif := n.ElifCond.(*EmptyExpr)
	if !emptyElif || len(n.ElifBody) > 0 {
		p.printf(" (elif ")
		p.printExpr(n.ElifCond)
		p.printf(" ")
		p.printBody(n.ElifBody)
		p.printf(")")
	}
	if len(n.ElseBody) > 0 {
		p.printf(" (else ")
		p.printBody(n.ElseBody)
		p.printf(")")
	}
	p.printf(")")
}

func (p *Printer) printExpr(e Expr) {
	if e == nil {
		p.printf("<nil>")
		return
	}

	switch n := e.(type) {
	case *EmptyExpr:
		p.printf("(empty)")
	case *NullLit:
		p.printf("(null)")
	case *NumLit:
		if n.Raw != "" {
			p.printf("%s", n.Raw)
		} else {
			p.printf("%s", strconv.FormatFloat(n.Value, 'g', -1, 64))
		}
	case *BoolLit:
		p.printf("(bool %t)", n.Value)
	case *StrLit:
		p.printf("%s", strconv.Quote(n.Value))
	case *CharLit:
		r, _ := utf8.DecodeRuneInString(n.Value)
		p.printf("%s", strconv.QuoteRune(r))
	case *OperatorLit:
		p.printf("(op %s)", n.Op)
	case *Ident:
		p.printf("(ident %s)", n.Name)

	case *CondExpr:
		p.printf("(cond ")
		if n.Op != "" {
			p.printf("%s ", n.Op)
		}
		p.printExpr(n.Left)
		p.printf(" ")
		p.printExpr(n.Right)
		p.printf(")")

	case *NestedExpr:
		p.printf("(nested ")
		p.printExpr(n.Expr)
		p.printf(")")

	case *ListExpr:
		p.printf("(list")
		for _, el := range n.Elems {
			p.printf(" ")
			p.printExpr(el)
		}
		p.printf(")")

	case *SeqExpr:
		p.printf("(seq ")
		p.printExpr(n.Start)
		p.printf(" ")
		p.printExpr(n.Stop)
		p.printf(" ")
		p.printExpr(n.Step)
		p.printf(")")

	case *UnknownExpr:
		p.printf("(%s)", n.Kind)

	default:
		p.printf("<%T>", e)
	}
}
