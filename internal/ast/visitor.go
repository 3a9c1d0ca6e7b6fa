package ast

// Walk traverses an AST in depth-first order.
// For each node, it calls fn(node). If fn returns false,
// the children of that node are not visited.
//
// Example: Count all identifier references
//
//	count := 0
//	ast.Walk(program, func(n ast.Node) bool {
//	    if _, ok := n.(*ast.Ident); ok {
//	        count++
//	    }
//	    return true
//	})
//
// Declaration targets (AssignStmt.Var, ForStmt.Index, FuncStmt.Params) are
// visited as *Ident nodes too.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		walkStmts(n.Stmts, fn)

	// Expressions - atoms (no children)
	case *EmptyExpr, *NullLit, *NumLit, *BoolLit, *StrLit, *CharLit, *OperatorLit:

	case *Ident, *UnknownExpr:
		// no children

	case *CondExpr:
		walkExpr(n.Left, fn)
		walkExpr(n.Right, fn)

	case *NestedExpr:
		walkExpr(n.Expr, fn)

	case *ListExpr:
		for _, e := range n.Elems {
			walkExpr(e, fn)
		}

	case *SeqExpr:
		walkExpr(n.Start, fn)
		walkExpr(n.Stop, fn)
		walkExpr(n.Step, fn)

	// Statements
	case *AssignStmt:
		walkIdent(n.Var, fn)
		walkExpr(n.Value, fn)

	case *ReturnStmt:
		walkExpr(n.Value, fn)

	case *StructStmt, *UnknownStmt:
		// no children

	case *WhileStmt:
		walkExpr(n.Cond, fn)
		walkStmts(n.Body, fn)

	case *ForStmt:
		walkIdent(n.Index, fn)
		walkExpr(n.Seq, fn)
		walkStmts(n.Body, fn)

	case *FuncStmt:
		for _, p := range n.Params {
			walkIdent(p, fn)
		}
		walkStmts(n.Body, fn)

	case *IfStmt:
		walkExpr(n.IfCond, fn)
		walkExpr(n.ElifCond, fn)
		walkStmts(n.IfBody, fn)
		walkStmts(n.ElifBody, fn)
		walkStmts(n.ElseBody, fn)
	}
}

// walkExpr and walkIdent keep nil children from reaching Walk as
// non-nil interfaces holding nil pointers.
func walkExpr(e Expr, fn func(Node) bool) {
	if e != nil {
		Walk(e, fn)
	}
}

func walkIdent(id *Ident, fn func(Node) bool) {
	if id != nil {
		Walk(id, fn)
	}
}

func walkStmts(stmts []Stmt, fn func(Node) bool) {
	for _, s := range stmts {
		if s != nil {
			Walk(s, fn)
		}
	}
}
