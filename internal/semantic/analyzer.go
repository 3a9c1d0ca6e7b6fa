package semantic

import (
	"github.com/kolkov/dudecheck/internal/ast"
)

// AnalyzeExpr checks that every identifier referenced by e is declared in
// sc. It returns the first failing reference, or nil.
func AnalyzeExpr(e ast.Expr, sc *Scope) *Diagnostic {
	if e == nil {
		return nil
	}

	switch e := e.(type) {
	case *ast.EmptyExpr, *ast.NullLit, *ast.NumLit, *ast.BoolLit,
		*ast.StrLit, *ast.CharLit, *ast.OperatorLit:
		// Atoms carry no references

	case *ast.Ident:
		if !sc.Contains(e.Name) {
			return UseBeforeDefinition(e.Name, e.Pos())
		}

	case *ast.CondExpr:
		if d := AnalyzeExpr(e.Left, sc); d != nil {
			return d
		}
		return AnalyzeExpr(e.Right, sc)

	case *ast.NestedExpr:
		return AnalyzeExpr(e.Expr, sc)

	case *ast.ListExpr:
		for _, el := range e.Elems {
			if d := AnalyzeExpr(el, sc); d != nil {
				return d
			}
		}

	case *ast.SeqExpr:
		for _, part := range [...]ast.Expr{e.Start, e.Stop, e.Step} {
			if d := AnalyzeExpr(part, sc); d != nil {
				return d
			}
		}

	default:
		// Unmodeled kinds (*ast.UnknownExpr) are accepted as they are.
	}
	return nil
}

// AnalyzeStmt checks s against sc and declares the names s introduces.
// It returns the first diagnostic raised anywhere inside s, or nil.
func AnalyzeStmt(s ast.Stmt, sc *Scope) *Diagnostic {
	if s == nil {
		return nil
	}

	switch s := s.(type) {
	case *ast.AssignStmt:
		if s.Var == nil {
			return malformed(s.Pos(), "assignment without target")
		}
		// The target is visible to its own right-hand side: x = x passes.
		sc.Declare(s.Var.Name)
		return AnalyzeExpr(s.Value, sc)

	case *ast.ReturnStmt:
		return AnalyzeExpr(s.Value, sc)

	case *ast.StructStmt:
		// Contributes nothing to scope

	case *ast.WhileStmt:
		if d := AnalyzeExpr(s.Cond, sc); d != nil {
			return d
		}
		return analyzeBody(s.Body, sc)

	case *ast.ForStmt:
		if s.Index == nil {
			return malformed(s.Pos(), "for loop without index")
		}
		if d := declareFresh(s.Index, sc); d != nil {
			return d
		}
		if d := AnalyzeExpr(s.Seq, sc); d != nil {
			return d
		}
		return analyzeBody(s.Body, sc)

	case *ast.FuncStmt:
		for i, param := range s.Params {
			if param == nil {
				return malformed(s.Pos(), "function %q parameter %d is missing", s.Name, i+1)
			}
			if d := declareFresh(param, sc); d != nil {
				return d
			}
		}
		return analyzeBody(s.Body, sc)

	case *ast.IfStmt:
		return analyzeIf(s, sc)

	default:
		// Unmodeled kinds (*ast.UnknownStmt) are accepted as they are.
	}
	return nil
}

// analyzeIf checks both conditions before any body, whichever branch would
// run. Loaders represent an absent elif condition as *ast.EmptyExpr, so a
// nil condition means the tree was built incorrectly.
func analyzeIf(s *ast.IfStmt, sc *Scope) *Diagnostic {
	if s.IfCond == nil {
		return malformed(s.Pos(), "conditional without if condition")
	}
	if s.ElifCond == nil {
		return malformed(s.Pos(), "conditional without elif condition")
	}
	if d := AnalyzeExpr(s.IfCond, sc); d != nil {
		return d
	}
	if d := AnalyzeExpr(s.ElifCond, sc); d != nil {
		return d
	}
	for _, body := range [...][]ast.Stmt{s.IfBody, s.ElifBody, s.ElseBody} {
		if d := analyzeBody(body, sc); d != nil {
			return d
		}
	}
	return nil
}

// declareFresh declares id unless the name is already visible.
func declareFresh(id *ast.Ident, sc *Scope) *Diagnostic {
	if sc.Contains(id.Name) {
		return ShadowingOuterScope(id.Name, id.Pos())
	}
	sc.Declare(id.Name)
	return nil
}

// analyzeBody checks nested statements in the caller's scope.
func analyzeBody(stmts []ast.Stmt, sc *Scope) *Diagnostic {
	for _, st := range stmts {
		if d := AnalyzeStmt(st, sc); d != nil {
			return d
		}
	}
	return nil
}
