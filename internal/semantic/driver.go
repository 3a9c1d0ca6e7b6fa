package semantic

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/kolkov/dudecheck/internal/ast"
)

// Outcome tells the driver what to do after a statement was analyzed.
type Outcome int

const (
	Continue    Outcome = iota // No diagnostic, go on with the next statement
	HaltSuccess                // Warning raised: stop, report success
	HaltFailure                // Error raised: stop, report failure
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case HaltSuccess:
		return "halt-success"
	case HaltFailure:
		return "halt-failure"
	default:
		return "unknown"
	}
}

// Result is the verdict of one analysis run.
type Result struct {
	// OK is false only when an error-severity diagnostic was raised.
	OK bool

	// Diagnostic is the first diagnostic raised, nil when the whole
	// program was analyzed cleanly.
	Diagnostic *Diagnostic

	// Analyzed is the number of top-level statements fully analyzed.
	Analyzed int

	// Declared is the number of declarations recorded in the scope.
	Declared int
}

// Run analyzes the top-level statements of prog in order with one fresh
// scope and stops at the first diagnostic. A warning stops the run too,
// but leaves it successful. log may be nil.
func Run(prog *ast.Program, log *zap.Logger) Result {
	if log == nil {
		log = zap.NewNop()
	}
	sc := NewScope()
	res := Result{OK: true}

	log.Debug("analysis started",
		zap.String("file", prog.Filename),
		zap.Int("statements", len(prog.Stmts)))

	for _, st := range prog.Stmts {
		d := AnalyzeStmt(st, sc)
		switch d.Outcome() {
		case Continue:
			res.Analyzed++
			continue
		case HaltSuccess:
			res.OK = true
		case HaltFailure:
			res.OK = false
		}
		res.Diagnostic = d
		log.Debug("diagnostic raised",
			zap.Stringer("severity", d.Severity),
			zap.Stringer("kind", d.Kind),
			zap.String("name", d.Name),
			zap.Stringer("pos", d.Pos))
		break
	}

	res.Declared = sc.Len()
	log.Debug("analysis finished",
		zap.Bool("ok", res.OK),
		zap.Int("analyzed", res.Analyzed),
		zap.Int("declared", res.Declared))
	return res
}

// Analyze runs the checker on prog, prints the message of the first
// diagnostic (if any) as one line to w, and reports success.
func Analyze(prog *ast.Program, w io.Writer) bool {
	res := Run(prog, nil)
	if res.Diagnostic != nil {
		fmt.Fprintln(w, res.Diagnostic.Message)
	}
	return res.OK
}
