package dudecheck

import (
	"fmt"
	"io"

	"github.com/kolkov/dudecheck/internal/ast"
	"github.com/kolkov/dudecheck/internal/astdoc"
	"github.com/kolkov/dudecheck/internal/semantic"
)

// Program represents a loaded program ready for analysis.
// It is safe for concurrent use; each call to Check uses an
// independent scope.
type Program struct {
	tree   *ast.Program
	format astdoc.Format
}

// Diagnostic describes the problem that stopped an analysis.
type Diagnostic struct {
	Warning bool   // Shadowing warning; otherwise an error
	Name    string // Offending variable name, empty for malformed trees
	Line    int    // 1-based line, 0 when the tree has no positions
	Column  int    // 1-based column
	Message string // Printed message, e.g. `Variable "y" used before definition.`
}

// String returns the message, prefixed with the position when known.
func (d *Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("%d:%d: %s", d.Line, d.Column, d.Message)
	}
	return d.Message
}

// Result is the verdict of one analysis.
type Result struct {
	// OK is false when an error was found.
	OK bool

	// Diagnostic is the problem that stopped the analysis, or nil.
	Diagnostic *Diagnostic

	// Analyzed is the number of top-level statements checked completely.
	Analyzed int

	// Declared is the number of names declared by the checked code.
	Declared int
}

// Check analyzes the program and returns the result without printing.
// If config is nil, default configuration is used.
func (p *Program) Check(config *Config) Result {
	cfg := resolveConfig(config)
	res := semantic.Run(p.tree, cfg.Logger)

	out := Result{OK: res.OK, Analyzed: res.Analyzed, Declared: res.Declared}
	if d := res.Diagnostic; d != nil {
		out.Diagnostic = &Diagnostic{
			Warning: d.Severity == semantic.SeverityWarning,
			Name:    d.Name,
			Line:    d.Pos.Line,
			Column:  d.Pos.Column,
			Message: d.Message,
		}
	}
	return out
}

// Analyze checks the program, prints the diagnostic (if any) as one line
// to config.Output, and reports whether the program passed.
// If config is nil, default configuration is used.
func (p *Program) Analyze(config *Config) bool {
	cfg := resolveConfig(config)
	res := p.Check(&cfg)
	if d := res.Diagnostic; d != nil {
		if cfg.ShowPositions {
			fmt.Fprintln(cfg.Output, d.String())
		} else {
			fmt.Fprintln(cfg.Output, d.Message)
		}
	}
	return res.OK
}

// Export writes the program as a "json" or "yaml" document.
func (p *Program) Export(w io.Writer, format string) error {
	f, err := astdoc.ParseFormat(format)
	if err != nil {
		return err
	}
	return astdoc.Encode(w, p.tree, f)
}

// Dump writes the program in the textual notation.
func (p *Program) Dump(w io.Writer) error {
	return ast.Fprint(w, p.tree)
}

// Filename returns the name the program was loaded from.
func (p *Program) Filename() string {
	return p.tree.Filename
}

// Format returns the name of the format the program was loaded from.
func (p *Program) Format() string {
	return p.format.String()
}

// Statements returns the number of top-level statements.
func (p *Program) Statements() int {
	return len(p.tree.Stmts)
}

// NodeCount returns the number of nodes in the syntax tree.
func (p *Program) NodeCount() int {
	return ast.CountNodes(p.tree)
}

func resolveConfig(config *Config) Config {
	var cfg Config
	if config != nil {
		cfg = *config
	}
	cfg.applyDefaults()
	return cfg
}
