// Package dudecheck checks dude programs for scope errors.
//
// A program is loaded from its abstract syntax tree, stored either as a
// JSON or YAML document or in the textual notation, and then analyzed
// statement by statement with one flat scope. The first diagnostic stops
// the analysis:
//   - a name read before any declaration is an error and fails the check
//   - a for-loop index or function parameter reusing a declared name is a
//     warning; the check stops but succeeds
//
// # Quick Start
//
//	prog, err := dudecheck.LoadFile("main.json", "auto")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !prog.Analyze(nil) {
//	    os.Exit(1)
//	}
//
// [Program.Analyze] prints the diagnostic message, e.g.
//
//	Variable "y" used before definition.
//
// and reports the verdict. [Program.Check] returns the full [Result]
// without printing anything.
//
// # Configuration
//
// The [Config] type controls output and logging. It can be read from a
// TOML file with [LoadConfig].
//
// # Error Handling
//
// Loading errors are returned as specific types:
//   - [ParseError]: syntax errors in notation source
//   - [DecodeError]: structural problems in a JSON or YAML document; all
//     problems of a document are combined into one error
//
// # Thread Safety
//
// Loaded [Program] values are never modified. Each call to
// [Program.Check] uses its own scope, so a program can be checked from
// several goroutines at once.
package dudecheck
