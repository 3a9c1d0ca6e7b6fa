// Package lexer defines the token rules of the textual AST notation.
//
// The notation is an s-expression form of a dude program:
//
//	; comment
//	(assign x 0)
//	(for i (seq 0 10 1) [ (assign y (ident i)) ])
//
// Rules are tried in order, so Number wins over Operator for "-1".
package lexer

import (
	"strings"

	plexer "github.com/alecthomas/participle/v2/lexer"

	"github.com/kolkov/dudecheck/internal/token"
)

// Token kind names, as used in grammar rules.
const (
	Comment    = "Comment"
	Whitespace = "Whitespace"
	String     = "String"
	Char       = "Char"
	Number     = "Number"
	Ident      = "Ident"
	Operator   = "Operator"
	Punct      = "Punct"
)

// Definition is the participle lexer for the notation.
var Definition = plexer.MustSimple([]plexer.SimpleRule{
	{Name: Comment, Pattern: `;[^\n]*`},
	{Name: Whitespace, Pattern: `[ \t\r\n]+`},
	{Name: String, Pattern: `"(\\.|[^"\\])*"`},
	{Name: Char, Pattern: `'(\\.|[^'\\])'`},
	{Name: Number, Pattern: `[-+]?\d+(\.\d+)?([eE][-+]?\d+)?`},
	{Name: Ident, Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: Operator, Pattern: `[-+*/%<>=!&|^.~]+`},
	{Name: Punct, Pattern: `[()\[\]]`},
})

// Elided lists the token kinds the parser skips.
var Elided = []string{Comment, Whitespace}

// Token is a lexed notation token.
type Token struct {
	Kind  string
	Value string
	Pos   token.Position
}

// Tokenize splits src into tokens, dropping comments and whitespace.
// The trailing EOF token is not included.
func Tokenize(filename, src string) ([]Token, error) {
	lex, err := Definition.Lex(filename, strings.NewReader(src))
	if err != nil {
		return nil, err
	}
	raw, err := plexer.ConsumeAll(lex)
	if err != nil {
		return nil, err
	}

	names := make(map[plexer.TokenType]string)
	for name, typ := range Definition.Symbols() {
		names[typ] = name
	}

	toks := make([]Token, 0, len(raw))
	for _, t := range raw {
		if t.EOF() {
			break
		}
		kind := names[t.Type]
		if kind == Comment || kind == Whitespace {
			continue
		}
		toks = append(toks, Token{Kind: kind, Value: t.Value, Pos: Position(t.Pos)})
	}
	return toks, nil
}

// Position converts a participle position to a token.Position.
func Position(p plexer.Position) token.Position {
	return token.Position{
		Filename: p.Filename,
		Line:     p.Line,
		Column:   p.Column,
		Offset:   p.Offset,
	}
}
