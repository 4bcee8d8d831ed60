package parser

import (
	"github.com/mint-lang/mint/internal/ast"
	"github.com/mint-lang/mint/internal/diagnostics"
	"github.com/mint-lang/mint/internal/lexer"
)

// ParseFrom parses src with a throwaway collector
func ParseFrom(src string) (*ast.Program, error) {
	collector := diagnostics.NewCollector()
	p := New(collector)
	return p.ParseSource([]byte(src))
}

// ParseExprFrom parses a single expression and fails if any token is left
// over
func ParseExprFrom(src string) (ast.Expr, error) {
	collector := diagnostics.NewCollector()
	p := New(collector)
	p.cursor = newCursor(lexer.New([]byte(src)).Tokenize())

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.cursor.isOutOfBound() {
		tok := p.cursor.peek()
		return nil, p.report(tok.Span, "unexpected token after expression: %s", tok.Name())
	}
	return expr, nil
}
