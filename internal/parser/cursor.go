package parser

import (
	"github.com/mint-lang/mint/internal/lexer/token"
)

// cursor is an index into a token array that is never modified. Peeking
// past the last token yields an EOF token.
type cursor struct {
	offset int
	tokens []*token.Token
	eof    *token.Token
}

func newCursor(tokens []*token.Token) *cursor {
	end := 0
	if len(tokens) > 0 {
		end = tokens[len(tokens)-1].Span.End
	}
	return &cursor{
		offset: 0,
		tokens: tokens,
		eof:    token.New("", token.EOF, token.NewSpan(end, end)),
	}
}

func (cursor *cursor) peek() *token.Token {
	if cursor.isOutOfBound() {
		return cursor.eof
	}
	return cursor.tokens[cursor.offset]
}

func (cursor *cursor) next() *token.Token {
	token := cursor.peek()
	if !cursor.isOutOfBound() {
		cursor.offset++
	}
	return token
}

func (cursor *cursor) skip() {
	cursor.next()
}

func (cursor *cursor) nextIs(expectedKind token.Kind) bool {
	token := cursor.peek()
	return token.Kind == expectedKind
}

func (cursor *cursor) nextIsSymbol(sym rune) bool {
	return cursor.peek().IsSymbol(sym)
}

func (cursor *cursor) isOutOfBound() bool {
	return cursor.offset >= len(cursor.tokens)
}
