package token

import (
	"fmt"
	"unicode/utf8"
)

type Token struct {
	Lexeme string
	Kind   Kind
	Span   Span
}

func New(lexeme string, kind Kind, span Span) *Token {
	return &Token{Lexeme: lexeme, Kind: kind, Span: span}
}

// Name is the text used when the token shows up in a diagnostic
func (token *Token) Name() string {
	switch token.Kind {
	case ID, NUMBER_LITERAL:
		return fmt.Sprintf("%s '%s'", token.Kind, token.Lexeme)
	case STRING_LITERAL:
		return fmt.Sprintf("%s \"%s\"", token.Kind, token.Lexeme)
	case SYMBOL:
		return fmt.Sprintf("symbol '%s'", token.Lexeme)
	case EOF:
		return token.Kind.String()
	}
	return fmt.Sprintf("'%s'", token.Kind)
}

// Symbol returns the character carried by a SYMBOL token, or utf8.RuneError
// for any other kind
func (token *Token) Symbol() rune {
	if token.Kind != SYMBOL {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(token.Lexeme)
	return r
}

// IsSymbol reports whether the token stands for the punctuation character
// sym, either as its dedicated kind or as a generic symbol
func (token *Token) IsSymbol(sym rune) bool {
	switch {
	case sym == '{' && token.Kind == OPEN_CURLY,
		sym == '}' && token.Kind == CLOSE_CURLY,
		sym == '(' && token.Kind == OPEN_PAREN,
		sym == ')' && token.Kind == CLOSE_PAREN:
		return true
	}
	return token.Kind == SYMBOL && token.Symbol() == sym
}

func (token *Token) String() string {
	return fmt.Sprintf("%s | %s | %s", token.Lexeme, token.Kind, token.Span)
}
