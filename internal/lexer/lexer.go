package lexer

import (
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/mint-lang/mint/internal/lexer/token"
)

const eof = utf8.RuneError

// Lexer is a single forward cursor over the source. It has no error state:
// every character ends up in some token and malformed input is left for the
// parser to reject.
type Lexer struct {
	src    []byte
	offset int
}

func New(src []byte) *Lexer {
	lexer := new(Lexer)
	lexer.src = src
	lexer.offset = 0
	return lexer
}

func NewFromFilePath(path string) (*Lexer, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(src), nil
}

// Tokenize lexes the whole source from the start. The EOF token that ends
// the stream is not part of the result.
func (lex *Lexer) Tokenize() []*token.Token {
	lex.offset = 0

	var tokens []*token.Token
	for {
		tok := lex.Next()
		if tok.Kind == token.EOF {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func (lex *Lexer) Next() *token.Token {
	for {
		lex.skipWhitespace()

		start := lex.offset
		character := lex.peekChar()
		if character == eof && lex.atEnd() {
			return token.New("", token.EOF, token.NewSpan(start, start))
		}

		if character == '/' && lex.peekCharAt(1) == '/' {
			lex.skipLineComment()
			continue
		}

		return lex.getToken(character, start)
	}
}

func (lex *Lexer) getToken(ch rune, start int) *token.Token {
	tok := new(token.Token)

	switch ch {
	case '"':
		lex.getStringLit(tok)
	case '-':
		lex.nextChar() // -
		if lex.peekChar() == '>' {
			lex.nextChar() // >
			tok.Kind = token.ARROW
			tok.Lexeme = "->"
			break
		}
		tok.Kind = token.SYMBOL
		tok.Lexeme = "-"
	case '{':
		lex.consumeTokenNoLex(tok, token.OPEN_CURLY)
	case '}':
		lex.consumeTokenNoLex(tok, token.CLOSE_CURLY)
	case '(':
		lex.consumeTokenNoLex(tok, token.OPEN_PAREN)
	case ')':
		lex.consumeTokenNoLex(tok, token.CLOSE_PAREN)
	case ';':
		lex.consumeTokenNoLex(tok, token.SEMICOLON)
	default:
		if ch >= '0' && ch <= '9' {
			lex.getNumberLit(tok)
		} else if isAlphabetic(ch) || ch == '_' {
			lex.getIdOrKeyword(tok)
		} else {
			lex.nextChar()
			tok.Kind = token.SYMBOL
			tok.Lexeme = string(lex.src[start:lex.offset])
		}
	}

	tok.Span = token.NewSpan(start, lex.offset)
	return tok
}

// NOTE: no escape sequences, the literal is everything up to the next quote.
// An unterminated literal runs to the end of the input.
func (lex *Lexer) getStringLit(tok *token.Token) {
	lex.nextChar() // "

	start := lex.offset
	for !lex.atEnd() && lex.peekChar() != '"' {
		lex.nextChar()
	}
	str := lex.src[start:lex.offset]

	if !lex.atEnd() {
		lex.nextChar() // "
	}

	tok.Kind = token.STRING_LITERAL
	tok.Lexeme = string(str)
}

func (lex *Lexer) getNumberLit(tok *token.Token) {
	number := lex.readWhile(func(ch rune) bool {
		return (ch >= '0' && ch <= '9') || ch == '.'
	})
	tok.Kind = token.NUMBER_LITERAL
	tok.Lexeme = string(number)
}

func (lex *Lexer) getIdOrKeyword(tok *token.Token) {
	identifier := lex.readWhile(func(ch rune) bool {
		return isAlphabetic(ch) || unicode.IsNumber(ch) || ch == '_'
	})
	tok.Kind = token.ID
	tok.Lexeme = string(identifier)
	keyword, ok := token.KEYWORDS[tok.Lexeme]
	if ok {
		tok.Kind = keyword
	}
}

// isAlphabetic covers letters, letter numbers such as Ⅻ and the other
// alphabetic marks
func isAlphabetic(ch rune) bool {
	return unicode.In(ch, unicode.L, unicode.Nl, unicode.Other_Alphabetic)
}

func (lex *Lexer) consumeTokenNoLex(tok *token.Token, kind token.Kind) {
	lex.nextChar()
	tok.Kind = kind
	tok.Lexeme = kind.String()
}

func (lex *Lexer) skipWhitespace() {
	lex.readWhile(unicode.IsSpace)
}

// consumes up to, not including, the newline
func (lex *Lexer) skipLineComment() {
	lex.readWhile(func(ch rune) bool { return ch != '\n' })
}

func (lex *Lexer) readWhile(isValid func(rune) bool) []byte {
	start := lex.offset
	for !lex.atEnd() {
		if !isValid(lex.peekChar()) {
			break
		}
		lex.nextChar()
	}
	return lex.src[start:lex.offset]
}

func (lex *Lexer) atEnd() bool {
	return lex.offset >= len(lex.src)
}

func (lex *Lexer) nextChar() rune {
	if lex.atEnd() {
		return eof
	}
	character, size := utf8.DecodeRune(lex.src[lex.offset:])
	lex.offset += size
	return character
}

func (lex *Lexer) peekChar() rune {
	if lex.atEnd() {
		return eof
	}
	character, _ := utf8.DecodeRune(lex.src[lex.offset:])
	return character
}

func (lex *Lexer) peekCharAt(n int) rune {
	offset := lex.offset
	for i := 0; i < n && offset < len(lex.src); i++ {
		_, size := utf8.DecodeRune(lex.src[offset:])
		offset += size
	}
	if offset >= len(lex.src) {
		return eof
	}
	character, _ := utf8.DecodeRune(lex.src[offset:])
	return character
}
