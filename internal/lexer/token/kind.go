package token

import "log"

type Kind int

const (
	// EOF ends the stream, Tokenize leaves it out
	EOF Kind = iota

	// Identifier
	ID

	// Literals
	NUMBER_LITERAL
	STRING_LITERAL

	// Keywords
	FN
	RETURN
	CONTRACT
	IF
	ELSE

	// Any single character without a dedicated kind, such as + : ,
	SYMBOL

	// ->
	ARROW

	// {
	OPEN_CURLY
	// }
	CLOSE_CURLY

	// (
	OPEN_PAREN
	// )
	CLOSE_PAREN

	// ;
	SEMICOLON
)

// NOTE: "contract", "if" and "else" are reserved but have no grammar
// production yet
var KEYWORDS map[string]Kind = map[string]Kind{
	"contract": CONTRACT,
	"fn":       FN,
	"return":   RETURN,
	"if":       IF,
	"else":     ELSE,
}

var LITERAL_KIND map[Kind]bool = map[Kind]bool{
	NUMBER_LITERAL: true,
	STRING_LITERAL: true,
}

func (kind Kind) IsKeyword() bool {
	switch kind {
	case FN, RETURN, CONTRACT, IF, ELSE:
		return true
	}
	return false
}

func (kind Kind) IsLiteral() bool {
	_, ok := LITERAL_KIND[kind]
	return ok
}

func (kind Kind) String() string {
	switch kind {
	case EOF:
		return "end of input"
	case ID:
		return "identifier"
	case NUMBER_LITERAL:
		return "number"
	case STRING_LITERAL:
		return "string literal"
	case FN:
		return "fn"
	case RETURN:
		return "return"
	case CONTRACT:
		return "contract"
	case IF:
		return "if"
	case ELSE:
		return "else"
	case SYMBOL:
		return "symbol"
	case ARROW:
		return "->"
	case OPEN_CURLY:
		return "{"
	case CLOSE_CURLY:
		return "}"
	case OPEN_PAREN:
		return "("
	case CLOSE_PAREN:
		return ")"
	case SEMICOLON:
		return ";"
	default:
		log.Fatalf("String() method not defined for the following token kind '%d'", kind)
	}
	return ""
}
