package diagnostics

import (
	"fmt"

	"github.com/mint-lang/mint/internal/lexer/token"
)

type DiagKind int

const (
	PARSE_ERROR DiagKind = iota
	TYPE_ERROR
	COMPILE_ERROR
)

func (kind DiagKind) String() string {
	switch kind {
	case PARSE_ERROR:
		return "ParseError"
	case TYPE_ERROR:
		return "TypeError"
	case COMPILE_ERROR:
		return "CompileError"
	}
	return "unknown"
}

// Diag is the error value of every stage. Span is kept for tools, the
// rendered message never mentions it.
type Diag struct {
	Kind    DiagKind
	Message string
	Span    token.Span
}

func New(kind DiagKind, format string, args ...any) *Diag {
	return &Diag{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NewAt(kind DiagKind, span token.Span, format string, args ...any) *Diag {
	diag := New(kind, format, args...)
	diag.Span = span
	return diag
}

func (diag *Diag) Error() string {
	return fmt.Sprintf("[%s] %s", diag.Kind, diag.Message)
}
