package token

import "fmt"

// Span is the half-open byte interval [Start, End) a token was read from
type Span struct {
	Start, End int
}

func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

func (span Span) Len() int { return span.End - span.Start }

func (span Span) String() string {
	return fmt.Sprintf("[%d:%d]", span.Start, span.End)
}
