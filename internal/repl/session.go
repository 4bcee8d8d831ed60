package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/mint-lang/mint/internal/ast"
	"github.com/mint-lang/mint/internal/codegen/wasm"
	"github.com/mint-lang/mint/internal/diagnostics"
	"github.com/mint-lang/mint/internal/lexer"
	"github.com/mint-lang/mint/internal/parser"
	"github.com/mint-lang/mint/internal/sema"
)

var HELP_MESSAGE string = `Enter function declarations, they are checked and kept for the session.
Input spanning several lines is read until it parses.

Commands:
  :tokens <source>   Show the tokens of source with their spans
  :ast               Show the session program
  :wasm              Compile the session and show the module bytes
  :reset             Forget every function of the session
  :help              Show this message
  :quit, :exit       Leave the REPL
`

// Session holds the functions accepted so far. Every input is parsed and
// checked on its own, then appended to the session program.
type Session struct {
	statements []ast.Stmt

	out       io.Writer
	errOut    io.Writer
	collector *diagnostics.Collector
}

func NewSession(out, errOut io.Writer) *Session {
	return &Session{
		statements: nil,
		out:        out,
		errOut:     errOut,
		collector:  diagnostics.NewCollectorWithOutput(errOut),
	}
}

func (s *Session) Program() *ast.Program {
	return ast.NewProgram(s.statements)
}

// Eval runs one input, either a command or source. It returns true once the
// user asks to leave.
func (s *Session) Eval(input string) (exit bool) {
	defer s.collector.Reset()

	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}
	if strings.HasPrefix(input, ":") {
		return s.command(input)
	}

	program, err := parser.New(s.collector).ParseSource([]byte(input))
	if err != nil {
		return false
	}
	if len(program.Statements) == 0 {
		fmt.Fprintln(s.errOut, "nothing to evaluate, only function declarations are accepted")
		return false
	}
	fmt.Fprint(s.out, ast.Pretty(program))

	if err := sema.New(s.collector).Check(program); err != nil {
		return false
	}

	s.statements = append(s.statements, program.Statements...)
	fmt.Fprintf(s.out, "ok, %d function(s) in session\n", len(s.Program().Functions()))
	return false
}

func (s *Session) command(input string) (exit bool) {
	name, arg, _ := strings.Cut(input, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(name) {
	case ":quit", ":exit":
		return true
	case ":help":
		fmt.Fprint(s.out, HELP_MESSAGE)
	case ":tokens":
		for _, tok := range lexer.New([]byte(arg)).Tokenize() {
			fmt.Fprintln(s.out, tok)
		}
	case ":ast":
		fmt.Fprint(s.out, ast.Pretty(s.Program()))
	case ":wasm":
		module, err := wasm.NewCG(s.Program(), s.collector).Generate()
		if err != nil {
			return false
		}
		fmt.Fprintf(s.out, "% x\n", module)
	case ":reset":
		s.statements = nil
		fmt.Fprintln(s.out, "session cleared")
	default:
		fmt.Fprintf(s.errOut, "unknown command '%s', type :help for the list\n", name)
	}
	return false
}
