// Package compiler drives a source through every stage: lexing, parsing,
// printing, type checking and code generation. The first failing stage stops
// the run.
package compiler

import (
	"fmt"
	"io"
	"os"

	"github.com/mint-lang/mint/internal/ast"
	"github.com/mint-lang/mint/internal/codegen/wasm"
	"github.com/mint-lang/mint/internal/config"
	"github.com/mint-lang/mint/internal/diagnostics"
	"github.com/mint-lang/mint/internal/lexer"
	"github.com/mint-lang/mint/internal/lexer/token"
	"github.com/mint-lang/mint/internal/parser"
	"github.com/mint-lang/mint/internal/sema"
)

const AST_HEADER = "=== AST ==="

// Generator turns a checked program into the bytes of an output file
type Generator func(program *ast.Program, collector *diagnostics.Collector) ([]byte, error)

type Options struct {
	// AST receives the header and the pretty-printed program once parsing
	// succeeds. Nil prints nothing.
	AST io.Writer
	// Generate defaults to the WASM back end
	Generate Generator
}

type Result struct {
	Tokens  []*token.Token
	Program *ast.Program
	Pretty  string
	Module  []byte
}

func GenerateWasm(program *ast.Program, collector *diagnostics.Collector) ([]byte, error) {
	return wasm.NewCG(program, collector).Generate()
}

func CompileFile(path string, opts Options, collector *diagnostics.Collector) (*Result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Compile(src, opts, collector)
}

func Compile(src []byte, opts Options, collector *diagnostics.Collector) (*Result, error) {
	result := new(Result)

	result.Tokens = lexer.New(src).Tokenize()
	if config.DEV {
		fmt.Printf("[DEV MODE] lexed %d tokens\n", len(result.Tokens))
	}

	p := parser.New(collector)
	program, err := p.Parse(result.Tokens)
	if err != nil {
		return nil, err
	}
	result.Program = program
	if config.DEV {
		fmt.Printf("[DEV MODE] parsed %d statements\n", len(program.Statements))
	}

	result.Pretty = ast.Pretty(program)
	if opts.AST != nil {
		fmt.Fprintln(opts.AST, AST_HEADER)
		fmt.Fprint(opts.AST, result.Pretty)
	}

	sema := sema.New(collector)
	err = sema.Check(program)
	if err != nil {
		return nil, err
	}

	generate := opts.Generate
	if generate == nil {
		generate = GenerateWasm
	}
	module, err := generate(program, collector)
	if err != nil {
		return nil, err
	}
	result.Module = module
	if config.DEV {
		fmt.Printf("[DEV MODE] generated %d bytes\n", len(module))
	}

	return result, nil
}
