package compiler

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mint-lang/mint/internal/ast"
	"github.com/mint-lang/mint/internal/diagnostics"
)

func TestCompilePrintsASTBeforeChecking(t *testing.T) {
	var out bytes.Buffer
	_, err := Compile([]byte("fn greet() -> i32 { return \"hello\"; }"), Options{AST: &out}, diagnostics.NewCollector())

	var diag *diagnostics.Diag
	if !errors.As(err, &diag) || diag.Kind != diagnostics.TYPE_ERROR {
		t.Fatalf("expected a type error, got %v", err)
	}

	expected := AST_HEADER + "\nfn greet() -> i32 {\n  return \"hello\";\n}\n\n"
	if out.String() != expected {
		t.Errorf("expected AST output %q, got %q", expected, out.String())
	}
}

func TestCompileStopsAtFirstFailingStage(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		kind      diagnostics.DiagKind
		printsAST bool
	}{
		{"parse", "fn f( { }", diagnostics.PARSE_ERROR, false},
		{"type", "fn f() -> f64 { return \"s\"; }", diagnostics.TYPE_ERROR, true},
		{"compile", "fn f() -> f64 { return 1.5; }", diagnostics.COMPILE_ERROR, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var out bytes.Buffer
			var stderr bytes.Buffer
			collector := diagnostics.NewCollectorWithOutput(&stderr)

			result, err := Compile([]byte(test.src), Options{AST: &out}, collector)
			if err == nil {
				t.Fatalf("expected an error, got %+v", result)
			}
			if result != nil {
				t.Errorf("expected no result on failure")
			}

			var diag *diagnostics.Diag
			if !errors.As(err, &diag) || diag.Kind != test.kind {
				t.Fatalf("expected %s, got %v", test.kind, err)
			}
			if len(collector.Diags) != 1 {
				t.Errorf("expected exactly one diag, got %d", len(collector.Diags))
			}
			if strings.Count(stderr.String(), "\n") != 1 || !strings.HasPrefix(stderr.String(), "["+test.kind.String()+"]") {
				t.Errorf("expected a single tagged line, got %q", stderr.String())
			}
			if printed := out.Len() > 0; printed != test.printsAST {
				t.Errorf("expected AST printed to be %v, output %q", test.printsAST, out.String())
			}
		})
	}
}

func TestCompileUsesGivenGenerator(t *testing.T) {
	var seen *ast.Program
	generate := func(program *ast.Program, collector *diagnostics.Collector) ([]byte, error) {
		seen = program
		return []byte("ir"), nil
	}

	result, err := Compile([]byte("fn id(x: i32) -> i32 { return x; }"), Options{Generate: generate}, diagnostics.NewCollector())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen != result.Program {
		t.Errorf("expected the generator to receive the parsed program")
	}
	if string(result.Module) != "ir" {
		t.Errorf("expected generator output, got %q", result.Module)
	}
	if len(result.Tokens) != 14 {
		t.Errorf("expected 14 tokens, got %d", len(result.Tokens))
	}
}

func TestCompileFileMissing(t *testing.T) {
	if _, err := CompileFile("testdata/does-not-exist.mint", Options{}, diagnostics.NewCollector()); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}
