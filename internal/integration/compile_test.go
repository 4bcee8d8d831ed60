package integration

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mint-lang/mint/internal/codegen/wasm"
	"github.com/mint-lang/mint/internal/compiler"
	"github.com/mint-lang/mint/internal/diagnostics"
	"github.com/mint-lang/mint/internal/parser"
)

func compileFile(t *testing.T, path string) (*wasm.Module, *compiler.Result) {
	t.Helper()

	collector := diagnostics.NewCollector()
	result, err := compiler.CompileFile(path, compiler.Options{}, collector)
	if err != nil {
		t.Fatalf("unexpected errors: %v", collector.Diags)
	}
	module, err := wasm.Decode(result.Module)
	if err != nil {
		t.Fatalf("generated module does not decode: %v", err)
	}
	return module, result
}

func exportedBody(module *wasm.Module) string {
	instrs := make([]string, len(module.Body))
	for i, instr := range module.Body {
		instrs[i] = instr.String()
	}
	return strings.Join(instrs, "; ")
}

func TestCompileIdentity(t *testing.T) {
	module, _ := compileFile(t, "testdata/identity.mint")

	if module.Exports[0].Name != "id" {
		t.Errorf("expected export 'id', got %q", module.Exports[0].Name)
	}
	if module.Signature() != "(i32) -> (i32)" {
		t.Errorf("unexpected signature %s", module.Signature())
	}
	if body := exportedBody(module); body != "local.get 0; end" {
		t.Errorf("unexpected body %q", body)
	}
}

func TestCompileConstant(t *testing.T) {
	module, _ := compileFile(t, "testdata/constant.mint")

	if module.Signature() != "() -> (i32)" {
		t.Errorf("unexpected signature %s", module.Signature())
	}
	if body := exportedBody(module); body != "i32.const 5; end" {
		t.Errorf("unexpected body %q", body)
	}
}

func TestCompileFirstEligible(t *testing.T) {
	module, _ := compileFile(t, "testdata/first_eligible.mint")

	if module.Exports[0].Name != "pick" {
		t.Errorf("expected export 'pick', got %q", module.Exports[0].Name)
	}
	if module.Signature() != "(i32, i32, i32) -> (i32)" {
		t.Errorf("unexpected signature %s", module.Signature())
	}
	if body := exportedBody(module); body != "local.get 1; end" {
		t.Errorf("unexpected body %q", body)
	}
}

func TestCompileSkipsNestedFunctions(t *testing.T) {
	module, result := compileFile(t, "testdata/nested.mint")

	if module.Exports[0].Name != "after" {
		t.Errorf("expected export 'after', got %q", module.Exports[0].Name)
	}
	if len(result.Program.Functions()) != 2 {
		t.Errorf("expected 2 top-level functions, got %d", len(result.Program.Functions()))
	}
}

func TestPrettyOutputReparses(t *testing.T) {
	for _, path := range []string{"testdata/identity.mint", "testdata/first_eligible.mint", "testdata/nested.mint"} {
		t.Run(path, func(t *testing.T) {
			_, result := compileFile(t, path)

			reparsed, err := parser.ParseFrom(result.Pretty)
			if err != nil {
				t.Fatalf("pretty output does not parse: %v\n%s", err, result.Pretty)
			}
			again, err := compiler.Compile([]byte(result.Pretty), compiler.Options{}, diagnostics.NewCollector())
			if err != nil {
				t.Fatalf("pretty output does not compile: %v", err)
			}
			if len(reparsed.Statements) != len(result.Program.Statements) {
				t.Errorf("expected %d statements, got %d", len(result.Program.Statements), len(reparsed.Statements))
			}
			if !bytes.Equal(again.Module, result.Module) {
				t.Errorf("pretty output compiles to a different module")
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		path    string
		kind    diagnostics.DiagKind
		message string
	}{
		{"testdata/errors/bad_syntax.mint", diagnostics.PARSE_ERROR, "expected symbol ')' but found '->'"},
		{"testdata/errors/type_mismatch.mint", diagnostics.TYPE_ERROR, "type error in 'greet': expected 'i32' but found 'string'"},
		{"testdata/errors/no_eligible.mint", diagnostics.COMPILE_ERROR, "no function can be compiled"},
	}

	for _, test := range tests {
		t.Run(test.path, func(t *testing.T) {
			collector := diagnostics.NewCollector()
			result, err := compiler.CompileFile(test.path, compiler.Options{}, collector)
			if err == nil {
				t.Fatalf("expected errors, got none")
			}
			if result != nil {
				t.Errorf("expected no result on failure")
			}

			var diag *diagnostics.Diag
			if !errors.As(err, &diag) {
				t.Fatalf("expected *diagnostics.Diag, got %T", err)
			}
			if diag.Kind != test.kind {
				t.Errorf("expected %s, got %s", test.kind, diag.Kind)
			}
			if !strings.Contains(diag.Message, test.message) {
				t.Errorf("expected message to contain %q, got %q", test.message, diag.Message)
			}
			if len(collector.Diags) != 1 {
				t.Errorf("expected a single diag, got %v", collector.Diags)
			}
		})
	}
}
