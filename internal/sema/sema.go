package sema

import (
	"github.com/mint-lang/mint/internal/ast"
	"github.com/mint-lang/mint/internal/diagnostics"
)

type sema struct {
	collector *diagnostics.Collector
}

func New(collector *diagnostics.Collector) *sema {
	return &sema{collector}
}

// Check validates the declared return type of every top-level function
// against the inferred type of its return statements. It stops at the first
// mismatch.
func (s *sema) Check(program *ast.Program) error {
	for _, fnDecl := range program.Functions() {
		err := s.checkFnDecl(fnDecl)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *sema) checkFnDecl(fnDecl *ast.FnDecl) error {
	env := buildEnv(fnDecl.Params)

	expected := VOID
	if fnDecl.HasRetType() {
		expected = TypeFromName(fnDecl.RetType)
	}

	// NOTE: only direct return statements are checked, nested functions are
	// left alone
	for _, stmt := range fnDecl.Body {
		ret, ok := stmt.(*ast.ReturnStmt)
		if !ok {
			continue
		}

		found := InferExprType(ret.Value, env)
		if mismatch(expected, found) {
			diag := diagnostics.New(
				diagnostics.TYPE_ERROR,
				"type error in '%s': expected '%s' but found '%s'",
				fnDecl.Name,
				expected,
				found,
			)
			if s.collector != nil {
				s.collector.ReportAndSave(diag)
			}
			return diag
		}
	}
	return nil
}

// a function without a declared return type, or a value inference could not
// resolve, never conflicts
func mismatch(expected, found Type) bool {
	return expected != VOID && expected.IsConcrete() && found.IsConcrete() && expected != found
}

// Env maps parameter names to their declared types. A fresh one is built for
// every function.
type Env map[string]Type

func buildEnv(params []*ast.Param) Env {
	env := make(Env, len(params))
	for _, param := range params {
		ty := UNKNOWN
		if param.HasType() {
			ty = TypeFromName(param.Type)
		}
		env[param.Name] = ty
	}
	return env
}

func InferExprType(expr ast.Expr, env Env) Type {
	switch e := expr.(type) {
	case *ast.NumberLit:
		if e.IsIntegral() {
			return I32
		}
		return F64
	case *ast.StringLit:
		return STRING
	case *ast.IdExpr:
		if ty, ok := env[e.Name]; ok {
			return ty
		}
		return UNKNOWN
	default:
		return UNKNOWN
	}
}
