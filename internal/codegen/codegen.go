// Package codegen finds the one function a back end is able to translate.
//
// The accepted shape is narrow: the function returns i32, every parameter is
// i32 or untyped, and the body is a single return of either a parameter or a
// non-negative integer constant.
package codegen

import (
	"math"

	"github.com/mint-lang/mint/internal/ast"
	"github.com/mint-lang/mint/internal/diagnostics"
)

const I32_TYPE_NAME = "i32"

const SHAPE_DESCRIPTION = "fn <name>(<params: i32 or untyped>) -> i32 { return <param or non-negative integer>; }"

type ReturnKind int

const (
	RETURN_PARAM ReturnKind = iota
	RETURN_CONST
)

func (kind ReturnKind) String() string {
	switch kind {
	case RETURN_PARAM:
		return "param"
	case RETURN_CONST:
		return "const"
	}
	return "unknown"
}

// Entry is the function picked for emission
type Entry struct {
	Name       string
	ParamCount int
	Kind       ReturnKind
	ParamIndex int   // RETURN_PARAM
	Const      int32 // RETURN_CONST
}

// FindEntry scans top-level functions in declaration order and returns the
// first one with the compilable shape.
func FindEntry(program *ast.Program) (*Entry, error) {
	for _, fnDecl := range program.Functions() {
		if entry, ok := matchFn(fnDecl); ok {
			return entry, nil
		}
	}
	return nil, diagnostics.New(
		diagnostics.COMPILE_ERROR,
		"no function can be compiled, expected the shape %s",
		SHAPE_DESCRIPTION,
	)
}

func matchFn(fnDecl *ast.FnDecl) (*Entry, bool) {
	if fnDecl.RetType != I32_TYPE_NAME || len(fnDecl.Body) != 1 {
		return nil, false
	}

	// NOTE: untyped parameters are taken as i32 here, while the type checker
	// treats them as unknown
	for _, param := range fnDecl.Params {
		if param.HasType() && param.Type != I32_TYPE_NAME {
			return nil, false
		}
	}

	ret, ok := fnDecl.Body[0].(*ast.ReturnStmt)
	if !ok {
		return nil, false
	}

	entry := &Entry{Name: fnDecl.Name, ParamCount: len(fnDecl.Params)}

	switch value := ret.Value.(type) {
	case *ast.IdExpr:
		index, ok := fnDecl.ParamIndex(value.Name)
		if !ok {
			return nil, false
		}
		entry.Kind = RETURN_PARAM
		entry.ParamIndex = index
	case *ast.NumberLit:
		if !value.IsIntegral() || value.Value < 0 || value.Value > math.MaxInt32 {
			return nil, false
		}
		entry.Kind = RETURN_CONST
		entry.Const = int32(value.Value)
	default:
		return nil, false
	}

	return entry, true
}
