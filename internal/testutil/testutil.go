// Package testutil builds AST nodes directly, including shapes the parser
// can never produce such as negative literals.
package testutil

import (
	"github.com/mint-lang/mint/internal/ast"
)

func NewProgram(statements ...ast.Stmt) *ast.Program {
	return ast.NewProgram(statements)
}

func NewFn(name string, params []*ast.Param, retType string, body ...ast.Stmt) *ast.FnDecl {
	return &ast.FnDecl{
		Name:    name,
		Params:  params,
		RetType: retType,
		Body:    body,
	}
}

func NewParam(name, ty string) *ast.Param {
	return &ast.Param{Name: name, Type: ty}
}

func NewParams(names ...string) []*ast.Param {
	params := make([]*ast.Param, len(names))
	for i, name := range names {
		params[i] = &ast.Param{Name: name}
	}
	return params
}

func NewReturn(value ast.Expr) *ast.ReturnStmt {
	return &ast.ReturnStmt{Value: value}
}

func NewExprStmt(value ast.Expr) *ast.ExprStmt {
	return &ast.ExprStmt{Value: value}
}

func NewNumber(value float64) *ast.NumberLit {
	return &ast.NumberLit{Value: value}
}

func NewString(value string) *ast.StringLit {
	return &ast.StringLit{Value: value}
}

func NewId(name string) *ast.IdExpr {
	return &ast.IdExpr{Name: name}
}

func NewAdd(left, right ast.Expr) *ast.BinaryExpr {
	return &ast.BinaryExpr{Left: left, Op: ast.OP_ADD, Right: right}
}
