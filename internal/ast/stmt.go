package ast

import (
	"fmt"
	"strings"
)

// Param is a function parameter. An empty Type means no type was written.
type Param struct {
	Name string
	Type string
}

func (param *Param) HasType() bool { return param.Type != "" }

func (param *Param) String() string {
	if param.HasType() {
		return fmt.Sprintf("%s: %s", param.Name, param.Type)
	}
	return param.Name
}

// FnDecl is a function statement. An empty RetType means no return type was
// written.
//
// NOTE: a FnDecl may appear inside another function body. It is kept as a
// plain statement of that body, there is no enclosing scope nor capture.
type FnDecl struct {
	Stmt
	Name    string
	Params  []*Param
	RetType string
	Body    []Stmt
}

func (fn *FnDecl) HasRetType() bool { return fn.RetType != "" }

// ParamIndex returns the position of the first parameter called name
func (fn *FnDecl) ParamIndex(name string) (int, bool) {
	for i, param := range fn.Params {
		if param.Name == name {
			return i, true
		}
	}
	return -1, false
}

func (fn *FnDecl) String() string {
	params := make([]string, len(fn.Params))
	for i, param := range fn.Params {
		params[i] = param.String()
	}
	return fmt.Sprintf("FN: %s(%s) -> %q %v", fn.Name, strings.Join(params, ", "), fn.RetType, fn.Body)
}
func (fn *FnDecl) IsReturn() bool { return false }
func (fn *FnDecl) astNode()       {}
func (fn *FnDecl) stmtNode()      {}

type ReturnStmt struct {
	Stmt
	Value Expr
}

func (ret *ReturnStmt) String() string {
	return fmt.Sprintf("RETURN: %s", ret.Value)
}
func (ret *ReturnStmt) IsReturn() bool { return true }
func (ret *ReturnStmt) astNode()       {}
func (ret *ReturnStmt) stmtNode()      {}

// ExprStmt is an expression evaluated for its effect. The grammar has no
// production for it yet.
type ExprStmt struct {
	Stmt
	Value Expr
}

func (stmt *ExprStmt) String() string {
	return fmt.Sprintf("EXPR: %s", stmt.Value)
}
func (stmt *ExprStmt) IsReturn() bool { return false }
func (stmt *ExprStmt) astNode()       {}
func (stmt *ExprStmt) stmtNode()      {}
