package ast

import (
	"fmt"
	"math"
	"strconv"
)

type BinOp int

const (
	OP_ADD BinOp = iota
)

func (op BinOp) String() string {
	switch op {
	case OP_ADD:
		return "+"
	}
	return "?"
}

type NumberLit struct {
	Expr
	Value float64
}

// IsIntegral reports whether the literal has no fractional part
func (lit *NumberLit) IsIntegral() bool {
	return !math.IsInf(lit.Value, 0) && lit.Value == math.Trunc(lit.Value)
}

func (lit *NumberLit) String() string {
	return strconv.FormatFloat(lit.Value, 'f', -1, 64)
}
func (lit *NumberLit) astNode()  {}
func (lit *NumberLit) exprNode() {}

type StringLit struct {
	Expr
	Value string
}

func (lit *StringLit) String() string {
	return fmt.Sprintf("%q", lit.Value)
}
func (lit *StringLit) astNode()  {}
func (lit *StringLit) exprNode() {}

type IdExpr struct {
	Expr
	Name string
}

func (id *IdExpr) String() string { return id.Name }
func (id *IdExpr) astNode()       {}
func (id *IdExpr) exprNode()      {}

// BinaryExpr chains are left-associative, a + b + c is (a + b) + c
type BinaryExpr struct {
	Expr
	Left  Expr
	Op    BinOp
	Right Expr
}

func (binExpr *BinaryExpr) String() string {
	return fmt.Sprintf("(%v %v %v)", binExpr.Left, binExpr.Op, binExpr.Right)
}
func (binExpr *BinaryExpr) astNode()  {}
func (binExpr *BinaryExpr) exprNode() {}
