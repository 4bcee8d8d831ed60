// Package ast defines the syntax tree built by the parser. Nodes are never
// mutated once built: later stages read the tree and produce their own
// outputs.
package ast

type Node interface {
	astNode()
}

type Stmt interface {
	Node
	IsReturn() bool
	stmtNode()
}

type Expr interface {
	Node
	exprNode()
}
