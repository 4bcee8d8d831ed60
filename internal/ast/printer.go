package ast

import (
	"fmt"
	"strconv"
	"strings"
)

const indentUnit = "  "

// Pretty renders the program back into source form. The output lexes and
// parses into a program with the same structure.
func Pretty(program *Program) string {
	var out strings.Builder
	for _, stmt := range program.Statements {
		writeStmt(&out, stmt, 0)
		if _, ok := stmt.(*FnDecl); ok {
			out.WriteString("\n")
		}
	}
	return out.String()
}

// PrettyExpr renders a single expression
func PrettyExpr(expr Expr) string {
	var out strings.Builder
	writeExpr(&out, expr)
	return out.String()
}

func writeStmt(out *strings.Builder, stmt Stmt, depth int) {
	indent := strings.Repeat(indentUnit, depth)

	switch s := stmt.(type) {
	case *FnDecl:
		fmt.Fprintf(out, "%sfn %s(", indent, s.Name)
		for i, param := range s.Params {
			if i > 0 {
				out.WriteString(", ")
			}
			out.WriteString(param.String())
		}
		out.WriteString(")")
		if s.HasRetType() {
			fmt.Fprintf(out, " -> %s", s.RetType)
		}
		out.WriteString(" {\n")
		for _, bodyStmt := range s.Body {
			writeStmt(out, bodyStmt, depth+1)
		}
		fmt.Fprintf(out, "%s}\n", indent)
	case *ReturnStmt:
		fmt.Fprintf(out, "%sreturn ", indent)
		writeExpr(out, s.Value)
		out.WriteString(";\n")
	case *ExprStmt:
		out.WriteString(indent)
		writeExpr(out, s.Value)
		out.WriteString(";\n")
	}
}

func writeExpr(out *strings.Builder, expr Expr) {
	switch e := expr.(type) {
	case *NumberLit:
		out.WriteString(strconv.FormatFloat(e.Value, 'f', -1, 64))
	case *StringLit:
		// verbatim, the lexer has no escape sequences
		fmt.Fprintf(out, "\"%s\"", e.Value)
	case *IdExpr:
		out.WriteString(e.Name)
	case *BinaryExpr:
		writeExpr(out, e.Left)
		fmt.Fprintf(out, " %s ", e.Op)
		writeExpr(out, e.Right)
	}
}
