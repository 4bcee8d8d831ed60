package ast

// Program is the ordered list of top-level statements, in declaration order
type Program struct {
	Statements []Stmt
}

func NewProgram(statements []Stmt) *Program {
	return &Program{Statements: statements}
}

// Functions returns the top-level function declarations. Nested functions
// are not included.
func (program *Program) Functions() []*FnDecl {
	var fns []*FnDecl
	for _, stmt := range program.Statements {
		if fn, ok := stmt.(*FnDecl); ok {
			fns = append(fns, fn)
		}
	}
	return fns
}
