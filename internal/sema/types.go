package sema

// Type is the checker's view of a value. UNKNOWN is not an error, it marks
// anything inference does not cover and never takes part in a mismatch.
type Type int

const (
	I32 Type = iota
	F64
	STRING
	VOID
	UNKNOWN
)

var TYPE_NAMES map[string]Type = map[string]Type{
	"i32":    I32,
	"f64":    F64,
	"string": STRING,
	"void":   VOID,
}

// TypeFromName maps a written type name to a Type, any other name is
// UNKNOWN.
//
// NOTE: "void" is accepted anywhere, parameters included.
func TypeFromName(name string) Type {
	if ty, ok := TYPE_NAMES[name]; ok {
		return ty
	}
	return UNKNOWN
}

func (ty Type) IsConcrete() bool {
	return ty != UNKNOWN
}

func (ty Type) String() string {
	switch ty {
	case I32:
		return "i32"
	case F64:
		return "f64"
	case STRING:
		return "string"
	case VOID:
		return "void"
	}
	return "unknown"
}
