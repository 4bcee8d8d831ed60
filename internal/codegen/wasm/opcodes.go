package wasm

var MAGIC = []byte{0x00, 0x61, 0x73, 0x6D}   // \0asm
var VERSION = []byte{0x01, 0x00, 0x00, 0x00} // 1

// Section ids
const (
	TYPE_SECTION     byte = 0x01
	FUNCTION_SECTION byte = 0x03
	EXPORT_SECTION   byte = 0x07
	CODE_SECTION     byte = 0x0A
)

// Type tags
const (
	FUNC_TYPE byte = 0x60
	I32       byte = 0x7F
)

// Export kinds
const (
	EXPORT_FUNC byte = 0x00
)

// Opcodes
const (
	LOCAL_GET byte = 0x20
	I32_CONST byte = 0x41
	END       byte = 0x0B
)

func sectionName(id byte) string {
	switch id {
	case TYPE_SECTION:
		return "type"
	case FUNCTION_SECTION:
		return "function"
	case EXPORT_SECTION:
		return "export"
	case CODE_SECTION:
		return "code"
	}
	return "unknown"
}
