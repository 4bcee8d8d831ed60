package wasm

import (
	"bytes"
	"errors"

	"github.com/mint-lang/mint/internal/ast"
	"github.com/mint-lang/mint/internal/codegen"
	"github.com/mint-lang/mint/internal/diagnostics"
)

type wasmCodegen struct {
	program   *ast.Program
	collector *diagnostics.Collector
}

func NewCG(program *ast.Program, collector *diagnostics.Collector) *wasmCodegen {
	return &wasmCodegen{program: program, collector: collector}
}

// Generate emits a module exporting the first compilable function
func (c *wasmCodegen) Generate() ([]byte, error) {
	entry, err := codegen.FindEntry(c.program)
	if err != nil {
		var diag *diagnostics.Diag
		if c.collector != nil && errors.As(err, &diag) {
			c.collector.ReportAndSave(diag)
		}
		return nil, err
	}
	return EmitModule(entry), nil
}

func EmitModule(entry *codegen.Entry) []byte {
	var buf bytes.Buffer
	emitHeader(&buf)
	emitTypeSection(&buf, entry)
	emitFunctionSection(&buf)
	emitExportSection(&buf, entry)
	emitCodeSection(&buf, entry)
	return buf.Bytes()
}

func emitHeader(buf *bytes.Buffer) {
	buf.Write(MAGIC)
	buf.Write(VERSION)
}

// emitSection writes the id, the LEB128 content length and the content
func emitSection(buf *bytes.Buffer, id byte, content func(sectionBuf *bytes.Buffer)) {
	var sectionBuf bytes.Buffer
	content(&sectionBuf)

	buf.WriteByte(id)
	writeLEB128(buf, uint32(sectionBuf.Len()))
	buf.Write(sectionBuf.Bytes())
}

func emitTypeSection(buf *bytes.Buffer, entry *codegen.Entry) {
	emitSection(buf, TYPE_SECTION, func(sectionBuf *bytes.Buffer) {
		writeLEB128(sectionBuf, 1) // 1 function type
		sectionBuf.WriteByte(FUNC_TYPE)
		writeLEB128(sectionBuf, uint32(entry.ParamCount))
		for i := 0; i < entry.ParamCount; i++ {
			sectionBuf.WriteByte(I32)
		}
		writeLEB128(sectionBuf, 1) // 1 result
		sectionBuf.WriteByte(I32)
	})
}

func emitFunctionSection(buf *bytes.Buffer) {
	emitSection(buf, FUNCTION_SECTION, func(sectionBuf *bytes.Buffer) {
		writeLEB128(sectionBuf, 1) // 1 function
		writeLEB128(sectionBuf, 0) // type index 0
	})
}

func emitExportSection(buf *bytes.Buffer, entry *codegen.Entry) {
	emitSection(buf, EXPORT_SECTION, func(sectionBuf *bytes.Buffer) {
		writeLEB128(sectionBuf, 1) // 1 export
		writeLEB128(sectionBuf, uint32(len(entry.Name)))
		sectionBuf.WriteString(entry.Name)
		sectionBuf.WriteByte(EXPORT_FUNC)
		writeLEB128(sectionBuf, 0) // function index 0
	})
}

func emitCodeSection(buf *bytes.Buffer, entry *codegen.Entry) {
	emitSection(buf, CODE_SECTION, func(sectionBuf *bytes.Buffer) {
		var body bytes.Buffer
		writeLEB128(&body, 0) // no locals
		switch entry.Kind {
		case codegen.RETURN_PARAM:
			body.WriteByte(LOCAL_GET)
			writeLEB128(&body, uint32(entry.ParamIndex))
		case codegen.RETURN_CONST:
			body.WriteByte(I32_CONST)
			writeLEB128Signed(&body, entry.Const)
		}
		body.WriteByte(END)

		writeLEB128(sectionBuf, 1) // 1 function body
		writeLEB128(sectionBuf, uint32(body.Len()))
		sectionBuf.Write(body.Bytes())
	})
}
