package wasm

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

var (
	ERR_BAD_MAGIC         = errors.New("not a wasm module: bad magic")
	ERR_BAD_VERSION       = errors.New("unsupported wasm version")
	ERR_UNEXPECTED_END    = errors.New("unexpected end of module")
	ERR_UNKNOWN_SECTION   = errors.New("unknown section id")
	ERR_SECTION_ORDER     = errors.New("section out of order")
	ERR_SECTION_SIZE      = errors.New("section content does not match its length")
	ERR_UNSUPPORTED_SHAPE = errors.New("module uses features the decoder does not support")
)

type Instr struct {
	Op  byte
	Imm int64
}

func (instr Instr) String() string {
	switch instr.Op {
	case LOCAL_GET:
		return fmt.Sprintf("local.get %d", instr.Imm)
	case I32_CONST:
		return fmt.Sprintf("i32.const %d", instr.Imm)
	case END:
		return "end"
	}
	return fmt.Sprintf("op(0x%02x)", instr.Op)
}

type Export struct {
	Name  string
	Kind  byte
	Index uint32
}

// Module is the decoded form of what the generator emits: one function
// type, one function, its exports and its body
type Module struct {
	Params        []byte
	Results       []byte
	FuncTypeIndex uint32
	Exports       []Export
	Locals        uint32
	Body          []Instr
	Sections      []byte // ids in file order
}

func (m *Module) Signature() string {
	return fmt.Sprintf("(%s) -> (%s)", valTypes(m.Params), valTypes(m.Results))
}

func valTypes(types []byte) string {
	names := make([]string, len(types))
	for i, ty := range types {
		if ty == I32 {
			names[i] = "i32"
		} else {
			names[i] = fmt.Sprintf("0x%02x", ty)
		}
	}
	return strings.Join(names, ", ")
}

// Dump renders the module the way `mint inspect` prints it
func (m *Module) Dump() string {
	var out strings.Builder
	sections := make([]string, len(m.Sections))
	for i, id := range m.Sections {
		sections[i] = sectionName(id)
	}
	fmt.Fprintf(&out, "sections: %s\n", strings.Join(sections, ", "))
	fmt.Fprintf(&out, "type 0: %s\n", m.Signature())
	fmt.Fprintf(&out, "func 0: type %d\n", m.FuncTypeIndex)
	for _, export := range m.Exports {
		fmt.Fprintf(&out, "export %q: func %d\n", export.Name, export.Index)
	}
	fmt.Fprintf(&out, "code 0: %d locals\n", m.Locals)
	for _, instr := range m.Body {
		fmt.Fprintf(&out, "  %s\n", instr)
	}
	return out.String()
}

type reader struct {
	data   []byte
	offset int
}

func (r *reader) atEnd() bool { return r.offset >= len(r.data) }

func (r *reader) readByte() (byte, error) {
	if r.atEnd() {
		return 0, ERR_UNEXPECTED_END
	}
	b := r.data[r.offset]
	r.offset++
	return b, nil
}

func (r *reader) readBytes(n int) ([]byte, error) {
	if n < 0 || r.offset+n > len(r.data) {
		return nil, ERR_UNEXPECTED_END
	}
	b := r.data[r.offset : r.offset+n]
	r.offset += n
	return b, nil
}

func (r *reader) u32() (uint32, error) {
	val, n, err := readLEB128(r.data[r.offset:])
	if err != nil {
		return 0, err
	}
	r.offset += n
	return val, nil
}

func (r *reader) i32() (int32, error) {
	val, n, err := readLEB128Signed(r.data[r.offset:])
	if err != nil {
		return 0, err
	}
	r.offset += n
	return val, nil
}

// Decode parses a module made of the type, function, export and code
// sections, in that order
func Decode(data []byte) (*Module, error) {
	r := &reader{data: data}

	magic, err := r.readBytes(4)
	if err != nil || !bytes.Equal(magic, MAGIC) {
		return nil, ERR_BAD_MAGIC
	}
	version, err := r.readBytes(4)
	if err != nil || !bytes.Equal(version, VERSION) {
		return nil, ERR_BAD_VERSION
	}

	m := new(Module)
	var lastId byte
	for !r.atEnd() {
		id, err := r.readByte()
		if err != nil {
			return nil, err
		}
		size, err := r.u32()
		if err != nil {
			return nil, err
		}
		content, err := r.readBytes(int(size))
		if err != nil {
			return nil, err
		}
		if id <= lastId {
			return nil, fmt.Errorf("%w: %s after %s", ERR_SECTION_ORDER, sectionName(id), sectionName(lastId))
		}
		lastId = id

		section := &reader{data: content}
		switch id {
		case TYPE_SECTION:
			err = decodeTypeSection(section, m)
		case FUNCTION_SECTION:
			err = decodeFunctionSection(section, m)
		case EXPORT_SECTION:
			err = decodeExportSection(section, m)
		case CODE_SECTION:
			err = decodeCodeSection(section, m)
		default:
			return nil, fmt.Errorf("%w: 0x%02x", ERR_UNKNOWN_SECTION, id)
		}
		if err != nil {
			return nil, fmt.Errorf("%s section: %w", sectionName(id), err)
		}
		if !section.atEnd() {
			return nil, fmt.Errorf("%s section: %w", sectionName(id), ERR_SECTION_SIZE)
		}
		m.Sections = append(m.Sections, id)
	}

	return m, nil
}

func decodeTypeSection(r *reader, m *Module) error {
	count, err := r.u32()
	if err != nil {
		return err
	}
	if count != 1 {
		return ERR_UNSUPPORTED_SHAPE
	}
	form, err := r.readByte()
	if err != nil {
		return err
	}
	if form != FUNC_TYPE {
		return ERR_UNSUPPORTED_SHAPE
	}
	if m.Params, err = readValTypes(r); err != nil {
		return err
	}
	m.Results, err = readValTypes(r)
	return err
}

func readValTypes(r *reader) ([]byte, error) {
	count, err := r.u32()
	if err != nil {
		return nil, err
	}
	types, err := r.readBytes(int(count))
	if err != nil {
		return nil, err
	}
	return append([]byte{}, types...), nil
}

func decodeFunctionSection(r *reader, m *Module) error {
	count, err := r.u32()
	if err != nil {
		return err
	}
	if count != 1 {
		return ERR_UNSUPPORTED_SHAPE
	}
	m.FuncTypeIndex, err = r.u32()
	return err
}

func decodeExportSection(r *reader, m *Module) error {
	count, err := r.u32()
	if err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		nameLen, err := r.u32()
		if err != nil {
			return err
		}
		name, err := r.readBytes(int(nameLen))
		if err != nil {
			return err
		}
		kind, err := r.readByte()
		if err != nil {
			return err
		}
		index, err := r.u32()
		if err != nil {
			return err
		}
		m.Exports = append(m.Exports, Export{Name: string(name), Kind: kind, Index: index})
	}
	return nil
}

func decodeCodeSection(r *reader, m *Module) error {
	count, err := r.u32()
	if err != nil {
		return err
	}
	if count != 1 {
		return ERR_UNSUPPORTED_SHAPE
	}
	size, err := r.u32()
	if err != nil {
		return err
	}
	content, err := r.readBytes(int(size))
	if err != nil {
		return err
	}

	body := &reader{data: content}
	if m.Locals, err = body.u32(); err != nil {
		return err
	}
	if m.Locals != 0 {
		return ERR_UNSUPPORTED_SHAPE
	}
	for !body.atEnd() {
		op, err := body.readByte()
		if err != nil {
			return err
		}
		instr := Instr{Op: op}
		switch op {
		case LOCAL_GET:
			index, err := body.u32()
			if err != nil {
				return err
			}
			instr.Imm = int64(index)
		case I32_CONST:
			val, err := body.i32()
			if err != nil {
				return err
			}
			instr.Imm = int64(val)
		case END:
		default:
			return fmt.Errorf("%w: opcode 0x%02x", ERR_UNSUPPORTED_SHAPE, op)
		}
		m.Body = append(m.Body, instr)
	}
	return nil
}
