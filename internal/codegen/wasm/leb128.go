package wasm

import (
	"bytes"
	"errors"
)

var (
	ERR_LEB128_TRUNCATED = errors.New("truncated LEB128 integer")
	ERR_LEB128_OVERFLOW  = errors.New("LEB128 integer overflows 32 bits")
)

// writeLEB128 writes val as unsigned LEB128: 7 bits per byte, least
// significant group first, continuation bit on every byte but the last
func writeLEB128(buf *bytes.Buffer, val uint32) {
	for val >= 0x80 {
		buf.WriteByte(byte(val&0x7F) | 0x80)
		val >>= 7
	}
	buf.WriteByte(byte(val & 0x7F))
}

// writeLEB128Signed is only used for i32.const immediates, which the
// format defines as signed
func writeLEB128Signed(buf *bytes.Buffer, val int32) {
	v := int64(val)
	for {
		b := byte(v & 0x7F)
		v >>= 7

		if (v == 0 && (b&0x40) == 0) || (v == -1 && (b&0x40) != 0) {
			buf.WriteByte(b)
			break
		}

		buf.WriteByte(b | 0x80)
	}
}

// readLEB128 returns the decoded value and the number of bytes read
func readLEB128(data []byte) (uint32, int, error) {
	var result uint32
	var shift uint
	for i, b := range data {
		if i >= 5 {
			return 0, 0, ERR_LEB128_OVERFLOW
		}
		if i == 4 && b&0x70 != 0 {
			return 0, 0, ERR_LEB128_OVERFLOW
		}
		result |= uint32(b&0x7F) << shift
		if b&0x80 == 0 {
			return result, i + 1, nil
		}
		shift += 7
	}
	return 0, 0, ERR_LEB128_TRUNCATED
}

func readLEB128Signed(data []byte) (int32, int, error) {
	var result int64
	var shift uint
	for i, b := range data {
		if i >= 5 {
			return 0, 0, ERR_LEB128_OVERFLOW
		}
		result |= int64(b&0x7F) << shift
		shift += 7
		if b&0x80 == 0 {
			if shift < 64 && b&0x40 != 0 {
				result |= -1 << shift
			}
			if result < -1<<31 || result > 1<<31-1 {
				return 0, 0, ERR_LEB128_OVERFLOW
			}
			return int32(result), i + 1, nil
		}
	}
	return 0, 0, ERR_LEB128_TRUNCATED
}
