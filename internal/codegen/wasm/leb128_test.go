package wasm

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestWriteLEB128(t *testing.T) {
	tests := []struct {
		val      uint32
		expected []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7F}},
		{128, []byte{0x80, 0x01}},
		{300, []byte{0xAC, 0x02}},
		{16384, []byte{0x80, 0x80, 0x01}},
		{624485, []byte{0xE5, 0x8E, 0x26}},
		{math.MaxUint32, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("TestWriteLEB128(%d)", test.val), func(t *testing.T) {
			var buf bytes.Buffer
			writeLEB128(&buf, test.val)
			if !bytes.Equal(buf.Bytes(), test.expected) {
				t.Errorf("expected % x, got % x", test.expected, buf.Bytes())
			}

			val, n, err := readLEB128(buf.Bytes())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if val != test.val || n != len(test.expected) {
				t.Errorf("expected to read back %d in %d bytes, got %d in %d", test.val, len(test.expected), val, n)
			}
		})
	}
}

func TestWriteLEB128Signed(t *testing.T) {
	tests := []struct {
		val      int32
		expected []byte
	}{
		{0, []byte{0x00}},
		{5, []byte{0x05}},
		{63, []byte{0x3F}},
		{64, []byte{0xC0, 0x00}},
		{100, []byte{0xE4, 0x00}},
		{-1, []byte{0x7F}},
		{-64, []byte{0x40}},
		{-65, []byte{0xBF, 0x7F}},
		{math.MaxInt32, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x07}},
		{math.MinInt32, []byte{0x80, 0x80, 0x80, 0x80, 0x78}},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("TestWriteLEB128Signed(%d)", test.val), func(t *testing.T) {
			var buf bytes.Buffer
			writeLEB128Signed(&buf, test.val)
			if !bytes.Equal(buf.Bytes(), test.expected) {
				t.Errorf("expected % x, got % x", test.expected, buf.Bytes())
			}

			val, n, err := readLEB128Signed(buf.Bytes())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if val != test.val || n != len(test.expected) {
				t.Errorf("expected to read back %d in %d bytes, got %d in %d", test.val, len(test.expected), val, n)
			}
		})
	}
}

func TestReadLEB128Errors(t *testing.T) {
	tests := []struct {
		input    []byte
		expected error
	}{
		{nil, ERR_LEB128_TRUNCATED},
		{[]byte{0x80}, ERR_LEB128_TRUNCATED},
		{[]byte{0xFF, 0xFF}, ERR_LEB128_TRUNCATED},
		{[]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x1F}, ERR_LEB128_OVERFLOW},
		{[]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x00}, ERR_LEB128_OVERFLOW},
	}

	for _, test := range tests {
		_, _, err := readLEB128(test.input)
		if !errors.Is(err, test.expected) {
			t.Errorf("readLEB128(% x): expected %v, got %v", test.input, test.expected, err)
		}
	}
}
