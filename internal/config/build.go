package config

import (
	"fmt"
	"os"
)

var DEV bool

// SetDevMode turns on the [DEV MODE] traces. MINT_DEV=1 in the environment
// has the same effect as a binary built with DevMode=1.
func SetDevMode(dev bool) {
	DEV = dev || os.Getenv("MINT_DEV") == "1"
}

type Backend int

const (
	WASM Backend = iota
	LLVM
)

func (b Backend) String() string {
	switch b {
	case WASM:
		return "wasm"
	case LLVM:
		return "llvm"
	}
	return "unknown"
}

// Ext is the file extension of what the back end writes
func (b Backend) Ext() string {
	switch b {
	case LLVM:
		return ".ll"
	default:
		return ".wasm"
	}
}

func BackendFromName(name string) (Backend, error) {
	switch name {
	case "", "wasm":
		return WASM, nil
	case "llvm":
		return LLVM, nil
	}
	return WASM, fmt.Errorf("unknown back-end '%s', expected 'wasm' or 'llvm'", name)
}
