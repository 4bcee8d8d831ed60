// Package cli turns the command line into a CliResult
package cli

import (
	"fmt"
	"strings"
)

type Command int

const (
	COMMAND_COMPILE Command = iota
	COMMAND_INSPECT
	COMMAND_REPL
	COMMAND_HELP
	COMMAND_ENV
)

type CliResult struct {
	Command Command
	LLVM    bool
	Quiet   bool
	Source  string
	Output  string
}

var HELP_COMMAND string = `Mint - a tiny language compiled to WebAssembly.

Usage:
  mint <command> [arguments]

Available Commands:
  compile <source> [<output>] [-llvm] [-quiet]   Compiles a source file
      <output>      Path of the module (defaults to MINT_OUT, then out.wasm)
      -llvm         Emit LLVM IR instead of a WebAssembly module
      -quiet        Do not print the AST

  inspect <module>                              Shows the contents of a compiled module

  repl                                          Starts an interactive session

  env                                           Show environment information

  help                                          Show this help message

Examples:
  mint compile id.mint                          Write out.wasm
  mint compile id.mint build/id.wasm            Write build/id.wasm
  mint compile id.mint -llvm                    Write out.ll
  mint inspect out.wasm                         Print the signature and body of out.wasm
`

// Parse reads the arguments after the program name
func Parse(args []string) (CliResult, error) {
	result := CliResult{}

	if len(args) == 0 {
		result.Command = COMMAND_HELP
		return result, nil
	}

	command := args[0]
	switch command {
	case "env":
		result.Command = COMMAND_ENV
	case "help", "-h", "--help":
		result.Command = COMMAND_HELP
	case "repl":
		result.Command = COMMAND_REPL
	case "inspect":
		result.Command = COMMAND_INSPECT
		if len(args) != 2 {
			return result, fmt.Errorf("usage: mint inspect <module>")
		}
		result.Source = args[1]
	case "compile":
		result.Command = COMMAND_COMPILE

		var positional []string
		for _, arg := range args[1:] {
			switch {
			case arg == "-llvm":
				result.LLVM = true
			case arg == "-quiet":
				result.Quiet = true
			case strings.HasPrefix(arg, "-"):
				return result, fmt.Errorf("unknown flag '%s' for compile", arg)
			default:
				positional = append(positional, arg)
			}
		}

		switch len(positional) {
		case 2:
			result.Output = positional[1]
			fallthrough
		case 1:
			result.Source = positional[0]
		default:
			return result, fmt.Errorf("usage: mint compile <source> [<output>] [-llvm] [-quiet]")
		}
	default:
		return result, fmt.Errorf("unknown command '%s', run 'mint help' for usage", command)
	}
	return result, nil
}
