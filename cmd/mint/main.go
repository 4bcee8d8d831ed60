package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mint-lang/mint/internal/ast"
	"github.com/mint-lang/mint/internal/cli"
	"github.com/mint-lang/mint/internal/codegen/llvm"
	"github.com/mint-lang/mint/internal/codegen/wasm"
	"github.com/mint-lang/mint/internal/compiler"
	"github.com/mint-lang/mint/internal/config"
	"github.com/mint-lang/mint/internal/diagnostics"
	"github.com/mint-lang/mint/internal/repl"
)

var DevMode string

func main() {
	log.SetFlags(0)

	config.SetDevMode(DevMode == "1")
	if config.DEV {
		fmt.Println("[DEV MODE] initialized")
	}

	args, err := cli.Parse(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	err = config.SetupConfigDir()
	if err != nil {
		log.Fatal(err)
	}
	err = config.SetupEnvFile()
	if err != nil {
		log.Fatal(err)
	}

	switch args.Command {
	case cli.COMMAND_HELP:
		fmt.Print(cli.HELP_COMMAND)
	case cli.COMMAND_ENV:
		fmt.Printf("MINT_CONFIG_DIR='%s'\n", config.MINT_CONFIG_DIR)
		config.ENVS.ShowAll()
	case cli.COMMAND_INSPECT:
		err = inspect(args.Source)
		if err != nil {
			log.Fatal(err)
		}
	case cli.COMMAND_REPL:
		historyPath, err := config.ENVS.HistoryPath()
		if err != nil && config.DEV {
			fmt.Printf("[DEV MODE] no REPL history: %s\n", err)
		}
		err = repl.Run(historyPath)
		if err != nil {
			log.Fatal(err)
		}
	case cli.COMMAND_COMPILE:
		err = compile(args)
		var diag *diagnostics.Diag
		if errors.As(err, &diag) {
			// already printed by the collector
			os.Exit(1)
		}
		if err != nil {
			log.Fatal(err)
		}
	}
}

func compile(args cli.CliResult) error {
	backend, err := config.ENVS.Backend()
	if err != nil {
		return err
	}
	if args.LLVM {
		backend = config.LLVM
	}
	output := config.ENVS.OutputPath(backend, args.Output)

	opts := compiler.Options{}
	if !args.Quiet {
		opts.AST = os.Stdout
	}
	if backend == config.LLVM {
		opts.Generate = llvmGenerator(moduleName(args.Source))
	}

	collector := diagnostics.NewCollectorWithOutput(os.Stderr)
	result, err := compiler.CompileFile(args.Source, opts, collector)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(output); dir != "." {
		err = os.MkdirAll(dir, 0755)
		if err != nil {
			return err
		}
	}
	err = os.WriteFile(output, result.Module, 0644)
	if err != nil {
		return err
	}

	fmt.Printf("[Mint] Wrote %s\n", output)
	return nil
}

func llvmGenerator(name string) compiler.Generator {
	return func(program *ast.Program, collector *diagnostics.Collector) ([]byte, error) {
		ir, err := llvm.NewCG(name, program, collector).Generate()
		if err != nil {
			return nil, err
		}
		return []byte(ir), nil
	}
}

func moduleName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func inspect(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	module, err := wasm.Decode(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	fmt.Print(module.Dump())
	return nil
}
