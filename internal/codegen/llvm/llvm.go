package llvm

import (
	"errors"
	"fmt"

	"github.com/mint-lang/mint/internal/ast"
	"github.com/mint-lang/mint/internal/codegen"
	"github.com/mint-lang/mint/internal/config"
	"github.com/mint-lang/mint/internal/diagnostics"
	"tinygo.org/x/go-llvm"
)

type llvmCodegen struct {
	context llvm.Context
	module  llvm.Module
	builder llvm.Builder

	program   *ast.Program
	collector *diagnostics.Collector
}

// NewCG returns a generator owning a fresh LLVM context. Generate disposes of
// it, so a generator is good for a single run.
func NewCG(name string, program *ast.Program, collector *diagnostics.Collector) *llvmCodegen {
	context := llvm.NewContext()
	module := context.NewModule(name)
	builder := context.NewBuilder()

	defaultTargetTriple := llvm.DefaultTargetTriple()
	module.SetTarget(defaultTargetTriple)

	return &llvmCodegen{
		program:   program,
		collector: collector,
		context:   context,
		module:    module,
		builder:   builder,
	}
}

// Generate lowers the same function the WASM back end picks and returns the
// textual IR of the module
func (c *llvmCodegen) Generate() (string, error) {
	defer c.dispose()

	entry, err := codegen.FindEntry(c.program)
	if err != nil {
		return "", c.report(err)
	}

	fnValue := c.generateFnSignature(entry)
	c.generateFnBody(fnValue, entry)

	if err := llvm.VerifyModule(c.module, llvm.ReturnStatusAction); err != nil {
		return "", c.report(diagnostics.New(diagnostics.COMPILE_ERROR, "invalid LLVM module for '%s': %s", entry.Name, err))
	}

	ir := c.module.String()
	if config.DEV {
		fmt.Printf("[DEV MODE] LLVM IR:\n%s\n", ir)
	}
	return ir, nil
}

func (c *llvmCodegen) generateFnSignature(entry *codegen.Entry) *Function {
	i32 := c.context.Int32Type()
	paramsTypes := make([]llvm.Type, entry.ParamCount)
	for i := range paramsTypes {
		paramsTypes[i] = i32
	}
	functionType := llvm.FunctionType(i32, paramsTypes, false)
	functionValue := llvm.AddFunction(c.module, entry.Name, functionType)
	return NewFunctionValue(functionValue, functionType)
}

func (c *llvmCodegen) generateFnBody(fnValue *Function, entry *codegen.Entry) {
	functionBlock := c.context.AddBasicBlock(fnValue.Fn, "entry")
	c.builder.SetInsertPointAtEnd(functionBlock)

	params := c.generateFnParams(fnValue)

	switch entry.Kind {
	case codegen.RETURN_PARAM:
		param := params[entry.ParamIndex]
		value := c.builder.CreateLoad(param.Ty, param.Ptr, "")
		c.builder.CreateRet(value)
	case codegen.RETURN_CONST:
		value := llvm.ConstInt(c.context.Int32Type(), uint64(entry.Const), false)
		c.builder.CreateRet(value)
	}
}

// generateFnParams spills every parameter to a stack slot, mem2reg turns
// them back into registers
func (c *llvmCodegen) generateFnParams(fnValue *Function) []*Variable {
	paramsTypes := fnValue.Ty.ParamTypes()
	variables := make([]*Variable, len(paramsTypes))
	for i, paramValue := range fnValue.Fn.Params() {
		paramType := paramsTypes[i]
		paramPtr := c.builder.CreateAlloca(paramType, ".param")
		c.builder.CreateStore(paramValue, paramPtr)
		variables[i] = NewVariableValue(paramType, paramPtr)
	}
	return variables
}

func (c *llvmCodegen) report(err error) error {
	var diag *diagnostics.Diag
	if c.collector != nil && errors.As(err, &diag) {
		c.collector.ReportAndSave(diag)
	}
	return err
}

func (c *llvmCodegen) dispose() {
	c.builder.Dispose()
	c.module.Dispose()
	c.context.Dispose()
}
