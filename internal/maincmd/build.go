package maincmd

import (
	"context"
	"fmt"
	"io"

	"github.com/mna/mainer"

	"github.com/mincode/rvm/compiler"
	"github.com/mincode/rvm/objects"
	"github.com/mincode/rvm/vm"
)

// Build runs a small, fixed demonstration program through the codegen core
// and prints the finalized, disassembled function. There is no parser in
// this module's scope, so Build exercises FuncCtx against a hand-built
// object graph rather than reading source text: one local initialized from
// a constant, then an unconditional jump back to the top (spec.md §8
// scenarios 1 and 2 combined into one function).
func (c *Cmd) Build(_ context.Context, stdio mainer.Stdio, _ []string) error {
	f, err := buildDemoFunc()
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}
	return printFunc(stdio.Stdout, f)
}

func buildDemoFunc() (*vm.Func, error) {
	consts := objects.NewConsts()
	fn := compiler.NewFuncCtx(objects.FunctionIndex(0), nil, consts)

	local := fn.AddLocal(nil, nil, compiler.TypeVoid)
	cst := fn.AddConst(objects.IntValue(42))

	pos := &objects.Position{Line: 1, Column: 1}
	loopTop := fn.NextCodeIndex()
	fn.EmitAssign(local, cst.AsDirectAddr(), pos)

	back, err := fn.Offset(loopTop)
	if err != nil {
		return nil, err
	}
	fn.EmitJump(-back-1, pos)

	return fn.Finalize(objects.Packages{}, compiler.LabelTable{})
}

func printFunc(w io.Writer, f *vm.Func) error {
	_, err := io.WriteString(w, vm.Disassemble(f))
	return err
}
