package maincmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mna/mainer"

	"github.com/mincode/rvm/vm"
)

// Asm reads a textual instruction listing (the vm package's assembler
// format, see vm.Assemble) from the given file — or stdin, if none is
// given — and prints its disassembly, exercising vm.Disassemble without a
// FuncCtx.
func (c *Cmd) Asm(_ context.Context, stdio mainer.Stdio, args []string) error {
	r := stdio.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			return err
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	fn, err := vm.Assemble(data)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	_, err = io.WriteString(stdio.Stdout, vm.Disassemble(fn))
	return err
}
