// Command rvmc is the entry point for the register-VM codegen core: it
// exposes the core's build-and-disassemble demonstration and the textual
// assembler/disassembler as subcommands.
package main

import (
	"os"

	"github.com/mna/mainer"

	"github.com/mincode/rvm/internal/maincmd"
)

var (
	// placeholder values, replaced on build
	version   = "{v}"
	buildDate = "{d}"
)

func main() {
	c := maincmd.Cmd{BuildVersion: version, BuildDate: buildDate}
	os.Exit(int(c.Main(os.Args, mainer.CurrentStdio())))
}
