package vm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mincode/rvm/vm"
)

func TestAssembleRoundTrip(t *testing.T) {
	f := &vm.Func{
		LocalAlloc:       1,
		MaxRegisterCount: 0,
		Code: []vm.Instruction{
			{Op0: vm.OpAssign, D: 0, S0: -1, S1: 0},
			{Op0: vm.OpJump, D: -2, S0: 0, S1: 0},
		},
	}

	text := vm.Disassemble(f)

	got, err := vm.Assemble([]byte(text))
	require.NoError(t, err)
	require.Equal(t, f.LocalAlloc, got.LocalAlloc)
	require.Equal(t, f.MaxRegisterCount, got.MaxRegisterCount)
	require.Equal(t, f.Code, got.Code)
}

func TestAssembleInvalidHeader(t *testing.T) {
	_, err := vm.Assemble([]byte("not a header"))
	require.ErrorContains(t, err, "expected func:")
}

func TestAssembleUnknownOpcode(t *testing.T) {
	_, err := vm.Assemble([]byte("func: key=0 locals=0 max_registers=0\ncode:\n\t000\tNOPE d=0 s0=0 s1=0\n"))
	require.ErrorContains(t, err, "unknown opcode")
}
