package compiler

import (
	"github.com/mincode/rvm/objects"
	"github.com/mincode/rvm/vm"
)

// InterInst is a fixed-shape, three-operand instruction carrying two
// opcodes, two value-type tags, and three symbolic addresses. The emitters
// in this package leave op1 as VOID and t1 as the zero value; CALL's flag
// travels in t0. It is lowered
// to a vm.Instruction once every Addr in it resolves.
type InterInst struct {
	Op0 Opcode
	Op1 Opcode
	T0  ValueType
	T1  ValueType
	D   Addr
	S0  Addr
	S1  Addr
}

// NewInterInst builds a bare instruction with no operands, d/s0/s1 all Void.
func NewInterInst(op Opcode) InterInst {
	return InterInst{Op0: op, Op1: OpVoid, D: VoidAddr(), S0: VoidAddr(), S1: VoidAddr()}
}

// NewInterInstIndex builds an instruction with all three addresses set and
// no type tags.
func NewInterInstIndex(op Opcode, d, s0, s1 Addr) InterInst {
	return InterInst{Op0: op, Op1: OpVoid, D: d, S0: s0, S1: s1}
}

// NewInterInstT builds a bare instruction with explicit type tags.
func NewInterInstT(op Opcode, t0, t1 ValueType) InterInst {
	return InterInst{Op0: op, Op1: OpVoid, T0: t0, T1: t1, D: VoidAddr(), S0: VoidAddr(), S1: VoidAddr()}
}

// IntoRuntimeInst resolves every Addr in the instruction against the given
// register base, package table, instruction index and label table,
// producing the VM-facing, fully-resolved vm.Instruction.
func (i InterInst) IntoRuntimeInst(registerBase OpIndex, packages objects.Packages, instIndex int, labels LabelTable) (vm.Instruction, error) {
	d, err := i.D.Resolve(registerBase, packages, instIndex, labels)
	if err != nil {
		return vm.Instruction{}, err
	}
	s0, err := i.S0.Resolve(registerBase, packages, instIndex, labels)
	if err != nil {
		return vm.Instruction{}, err
	}
	s1, err := i.S1.Resolve(registerBase, packages, instIndex, labels)
	if err != nil {
		return vm.Instruction{}, err
	}
	return vm.Instruction{
		Op0: vm.Opcode(i.Op0),
		Op1: vm.Opcode(i.Op1),
		T0:  vm.ValueType(i.T0),
		T1:  vm.ValueType(i.T1),
		D:   d,
		S0:  s0,
		S1:  s1,
	}, nil
}
