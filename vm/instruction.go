// Package vm holds the VM-facing, fully-resolved instruction and function
// record that the compiler package's FuncCtx.Finalize produces. Executing
// these instructions is the VM's job and is explicitly out of scope for
// this module (spec.md §1 names "the VM itself" as an external
// collaborator); this package only carries the finalized shape plus a
// disassembler for it.
package vm

import "fmt"

// Opcode mirrors compiler.Opcode in its finalized, VM-facing form.
type Opcode byte

// ValueType mirrors compiler.ValueType in its finalized form.
type ValueType byte

// Instruction is one fully-resolved instruction: every symbolic address has
// been turned into a plain OpIndex operand, per the bit-exact contract in
// spec.md §6.3.
type Instruction struct {
	Op0 Opcode
	Op1 Opcode
	T0  ValueType
	T1  ValueType
	D   int32
	S0  int32
	S1  int32
}

// IsConstant reports whether operand resolves to a constant-pool index
// (negative, per the -i-1 encoding: pool index 0 resolves to -1, so 0 is
// unambiguously a local).
func IsConstant(operand int32) bool { return operand < 0 }

// ConstantIndex recovers the constant-pool index from a constant operand.
// Callers must first check IsConstant.
func ConstantIndex(operand int32) int32 { return -operand - 1 }

// IsLocal reports whether operand addresses a local slot, given the
// function's local count.
func IsLocal(operand, localCount int32) bool {
	return operand >= 0 && operand < localCount
}

// IsRegister reports whether operand addresses a temporary register, given
// the function's local count.
func IsRegister(operand, localCount int32) bool {
	return operand >= localCount
}

// RegisterOffset recovers the register offset (above the locals) from a
// register operand. Callers must first check IsRegister.
func RegisterOffset(operand, localCount int32) int32 { return operand - localCount }

func (i Instruction) String() string {
	return fmt.Sprintf("%-18s d=%-6d s0=%-6d s1=%-6d", i.Op0, i.D, i.S0, i.S1)
}
