package vm

import "github.com/mincode/rvm/objects"

// Func is the finalized record FuncCtx.Finalize produces: every InterInst
// has been lowered to a concrete Instruction, the local count has fixed the
// register base, and every label has resolved to a PC-relative offset.
type Func struct {
	Key objects.FunctionIndex

	Code      []Instruction
	Positions []*objects.Position

	// UpPointers holds one capture descriptor per up-value slot, in the
	// order FuncCtx.AddUpvalue appended them. An up-value address's Imm(i)
	// indexes into this slice.
	UpPointers []objects.ValueDesc

	// LocalZeros holds the zero value of each local that needs runtime
	// initialization, in declaration order, so the VM can initialize the
	// frame without re-running the codegen core. Locals added without a
	// zero value have no entry.
	LocalZeros []objects.Value

	// StackTempTypes holds the value type of each local that has an entry in
	// LocalZeros, at the same position.
	StackTempTypes []ValueType

	// MaxRegisterCount is the high-water mark of temporary registers live
	// at once; RegisterBase + MaxRegisterCount is the frame's total slot
	// count.
	MaxRegisterCount int32

	// LocalAlloc is the number of local slots, i.e. the register base that
	// every RegisterAddr was resolved against.
	LocalAlloc int32
}

// RegisterBase is the operand offset at which temporary registers begin.
func (f *Func) RegisterBase() int32 { return f.LocalAlloc }
