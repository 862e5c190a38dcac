package compiler

import (
	"fmt"

	"github.com/mincode/rvm/objects"
	"github.com/mincode/rvm/vm"
)

// Finalize consumes the builder, resolving every InterInst's symbolic
// addresses into a vm.Func. It must run after all body emission (so
// localAlloc, the register base, is final) and after all label placement
// (so labels is complete) — spec.md §4.3.3's ordering requirement.
func (f *FuncCtx) Finalize(packages objects.Packages, labels LabelTable) (*vm.Func, error) {
	code := make([]vm.Instruction, len(f.code))
	for i, inst := range f.code {
		resolved, err := inst.IntoRuntimeInst(f.localAlloc, packages, i, labels)
		if err != nil {
			return nil, fmt.Errorf("compiler: finalize function %v: instruction %d: %w", f.FuncKey, i, err)
		}
		code[i] = resolved
	}

	return &vm.Func{
		Key:              f.FuncKey,
		Code:             code,
		Positions:        f.positions,
		UpPointers:       f.upPointers,
		LocalZeros:       f.localZeros,
		StackTempTypes:   toVMTypes(f.stackTempTypes),
		MaxRegisterCount: f.maxRegNum,
		LocalAlloc:       f.localAlloc,
	}, nil
}

func toVMTypes(ts []ValueType) []vm.ValueType {
	out := make([]vm.ValueType, len(ts))
	for i, t := range ts {
		out[i] = vm.ValueType(t)
	}
	return out
}
