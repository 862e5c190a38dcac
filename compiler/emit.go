package compiler

import "github.com/mincode/rvm/objects"

// EmitAssign selects the store opcode by lhs's variant and packs
// (container, key, value) into (d, s0, s1) as each opcode requires. Blank
// elides the instruction entirely; ZeroValue is never a legal assignment
// target.
func (f *FuncCtx) EmitAssign(lhs VirtualAddr, rhs Addr, pos *objects.Position) {
	if lhs.IsBlank() {
		return
	}
	var inst InterInst
	switch lhs.kind {
	case vaDirect:
		inst = NewInterInstIndex(OpAssign, lhs.a, rhs, VoidAddr())
	case vaUpValue:
		inst = NewInterInstIndex(OpStoreUpValue, lhs.a, rhs, VoidAddr())
	case vaSliceEntry:
		inst = NewInterInstIndex(OpStoreSlice, lhs.c, lhs.k, rhs)
	case vaArrayEntry:
		inst = NewInterInstIndex(OpStoreArray, lhs.c, lhs.k, rhs)
	case vaMapEntry:
		inst = NewInterInstIndex(OpStoreMap, lhs.c, lhs.k, rhs)
	case vaStructMember:
		inst = NewInterInstIndex(OpStoreStruct, lhs.c, lhs.k, rhs)
	case vaStructEmbedded:
		inst = NewInterInstIndex(OpStoreStructEmbedded, lhs.c, lhs.k, rhs)
	case vaPackageMember:
		inst = NewInterInstIndex(OpStorePkg, lhs.c, lhs.k, rhs)
	case vaPointee:
		inst = NewInterInstIndex(OpStorePointer, lhs.a, rhs, VoidAddr())
	case vaZeroValue:
		internalCompilerError("EmitAssign: ZeroValue is not a legal assignment target")
	default:
		internalCompilerError("EmitAssign: unknown VirtualAddr kind %d", lhs.kind)
	}
	f.PushInstPos(inst, pos)
}

// EmitLoadPkg loads pkg's member at index into dst.
func (f *FuncCtx) EmitLoadPkg(d, pkg, index Addr, pos *objects.Position) {
	f.PushInstPos(NewInterInstIndex(OpLoadPkg, d, pkg, index), pos)
}

// EmitClosure materializes a closure over function s into d.
func (f *FuncCtx) EmitClosure(d, s Addr, pos *objects.Position) {
	f.PushInstPos(NewInterInstIndex(OpClosure, d, s, VoidAddr()), pos)
}

// EmitJump emits an unconditional jump by offset instructions.
func (f *FuncCtx) EmitJump(offset OpIndex, pos *objects.Position) {
	f.PushInstPos(NewInterInstIndex(OpJump, ImmAddr(offset), VoidAddr(), VoidAddr()), pos)
}

// EmitPreCall sets up a call frame: the closure to invoke, the stack base
// for its arguments, and how many parameters it takes. A matching EmitCall
// follows.
func (f *FuncCtx) EmitPreCall(closure Addr, stackBase, paramCount OpIndex, pos *objects.Position) {
	inst := NewInterInstIndex(OpPreCall, closure, ImmAddr(stackBase), ImmAddr(paramCount))
	f.PushInstPos(inst, pos)
}

// EmitCall emits a CALL with the flag corresponding to style: Default is
// plain, Async is go-spawn, Defer schedules the call to run at function
// return.
func (f *FuncCtx) EmitCall(style CallStyle, pos *objects.Position) {
	inst := NewInterInst(OpCall)
	inst.T0 = style.flag()
	f.PushInstPos(inst, pos)
}

// funcReturnFlag maps a function's declared flag to the ValueType CALL's t0
// carries on return, centralizing the mapping so it stays in sync with the
// VM dispatcher (spec.md §9's design note calls this out explicitly).
func funcReturnFlag(flag objects.FuncFlag) ValueType {
	switch flag {
	case objects.FuncPkgCtor:
		return TypeFlagA
	case objects.FuncHasDefer:
		return TypeFlagB
	default:
		return TypeVoid
	}
}

// EmitReturn reuses the CALL opcode family for function exit: the flag is
// derived from the current function's declared flag (Default / PkgCtor /
// HasDefer) looked up in funcs. If pkg is non-nil, d carries the package
// constant (a package constructor's return also publishes its package).
func (f *FuncCtx) EmitReturn(pkg *objects.PackageKey, pos *objects.Position, funcs objects.Funcs) {
	fn, ok := funcs[f.FuncKey]
	if !ok {
		internalCompilerError("EmitReturn: unknown function key %v", f.FuncKey)
	}
	inst := NewInterInst(OpCall)
	inst.T0 = funcReturnFlag(fn.Flag)
	if pkg != nil {
		inst.D = f.AddPackage(*pkg).AsDirectAddr()
	}
	f.PushInstPos(inst, pos)
}

// importTrampolineLen is the fixed instruction count of the sequence
// EmitImport appends after its IMPORT header: load the package object,
// invoke its top-level constructor once, then loop over its init-function
// table. The IMPORT header's length operand is taken from it; the JUMP back
// to the loop head keeps its own -4, the length of the four-instruction
// loop.
const importTrampolineLen = 8

// EmitImport emits an IMPORT header followed by the fixed trampoline that
// runs a package's top-level constructor and then its init functions in
// order. The IMPORT instruction's d carries the trampoline length as an Imm
// so the VM can skip it on a second import of the same package.
func (f *FuncCtx) EmitImport(pkg objects.PackageKey, pos *objects.Position) {
	pkgAddr := f.AddPackage(pkg).AsDirectAddr()
	zeroAddr := ConstAddr(f.consts.AddConstant(objects.IntValue(0)))
	imm0 := ImmAddr(0)

	trampoline := [importTrampolineLen]InterInst{
		NewInterInstIndex(OpLoadPkg, RegisterAddr(0), pkgAddr, imm0),
		NewInterInstIndex(OpPreCall, RegisterAddr(0), imm0, imm0),
		NewInterInstT(OpCall, TypeClosure, TypeVoid),
		// call init functions:
		// 1. init a temp var at reg0 as 0
		NewInterInstIndex(OpAssign, RegisterAddr(0), zeroAddr, VoidAddr()),
		// 2. load function to reg1 and do reg0++, or jump past the loop if
		// loading failed (there are no more init functions)
		NewInterInstIndex(OpLoadPkgInitFunc, RegisterAddr(1), pkgAddr, RegisterAddr(0)),
		NewInterInstIndex(OpPreCall, RegisterAddr(1), imm0, imm0),
		NewInterInst(OpCall),
		// jump back to LOAD_PKG_INIT_FUNC
		NewInterInstIndex(OpJump, ImmAddr(-4), VoidAddr(), VoidAddr()),
	}

	header := NewInterInstIndex(OpImport, ImmAddr(importTrampolineLen), pkgAddr, VoidAddr())
	f.PushInstPos(header, pos)
	for _, inst := range trampoline {
		f.PushInstPos(inst, pos)
	}

	f.UpdateMaxReg(2)
}
