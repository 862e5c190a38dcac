package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mincode/rvm/compiler"
	"github.com/mincode/rvm/objects"
	"github.com/mincode/rvm/vm"
)

func newFuncCtx() *compiler.FuncCtx {
	return compiler.NewFuncCtx(objects.FunctionIndex(0), nil, objects.NewConsts())
}

// Scenario 1: add_local; add_const(42); emit ASSIGN d=LocalVar(0) s0=Const(0).
func TestScenarioAssignConstToLocal(t *testing.T) {
	fn := newFuncCtx()
	local := fn.AddLocal(nil, nil, compiler.TypeVoid)
	cst := fn.AddConst(objects.IntValue(42))

	fn.EmitAssign(local, cst.AsDirectAddr(), nil)

	out, err := fn.Finalize(objects.Packages{}, compiler.LabelTable{})
	require.NoError(t, err)
	require.Len(t, out.Code, 1)
	require.Equal(t, int32(0), out.Code[0].D)
	require.Equal(t, int32(-1), out.Code[0].S0)
	require.Equal(t, int32(0), out.Code[0].S1)
}

// Scenario 2: three locals; emit JUMP Imm(-2) at index 0.
func TestScenarioJumpImm(t *testing.T) {
	fn := newFuncCtx()
	fn.AddLocal(nil, nil, compiler.TypeVoid)
	fn.AddLocal(nil, nil, compiler.TypeVoid)
	fn.AddLocal(nil, nil, compiler.TypeVoid)

	fn.EmitJump(-2, nil)

	out, err := fn.Finalize(objects.Packages{}, compiler.LabelTable{})
	require.NoError(t, err)
	require.Equal(t, int32(-2), out.Code[0].D)
	require.Equal(t, int32(0), out.Code[0].S0)
	require.Equal(t, int32(0), out.Code[0].S1)
}

// Scenario 3: L=2, a Label(k) jump at index 3, label_table[k]=7 resolves to 3.
func TestScenarioLabelResolution(t *testing.T) {
	fn := newFuncCtx()
	fn.AddLocal(nil, nil, compiler.TypeVoid)
	fn.AddLocal(nil, nil, compiler.TypeVoid)

	key := objects.NewObjKey()
	labels := compiler.LabelTable{key: 7}

	// pad code to put the label-jump at index 3
	fn.EmitJump(0, nil)
	fn.EmitJump(0, nil)
	fn.EmitJump(0, nil)
	fn.PushInstPos(compiler.NewInterInstIndex(compiler.OpJump, compiler.LabelAddr(key), compiler.VoidAddr(), compiler.VoidAddr()), nil)

	out, err := fn.Finalize(objects.Packages{}, labels)
	require.NoError(t, err)
	require.Equal(t, int32(3), out.Code[3].D)
}

// Scenario 4: emit_import of package 1; 9 instructions total, IMPORT header
// carries the trampoline length, max_register_count>=2.
func TestScenarioEmitImport(t *testing.T) {
	fn := newFuncCtx()
	pkg := objects.NewPackage(1, "p", map[string]int32{}, 2)
	packages := objects.Packages{1: pkg}

	fn.EmitImport(1, nil)

	out, err := fn.Finalize(packages, compiler.LabelTable{})
	require.NoError(t, err)
	require.Len(t, out.Code, 9)
	require.Equal(t, int32(8), out.Code[0].D)
	require.GreaterOrEqual(t, out.MaxRegisterCount, int32(2))
}

// Scenario 5: assign to a map entry with L=1.
func TestScenarioAssignMapEntry(t *testing.T) {
	fn := newFuncCtx()
	m := fn.AddLocal(nil, nil, compiler.TypeVoid)
	k := compiler.RegisterAddr(0)
	v := compiler.ConstAddr(1)

	fn.EmitAssign(compiler.MapEntryAddr(m.AsDirectAddr(), k), v, nil)

	out, err := fn.Finalize(objects.Packages{}, compiler.LabelTable{})
	require.NoError(t, err)
	require.Equal(t, int32(0), out.Code[0].D)  // local 0
	require.Equal(t, int32(1), out.Code[0].S0) // register_base(1) + 0
	require.Equal(t, int32(-2), out.Code[0].S1)
}

// Scenario 6: emit_call(Async) yields one CALL with t0=FlagA, addrs Void->0.
func TestScenarioEmitCallAsync(t *testing.T) {
	fn := newFuncCtx()
	fn.EmitCall(compiler.CallAsync, nil)

	out, err := fn.Finalize(objects.Packages{}, compiler.LabelTable{})
	require.NoError(t, err)
	require.Len(t, out.Code, 1)
	require.Equal(t, vm.TypeFlagA, out.Code[0].T0)
	require.Equal(t, int32(0), out.Code[0].D)
	require.Equal(t, int32(0), out.Code[0].S0)
	require.Equal(t, int32(0), out.Code[0].S1)
}

// Invariant: add_const_var fails on a duplicate entity.
func TestAddConstVarDuplicatePanics(t *testing.T) {
	fn := newFuncCtx()
	key := objects.NewObjKey()
	fn.AddConstVar(key, objects.IntValue(1))
	require.Panics(t, func() { fn.AddConstVar(key, objects.IntValue(2)) })
}

// Invariant: add_upvalue is idempotent per object.
func TestAddUpvalueIdempotent(t *testing.T) {
	fn := newFuncCtx()
	key := objects.NewObjKey()
	desc := objects.ValueDesc{FromParentLocal: true, Index: 3}

	first := fn.AddUpvalue(key, desc)
	second := fn.AddUpvalue(key, objects.ValueDesc{FromParentLocal: false, Index: 99})
	require.Equal(t, first, second)

	out, err := fn.Finalize(objects.Packages{}, compiler.LabelTable{})
	require.NoError(t, err)
	require.Len(t, out.UpPointers, 1)
	require.Equal(t, desc, out.UpPointers[0])
}

// emit_assign(Blank, _, _) leaves code unchanged.
func TestEmitAssignBlankNoOp(t *testing.T) {
	fn := newFuncCtx()
	fn.EmitAssign(compiler.BlankAddr(), compiler.ImmAddr(0), nil)

	out, err := fn.Finalize(objects.Packages{}, compiler.LabelTable{})
	require.NoError(t, err)
	require.Empty(t, out.Code)
}

// add_params allocates one local per named parameter; anonymous fields
// still consume one local each.
func TestAddParams(t *testing.T) {
	fn := newFuncCtx()
	a, b := objects.NewIdent("a"), objects.NewIdent("b")
	fl := &objects.FieldList{List: []*objects.Field{
		{Names: []*objects.Ident{a, b}},
		{}, // anonymous
	}}

	count := fn.AddParams(fl, objects.MapTypeLookup{})
	require.Equal(t, 3, count)
	require.Equal(t, compiler.OpIndex(3), fn.LocalAlloc())
}
