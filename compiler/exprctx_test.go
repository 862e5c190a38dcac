package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mincode/rvm/compiler"
)

// Load mode allocates a fresh register, reports it as the destination, and
// returns no post-store target — the caller stores the value directly.
func TestExprCtxLoadMode(t *testing.T) {
	e := compiler.NewExprCtx(3, compiler.LoadMode())

	dest, post := e.GetDest()
	require.Equal(t, compiler.RegisterAddr(3), dest)
	require.Nil(t, post)
	require.Equal(t, compiler.OpIndex(4), e.CurrentRegister())
}

// Assign(Direct(d)) hands back d itself with no post-store target; no
// register is allocated.
func TestExprCtxAssignDirectMode(t *testing.T) {
	local := compiler.DirectAddr(compiler.LocalVarAddr(2))
	e := compiler.NewExprCtx(0, compiler.AssignMode(local))

	dest, post := e.GetDest()
	require.Equal(t, compiler.LocalVarAddr(2), dest)
	require.Nil(t, post)
	require.Equal(t, compiler.OpIndex(0), e.CurrentRegister())
}

// Assign(composite) allocates a temp register for the scalar value and
// returns the composite target alongside it, so the caller emits the
// matching store opcode afterward.
func TestExprCtxAssignCompositeMode(t *testing.T) {
	target := compiler.MapEntryAddr(compiler.LocalVarAddr(0), compiler.RegisterAddr(0))
	e := compiler.NewExprCtx(5, compiler.AssignMode(target))

	dest, post := e.GetDest()
	require.Equal(t, compiler.RegisterAddr(5), dest)
	require.NotNil(t, post)
	require.Equal(t, target, *post)
	require.Equal(t, compiler.OpIndex(6), e.CurrentRegister())
}

// AllocReg advances the watermark on each call, independent of GetDest.
func TestExprCtxAllocRegAdvances(t *testing.T) {
	e := compiler.NewExprCtx(0, compiler.LoadMode())

	r0 := e.AllocReg()
	r1 := e.AllocReg()
	require.Equal(t, compiler.RegisterAddr(0), r0)
	require.Equal(t, compiler.RegisterAddr(1), r1)
	require.Equal(t, compiler.OpIndex(2), e.CurrentRegister())
}
