package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mincode/rvm/compiler"
	"github.com/mincode/rvm/objects"
)

func TestAddrResolve(t *testing.T) {
	labels := compiler.LabelTable{}
	key := objects.NewObjKey()
	labels[key] = 7

	cases := []struct {
		desc      string
		addr      compiler.Addr
		regBase   compiler.OpIndex
		instIndex int
		want      compiler.OpIndex
	}{
		{"void", compiler.VoidAddr(), 0, 0, 0},
		{"const 0", compiler.ConstAddr(0), 0, 0, -1},
		{"const 5", compiler.ConstAddr(5), 0, 0, -6},
		{"local", compiler.LocalVarAddr(2), 0, 0, 2},
		{"register", compiler.RegisterAddr(1), 3, 0, 4},
		{"imm", compiler.ImmAddr(-2), 0, 0, -2},
		{"label", compiler.LabelAddr(key), 0, 3, 3}, // 7 - 3 - 1
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			got, err := tc.addr.Resolve(tc.regBase, objects.Packages{}, tc.instIndex, labels)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestAddrResolveVoid(t *testing.T) {
	got, err := compiler.VoidAddr().Resolve(0, objects.Packages{}, 0, compiler.LabelTable{})
	require.NoError(t, err)
	require.Equal(t, compiler.OpIndex(0), got)
}

func TestAddrResolvePkgMember(t *testing.T) {
	ident := objects.NewIdent("Foo")
	pkg := objects.NewPackage(1, "demo", map[string]int32{"Foo": 3}, 0)
	packages := objects.Packages{1: pkg}

	addr := compiler.PkgMemberIndexAddr(1, ident)
	got, err := addr.Resolve(0, packages, 0, compiler.LabelTable{})
	require.NoError(t, err)
	require.Equal(t, compiler.OpIndex(3), got)
}

func TestAddrResolvePkgMemberMissingPanics(t *testing.T) {
	ident := objects.NewIdent("Bar")
	pkg := objects.NewPackage(1, "demo", map[string]int32{"Foo": 3}, 0)
	packages := objects.Packages{1: pkg}

	addr := compiler.PkgMemberIndexAddr(1, ident)
	require.Panics(t, func() {
		_, _ = addr.Resolve(0, packages, 0, compiler.LabelTable{})
	})
}

func TestAddrResolveLabelMissingPanics(t *testing.T) {
	addr := compiler.LabelAddr(objects.NewObjKey())
	require.Panics(t, func() {
		_, _ = addr.Resolve(0, objects.Packages{}, 0, compiler.LabelTable{})
	})
}

func TestAddrResolveRegisterOverflow(t *testing.T) {
	_, err := compiler.RegisterAddr(2147483647).Resolve(1, objects.Packages{}, 0, compiler.LabelTable{})
	require.ErrorIs(t, err, compiler.ErrOperandOverflow)
}

func TestAsVarIndex(t *testing.T) {
	require.Equal(t, compiler.OpIndex(4), compiler.LocalVarAddr(4).AsVarIndex())
	require.Panics(t, func() { compiler.RegisterAddr(0).AsVarIndex() })
}
