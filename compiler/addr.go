package compiler

import (
	"math"

	"github.com/mincode/rvm/objects"
)

// OpIndex is the operand slot type every Addr eventually resolves to:
// pragmatically a 32-bit signed integer, per spec.md §3.1.
type OpIndex = int32

const (
	maxOpIndex = math.MaxInt32
	minOpIndex = math.MinInt32
)

// LabelTable maps a label's checker object key to the code index of the
// labelled instruction. It is populated by whatever drives compilation (the
// statement walker records a label's position as soon as it emits the
// labelled instruction) and consumed, read-only, by Finalize.
type LabelTable map[objects.ObjKey]int

type addrKind byte

const (
	addrVoid addrKind = iota
	addrConst
	addrLocalVar
	addrRegister
	addrImm
	addrPkgMemberIndex
	addrLabel
)

// Addr is a symbolic operand: an address that has not yet been resolved to
// a concrete OpIndex. Const/LocalVar/Register/Imm resolve immediately and
// locally; PkgMemberIndex and Label are deferred until Finalize, when the
// package tables and label table are complete. The zero Addr is Void.
type Addr struct {
	kind  addrKind
	i     OpIndex
	pkg   objects.PackageKey
	ident *objects.Ident
	label objects.ObjKey
}

// VoidAddr is the unused-slot address; it is also Addr's zero value.
func VoidAddr() Addr { return Addr{kind: addrVoid} }

// ConstAddr addresses the i'th entry of the constant pool.
func ConstAddr(i OpIndex) Addr { return Addr{kind: addrConst, i: i} }

// LocalVarAddr addresses a local at frame offset i.
func LocalVarAddr(i OpIndex) Addr { return Addr{kind: addrLocalVar, i: i} }

// RegisterAddr addresses a temporary at frame offset registerBase+i.
func RegisterAddr(i OpIndex) Addr { return Addr{kind: addrRegister, i: i} }

// ImmAddr is a literal operand (jump offset, argument count, ...).
func ImmAddr(i OpIndex) Addr { return Addr{kind: addrImm, i: i} }

// PkgMemberIndexAddr defers to pkg's exported-member table for ident's name.
func PkgMemberIndexAddr(pkg objects.PackageKey, ident *objects.Ident) Addr {
	return Addr{kind: addrPkgMemberIndex, pkg: pkg, ident: ident}
}

// LabelAddr defers to the label table for key's instruction index.
func LabelAddr(key objects.ObjKey) Addr {
	return Addr{kind: addrLabel, label: key}
}

// IsVoid reports whether a is the unused-slot address.
func (a Addr) IsVoid() bool { return a.kind == addrVoid }

// AsVarIndex returns the local-variable index held by a LocalVar address.
// It panics for any other variant — callers only call it where the spec's
// own as_var_index does, immediately after constructing a local's address.
func (a Addr) AsVarIndex() OpIndex {
	if a.kind != addrLocalVar {
		internalCompilerError("AsVarIndex called on non-LocalVar address (kind=%d)", a.kind)
	}
	return a.i
}

// Resolve computes a's final operand value.
//
//   - Const(i)      -> -i-1
//   - LocalVar(i)   -> i
//   - Register(i)   -> registerBase+i
//   - Imm(i)        -> i
//   - PkgMemberIndex -> packages[pkg].MemberIndex(ident.Name); missing is a
//     fatal internal error, the caller violated an invariant.
//   - Label(key)    -> labelTable[key] - instIndex - 1 (PC-relative, assumes
//     the VM's PC auto-increments before a jump lands).
//   - Void          -> 0 (an unused operand slot; every instruction carries
//     three addresses regardless of how many it actually uses).
//   - Any other unresolved-without-context variant is a fatal internal
//     error.
func (a Addr) Resolve(registerBase OpIndex, packages objects.Packages, instIndex int, labels LabelTable) (OpIndex, error) {
	switch a.kind {
	case addrVoid:
		return 0, nil
	case addrConst:
		return negateConst(a.i)
	case addrLocalVar:
		return a.i, nil
	case addrRegister:
		sum := int64(registerBase) + int64(a.i)
		if sum > maxOpIndex || sum < minOpIndex {
			return 0, ErrOperandOverflow
		}
		return OpIndex(sum), nil
	case addrImm:
		return a.i, nil
	case addrPkgMemberIndex:
		pkg, ok := packages[a.pkg]
		if !ok {
			internalCompilerError("Resolve: unknown package %v for PkgMemberIndex(%s)", a.pkg, a.ident.Name)
		}
		idx, ok := pkg.MemberIndex(a.ident.Name)
		if !ok {
			internalCompilerError("Resolve: %q is not an exported member of package %q", a.ident.Name, pkg.Name)
		}
		return idx, nil
	case addrLabel:
		pos, ok := labels[a.label]
		if !ok {
			internalCompilerError("Resolve: label for object key %v was never registered", a.label)
		}
		offset := int64(pos) - int64(instIndex) - 1
		if offset > maxOpIndex || offset < minOpIndex {
			return 0, ErrOperandOverflow
		}
		return OpIndex(offset), nil
	default:
		internalCompilerError("Resolve: address has no resolution context (kind=%d)", a.kind)
		return 0, nil // unreachable
	}
}

func negateConst(i OpIndex) (OpIndex, error) {
	// -i-1 is computed as int64 and range-checked like the other
	// resolutions; for every int32 i (MaxInt32 gives MinInt32) the result
	// is in range.
	v := -int64(i) - 1
	if v > maxOpIndex || v < minOpIndex {
		return 0, ErrOperandOverflow
	}
	return OpIndex(v), nil
}
