package objects

import "fmt"

// ValueKind enumerates the constant kinds the pool can intern.
type ValueKind byte

const (
	KindInt64 ValueKind = iota
	KindFloat64
	KindString
	KindBool
	KindMeta
	KindPackage
	KindFunction
)

// Meta is opaque per-type metadata a constant can carry (struct layout,
// interface method set, etc). The codegen core never inspects it, only
// threads it through to the constant pool.
type Meta struct {
	Name string
}

// Value is one constant-pool entry. It is a closed sum of the kinds the
// checker hands the codegen core; unlike the runtime's tagged Value (out of
// scope — that lives in the VM), this one only has to survive being
// interned and printed.
type Value struct {
	Kind ValueKind

	I   int64
	F   float64
	S   string
	B   bool
	M   Meta
	Pkg PackageKey
	Fn  FunctionIndex
}

func IntValue(i int64) Value         { return Value{Kind: KindInt64, I: i} }
func FloatValue(f float64) Value     { return Value{Kind: KindFloat64, F: f} }
func StringValue(s string) Value     { return Value{Kind: KindString, S: s} }
func BoolValue(b bool) Value         { return Value{Kind: KindBool, B: b} }
func MetaValue(m Meta) Value         { return Value{Kind: KindMeta, M: m} }
func PackageValue(p PackageKey) Value { return Value{Kind: KindPackage, Pkg: p} }
func FunctionValue(m Meta, idx FunctionIndex) Value {
	return Value{Kind: KindFunction, M: m, Fn: idx}
}

func (v Value) String() string {
	switch v.Kind {
	case KindInt64:
		return fmt.Sprintf("int %d", v.I)
	case KindFloat64:
		return fmt.Sprintf("float %g", v.F)
	case KindString:
		return fmt.Sprintf("string %q", v.S)
	case KindBool:
		return fmt.Sprintf("bool %t", v.B)
	case KindMeta:
		return fmt.Sprintf("meta %s", v.M.Name)
	case KindPackage:
		return fmt.Sprintf("package %d", v.Pkg)
	case KindFunction:
		return fmt.Sprintf("function %s#%d", v.M.Name, v.Fn)
	default:
		return "<invalid constant>"
	}
}
