package objects

// FuncFlag distinguishes the few ways a function's return differs in how the
// VM's CALL opcode should conclude it: a plain function, a package
// constructor (runs once, wires package-level vars), or a function with
// active defer blocks that must run before the real return.
type FuncFlag byte

const (
	FuncDefault FuncFlag = iota
	FuncPkgCtor
	FuncHasDefer
)

// Func is the checker-produced metadata for one function: just enough for
// the codegen core to pick the right CALL flag on return and to know
// whether it is compiling a package constructor.
type Func struct {
	Key  FunctionIndex
	Name string
	Flag FuncFlag
}

// IsCtor reports whether this function is a package constructor.
func (f *Func) IsCtor() bool { return f.Flag == FuncPkgCtor }

// Funcs is the lookup table from FunctionIndex to Func, the "fobjs" argument
// emit_return threads through to read the current function's flag.
type Funcs map[FunctionIndex]*Func
