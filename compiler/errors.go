package compiler

import (
	"errors"
	"fmt"
)

// ErrOperandOverflow is returned when an address would resolve to an
// OpIndex outside its representable range. spec.md §9's open question 2
// flags this as an unhandled TODO in the source this package is ported
// from; here it is a clean, returned error instead of a crash.
var ErrOperandOverflow = errors.New("rvm/compiler: operand overflow")

// internalCompilerError panics with a descriptive message. The codegen core
// treats invariant violations (duplicate entity binding, an unresolved
// deferred address reaching Finalize, assigning to ZeroValue) as
// programming errors in the compiler's caller, not as user-facing errors —
// the type checker has already accepted the program by the time this
// package runs. This mirrors the Rust source's liberal use of
// unreachable!()/assert_eq!() one for one; see
// _examples/original_source/codegen/src/context.rs.
func internalCompilerError(format string, args ...any) {
	panic(fmt.Sprintf("compiler: internal error: "+format, args...))
}
