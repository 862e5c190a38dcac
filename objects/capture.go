package objects

// ValueDesc describes how one up-value is captured from the enclosing
// function: either directly from one of its locals, or forwarded from one
// of its own up-values (for a function nested more than one level deep).
// The codegen core never interprets this — FuncCtx.AddUpvalue only ever
// appends it to the function's up-value table — so its shape is owned by
// whatever walks the AST, not by this package's compiler.
type ValueDesc struct {
	FromParentLocal bool
	Index           int32
}
