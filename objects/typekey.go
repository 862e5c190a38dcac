package objects

// TypeKey identifies a type-checker type, used only to cast a function's
// return value to a declared interface result type. The codegen core never
// inspects it beyond carrying it on FuncCtx.
type TypeKey int32
