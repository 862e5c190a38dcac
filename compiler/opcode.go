package compiler

// Opcode names one of the opcode families spec.md §6.4 hands to the VM. The
// codegen core never interprets these beyond choosing which one to emit and
// how to pack its three addresses; their runtime semantics belong to the VM,
// out of scope here.
type Opcode byte

const (
	OpVoid Opcode = iota

	OpAssign
	OpStoreUpValue
	OpStoreSlice
	OpStoreArray
	OpStoreMap
	OpStoreStruct
	OpStoreStructEmbedded
	OpStorePkg
	OpStorePointer

	OpLoadPkg
	OpLoadPkgInitFunc
	OpClosure
	OpJump
	OpPreCall
	OpCall
	OpImport
)

var opcodeNames = [...]string{
	OpVoid:                "VOID",
	OpAssign:              "ASSIGN",
	OpStoreUpValue:        "STORE_UP_VALUE",
	OpStoreSlice:          "STORE_SLICE",
	OpStoreArray:          "STORE_ARRAY",
	OpStoreMap:            "STORE_MAP",
	OpStoreStruct:         "STORE_STRUCT",
	OpStoreStructEmbedded: "STORE_STRUCT_EMBEDDED",
	OpStorePkg:            "STORE_PKG",
	OpStorePointer:        "STORE_POINTER",
	OpLoadPkg:             "LOAD_PKG",
	OpLoadPkgInitFunc:     "LOAD_PKG_INIT_FUNC",
	OpClosure:             "CLOSURE",
	OpJump:                "JUMP",
	OpPreCall:             "PRE_CALL",
	OpCall:                "CALL",
	OpImport:              "IMPORT",
}

func (op Opcode) String() string {
	if int(op) < len(opcodeNames) && opcodeNames[op] != "" {
		return opcodeNames[op]
	}
	return "UNKNOWN"
}

// ValueType is the type-flag an instruction's t0/t1 slot carries. Most
// opcodes leave it Void; a handful overload it to pick a runtime behavior
// variant without a dedicated opcode (CALL's Async/Defer/PkgCtor/HasDefer
// flavor, IMPORT's closure-shaped first step).
type ValueType byte

const (
	TypeVoid ValueType = iota
	TypeFlagA
	TypeFlagB
	TypeClosure
)

func (t ValueType) String() string {
	switch t {
	case TypeVoid:
		return "void"
	case TypeFlagA:
		return "flag_a"
	case TypeFlagB:
		return "flag_b"
	case TypeClosure:
		return "closure"
	default:
		return "unknown"
	}
}

// CallStyle selects which flavor of CALL emit_call produces.
type CallStyle byte

const (
	CallDefault CallStyle = iota
	CallAsync             // go-spawn
	CallDefer             // scheduled at function return
)

func (s CallStyle) flag() ValueType {
	switch s {
	case CallAsync:
		return TypeFlagA
	case CallDefer:
		return TypeFlagB
	default:
		return TypeVoid
	}
}
