package vm

// Opcode values line up 1:1 with compiler.Opcode — see that package's
// opcode.go for the authoritative source of the enumeration. They are
// redeclared here, rather than imported, because the compiler package
// imports this one (to build Instruction) and Go forbids import cycles;
// compiler.InterInst.IntoRuntimeInst does the byte-for-byte cast.
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
