package compiler

import (
	"github.com/dolthub/swiss"

	"github.com/mincode/rvm/objects"
)

// FuncCtx is the builder for one function: it accumulates code and source
// positions, owns the entity tables binding checker objects to addresses,
// and is consumed by Finalize into a vm.Func. Every vector it owns only
// grows; there is no reset, matching spec.md §4.5.
type FuncCtx struct {
	FuncKey    objects.FunctionIndex
	TypeCheckKey *objects.TypeKey // optional; nil when the return needs no interface cast

	consts *objects.Consts

	maxRegNum OpIndex

	stackTempTypes []ValueType
	code           []InterInst
	positions      []*objects.Position
	upPointers     []objects.ValueDesc
	localZeros     []objects.Value

	entities   *swiss.Map[objects.ObjKey, Addr]
	uvEntities *swiss.Map[objects.ObjKey, Addr]

	localAlloc OpIndex
}

// NewFuncCtx creates an empty builder for the function identified by key,
// interning constants into the shared pool consts.
func NewFuncCtx(key objects.FunctionIndex, typeCheckKey *objects.TypeKey, consts *objects.Consts) *FuncCtx {
	return &FuncCtx{
		FuncKey:      key,
		TypeCheckKey: typeCheckKey,
		consts:       consts,
		entities:     swiss.NewMap[objects.ObjKey, Addr](0),
		uvEntities:   swiss.NewMap[objects.ObjKey, Addr](0),
	}
}

// MaxRegisterCount reports the high watermark of concurrently-live
// temporaries recorded so far.
func (f *FuncCtx) MaxRegisterCount() OpIndex { return f.maxRegNum }

// LocalAlloc reports how many local slots have been claimed so far; this is
// the register base Finalize will use.
func (f *FuncCtx) LocalAlloc() OpIndex { return f.localAlloc }

// IsCtor reports whether this function is a package constructor, per the
// function metadata table funcs.
func (f *FuncCtx) IsCtor(funcs objects.Funcs) bool {
	fn, ok := funcs[f.FuncKey]
	if !ok {
		internalCompilerError("IsCtor: unknown function key %v", f.FuncKey)
	}
	return fn.IsCtor()
}

// Offset computes the distance len(code)-loc from the instruction at loc to
// the current end of the code stream. A jump placed at loc that should land
// at the current end needs the PC-relative offset Offset(loc)-1.
func (f *FuncCtx) Offset(loc int) (OpIndex, error) {
	d := int64(len(f.code)) - int64(loc)
	if d > maxOpIndex || d < minOpIndex {
		return 0, ErrOperandOverflow
	}
	return OpIndex(d), nil
}

// NextCodeIndex returns the index the next PushInstPos call will land at.
func (f *FuncCtx) NextCodeIndex() int { return len(f.code) }

// InstAt returns a pointer to the i'th emitted instruction, for callers that
// need to patch an instruction after the fact (e.g. backpatching a forward
// jump once its target is known).
func (f *FuncCtx) InstAt(i int) *InterInst { return &f.code[i] }

// EntityAddr looks up the address bound to a checker object, if any.
func (f *FuncCtx) EntityAddr(entity objects.ObjKey) (Addr, bool) {
	return f.entities.Get(entity)
}

// AddConst interns cst in the shared constant pool and returns its address.
func (f *FuncCtx) AddConst(cst objects.Value) VirtualAddr {
	return DirectAddr(ConstAddr(f.consts.AddConstant(cst)))
}

// AddMetadata interns per-type metadata as a constant.
func (f *FuncCtx) AddMetadata(meta objects.Meta) VirtualAddr {
	return f.AddConst(objects.MetaValue(meta))
}

// AddPackage interns a package reference as a constant.
func (f *FuncCtx) AddPackage(pkg objects.PackageKey) VirtualAddr {
	return f.AddConst(objects.PackageValue(pkg))
}

// AddFunction interns a function reference as a constant.
func (f *FuncCtx) AddFunction(meta objects.Meta, index objects.FunctionIndex) VirtualAddr {
	return DirectAddr(ConstAddr(f.consts.AddFunction(meta, index)))
}

// AddConstVar binds a named constant to entity's checker object key. It is
// an invariant violation to bind the same entity twice.
func (f *FuncCtx) AddConstVar(entity objects.ObjKey, cst objects.Value) VirtualAddr {
	addr := ConstAddr(f.consts.AddConstant(cst))
	if _, exists := f.entities.Get(entity); exists {
		internalCompilerError("AddConstVar: entity %v already bound", entity)
	}
	f.entities.Put(entity, addr)
	return DirectAddr(addr)
}

// AddLocal claims the next local slot, optionally binding it to a checker
// object (entity is nil for an anonymous local, e.g. an unnamed parameter)
// and optionally recording a zero value/type for runtime frame
// initialization (zero is nil when the local needs no runtime init).
func (f *FuncCtx) AddLocal(entity *objects.ObjKey, zero *objects.Value, typ ValueType) VirtualAddr {
	addr := LocalVarAddr(f.localAlloc)
	if entity != nil {
		if _, exists := f.entities.Get(*entity); exists {
			internalCompilerError("AddLocal: entity %v already bound", *entity)
		}
		f.entities.Put(*entity, addr)
	}
	f.localAlloc++

	if zero != nil {
		f.localZeros = append(f.localZeros, *zero)
		f.stackTempTypes = append(f.stackTempTypes, typ)
	}
	return DirectAddr(addr)
}

// AddUpvalue records that entity is captured via desc, idempotently: the
// first call appends desc to the up-value table and remembers the slot;
// later calls with the same entity return that same slot without growing
// the table again.
func (f *FuncCtx) AddUpvalue(entity objects.ObjKey, desc objects.ValueDesc) VirtualAddr {
	addr, ok := f.uvEntities.Get(entity)
	if !ok {
		f.upPointers = append(f.upPointers, desc)
		i := OpIndex(len(f.upPointers) - 1)
		addr = ImmAddr(i)
		f.uvEntities.Put(entity, addr)
	}
	return UpValueAddr(addr)
}

// AddParams allocates one local per named parameter in fl; an anonymous
// field still consumes exactly one local. It returns the total local count
// consumed.
func (f *FuncCtx) AddParams(fl *objects.FieldList, lookup objects.TypeLookup) int {
	count := 0
	for _, field := range fl.List {
		if len(field.Names) == 0 {
			f.AddLocal(nil, nil, TypeVoid)
			count++
			continue
		}
		for _, name := range field.Names {
			key := lookup.ObjectDef(name)
			f.AddLocal(&key, nil, TypeVoid)
			count++
		}
	}
	return count
}

// PushInstPos appends inst to the code stream with its parallel source
// position, keeping spec.md invariant 4 (code and positions stay equal
// length) by construction.
func (f *FuncCtx) PushInstPos(inst InterInst, pos *objects.Position) {
	f.code = append(f.code, inst)
	f.positions = append(f.positions, pos)
}

// UpdateMaxReg lifts the register high-water mark if max exceeds it.
func (f *FuncCtx) UpdateMaxReg(max OpIndex) {
	if f.maxRegNum < max {
		f.maxRegNum = max
	}
}
