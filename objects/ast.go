package objects

// Ident is the minimal identifier surface the codegen core needs: something
// resolvable to a checker object, and a name usable for package-member
// lookups (PkgMemberIndex resolves by name, not by key).
type Ident struct {
	Name string
	key  ObjKey
}

// NewIdent creates an identifier bound to a fresh object key.
func NewIdent(name string) *Ident {
	return &Ident{Name: name, key: NewObjKey()}
}

// Key returns the identifier's checker object key.
func (id *Ident) Key() ObjKey { return id.key }

// Field is one entry of a parameter/result field list. A field may declare
// several names sharing one type (they still consume one local each), or no
// name at all (an anonymous field, which still consumes exactly one local).
type Field struct {
	Names []*Ident
}

// FieldList is an ordered list of fields, e.g. a function's parameter list.
type FieldList struct {
	List []*Field
}

// TypeLookup binds a defining identifier to its checker object. The real
// type checker builds this table; the codegen core only ever reads it.
type TypeLookup interface {
	ObjectDef(ident *Ident) ObjKey
}

// MapTypeLookup is a trivial TypeLookup backed by each Ident's own key,
// sufficient for tests and for the demonstration CLI command, where no real
// checker pass has run.
type MapTypeLookup struct{}

// ObjectDef implements TypeLookup.
func (MapTypeLookup) ObjectDef(ident *Ident) ObjKey { return ident.Key() }
