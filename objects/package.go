package objects

// Package is an (already-checked) package's exported-member table, plus its
// ordered list of init functions. The codegen core only ever reads it: a
// PkgMemberIndex address resolves a name through MemberIndex. EmitImport
// does not read InitFuncCount; the trampoline it emits loops over the init
// functions at run time.
type Package struct {
	Key     PackageKey
	Name    string
	members map[string]int32
	inits   int
}

// NewPackage creates a package with the given exported-member table. The
// member table maps an exported identifier name to its slot in the
// package's global-value array.
func NewPackage(key PackageKey, name string, members map[string]int32, initFuncCount int) *Package {
	m := make(map[string]int32, len(members))
	for k, v := range members {
		m[k] = v
	}
	return &Package{Key: key, Name: name, members: m, inits: initFuncCount}
}

// MemberIndex looks up an exported member by name. The second result is
// false if the name is not exported by this package — the codegen core
// treats that as an invariant violation (the checker should never have
// produced a PkgMemberIndex address for an unexported or undefined name).
func (p *Package) MemberIndex(name string) (int32, bool) {
	i, ok := p.members[name]
	return i, ok
}

// InitFuncCount returns how many package-level init functions this package
// declares, in execution order.
func (p *Package) InitFuncCount() int { return p.inits }

// Packages is a lookup table from PackageKey to Package, the "packages"
// argument threaded through Addr.Resolve.
type Packages map[PackageKey]*Package
