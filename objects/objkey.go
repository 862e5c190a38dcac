// Package objects models the external collaborators the codegen core
// consumes but does not own: the type checker's object keys, the constant
// pool, and the package/function metadata tables. A real compiler wires
// these to its parser and checker; here they are the minimal concrete shapes
// that let the compiler package be built and tested on its own.
package objects

import "sync/atomic"

// ObjKey identifies a type-checker object: a local, a const, a label, a
// function. It stands in for goscript's TCObjKey. Keys are minted by
// NewObjKey and are comparable, so they can key a plain map or a
// swiss.Map alike.
type ObjKey struct {
	n uint64
}

var objKeySeq uint64

// NewObjKey mints a fresh, never-repeating object key.
func NewObjKey() ObjKey {
	return ObjKey{n: atomic.AddUint64(&objKeySeq, 1)}
}

// Valid reports whether the key was minted by NewObjKey, as opposed to the
// zero value (which no real object is ever assigned).
func (k ObjKey) Valid() bool { return k.n != 0 }
