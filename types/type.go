package types

// Type describes a single value type crossing a native call boundary.
//
// The queries mirror what a host type system must be able to answer about
// any concrete type: field layout, total size, and value semantics.  Hosts
// with their own type representation implement this interface directly; the
// concrete descriptors in this package exist for tooling and tests.
//
// Implementations must answer all queries without mutation, and the answers
// must be stable for the lifetime of a classification call.
type Type interface {
	isTypeExpr()

	String() string

	Equals(Type) bool

	// NumFields returns the number of declared fields.  Zero for scalar and
	// opaque bit-pattern types.
	NumFields() int

	// FieldType returns the type of the idx-th field.  Panics if idx is out
	// of range.
	FieldType(idx int) Type

	// ByteSize returns the total size of the type in bytes, including any
	// interior padding.
	ByteSize() int

	// IsImmutable returns true if values of this type have value semantics
	// (the bit pattern is the entire identity of the value).
	IsImmutable() bool

	// IsAbstract returns true if the type cannot be instantiated and hence
	// cannot cross a call boundary.  Abstract types must be filtered out
	// before classification.
	IsAbstract() bool
}

type isType struct{}

func (isType) isTypeExpr() {}
