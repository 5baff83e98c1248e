package types

type FloatKind string

const (
	F16 = FloatKind("F16")
	F32 = FloatKind("F32")
	F64 = FloatKind("F64")
)

// Half-, single-, and double-precision floating point scalar.  Quad
// precision and short-vector kinds are unsupported.
type FloatType struct {
	isType

	Kind FloatKind
}

var _ Type = FloatType{}

func NewFloat(kind FloatKind) FloatType {
	return FloatType{Kind: kind}
}

func (floatType FloatType) String() string {
	return string(floatType.Kind)
}

func (floatType FloatType) Equals(other Type) bool {
	otherType, ok := other.(FloatType)
	if !ok {
		return false
	}

	return floatType.Kind == otherType.Kind
}

func (FloatType) NumFields() int {
	return 0
}

func (FloatType) FieldType(idx int) Type {
	panic("float type has no fields")
}

func (floatType FloatType) ByteSize() int {
	switch floatType.Kind {
	case F16:
		return 2
	case F32:
		return 4
	case F64:
		return 8
	default:
		panic("unexpected float kind: " + string(floatType.Kind))
	}
}

func (FloatType) IsImmutable() bool {
	return true
}

func (FloatType) IsAbstract() bool {
	return false
}

type IntKind string

const (
	I8  = IntKind("I8")
	I16 = IntKind("I16")
	I32 = IntKind("I32")
	I64 = IntKind("I64")

	U8  = IntKind("U8")
	U16 = IntKind("U16")
	U32 = IntKind("U32")
	U64 = IntKind("U64")
)

type IntType struct {
	isType

	Kind IntKind
}

var _ Type = IntType{}

func NewInt(kind IntKind) IntType {
	return IntType{Kind: kind}
}

func (intType IntType) String() string {
	return string(intType.Kind)
}

func (intType IntType) Equals(other Type) bool {
	otherType, ok := other.(IntType)
	if !ok {
		return false
	}

	return intType.Kind == otherType.Kind
}

func (IntType) NumFields() int {
	return 0
}

func (IntType) FieldType(idx int) Type {
	panic("int type has no fields")
}

func (intType IntType) ByteSize() int {
	switch intType.Kind {
	case I8, U8:
		return 1
	case I16, U16:
		return 2
	case I32, U32:
		return 4
	case I64, U64:
		return 8
	default:
		panic("unexpected int kind: " + string(intType.Kind))
	}
}

func (IntType) IsImmutable() bool {
	return true
}

func (IntType) IsAbstract() bool {
	return false
}

// An opaque bit pattern with no declared fields, e.g., a raw pointer handle
// or a machine address wrapper.  The size is declared rather than computed.
type BitsType struct {
	isType

	Name string
	Size int

	// Mutable bits types have reference semantics and never qualify for
	// direct register passing.
	Mutable bool
}

var _ Type = BitsType{}

func NewBits(name string, size int) BitsType {
	return BitsType{Name: name, Size: size}
}

func (bitsType BitsType) String() string {
	return bitsType.Name
}

func (bitsType BitsType) Equals(other Type) bool {
	otherType, ok := other.(BitsType)
	if !ok {
		return false
	}

	return bitsType.Name == otherType.Name &&
		bitsType.Size == otherType.Size &&
		bitsType.Mutable == otherType.Mutable
}

func (BitsType) NumFields() int {
	return 0
}

func (BitsType) FieldType(idx int) Type {
	panic("bits type has no fields")
}

func (bitsType BitsType) ByteSize() int {
	return bitsType.Size
}

func (bitsType BitsType) IsImmutable() bool {
	return !bitsType.Mutable
}

func (BitsType) IsAbstract() bool {
	return false
}

// A type that cannot be instantiated.  Classification preconditions require
// callers to filter these out; the descriptor exists so validation layers
// have something to reject.
type AbstractType struct {
	isType

	Name string
}

var _ Type = AbstractType{}

func NewAbstract(name string) AbstractType {
	return AbstractType{Name: name}
}

func (abstractType AbstractType) String() string {
	return abstractType.Name
}

func (abstractType AbstractType) Equals(other Type) bool {
	otherType, ok := other.(AbstractType)
	if !ok {
		return false
	}

	return abstractType.Name == otherType.Name
}

func (AbstractType) NumFields() int {
	return 0
}

func (AbstractType) FieldType(idx int) Type {
	panic("abstract type has no fields")
}

func (AbstractType) ByteSize() int {
	panic("abstract type has no size")
}

func (AbstractType) IsImmutable() bool {
	return false
}

func (AbstractType) IsAbstract() bool {
	return true
}
