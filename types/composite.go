package types

import (
	"strings"
)

// A composite type with ordered, uniquely addressable fields.
//
// Field layout uses natural alignment (each field aligned to its own
// alignment, total size rounded up to the struct alignment).  The layout is
// computed once at construction time; descriptors are immutable afterwards.
type StructType struct {
	isType

	Name   string
	Fields []Type

	// Packed structs have no interior or trailing padding.
	Packed bool

	// Mutable structs have reference semantics.
	Mutable bool

	size  int
	align int
}

var _ Type = &StructType{}

func NewStruct(name string, fields ...Type) *StructType {
	structType := &StructType{
		Name:   name,
		Fields: fields,
	}
	structType.computeLayout()
	return structType
}

func NewPackedStruct(name string, fields ...Type) *StructType {
	structType := &StructType{
		Name:   name,
		Fields: fields,
		Packed: true,
	}
	structType.computeLayout()
	return structType
}

func (structType *StructType) computeLayout() {
	offset := 0
	maxAlign := 1
	for _, field := range structType.Fields {
		fieldSize := field.ByteSize()
		fieldAlign := alignmentOf(field)
		if structType.Packed {
			fieldAlign = 1
		}

		offset = alignUp(offset, fieldAlign)
		offset += fieldSize

		if fieldAlign > maxAlign {
			maxAlign = fieldAlign
		}
	}

	structType.size = alignUp(offset, maxAlign)
	structType.align = maxAlign
}

func (structType *StructType) String() string {
	if structType.Name != "" {
		return structType.Name
	}

	fields := make([]string, 0, len(structType.Fields))
	for _, field := range structType.Fields {
		fields = append(fields, field.String())
	}
	return "{" + strings.Join(fields, ", ") + "}"
}

func (structType *StructType) Equals(other Type) bool {
	otherType, ok := other.(*StructType)
	if !ok {
		return false
	}

	if structType.Name != otherType.Name ||
		structType.Packed != otherType.Packed ||
		structType.Mutable != otherType.Mutable ||
		len(structType.Fields) != len(otherType.Fields) {

		return false
	}

	for idx, field := range structType.Fields {
		if !field.Equals(otherType.Fields[idx]) {
			return false
		}
	}

	return true
}

func (structType *StructType) NumFields() int {
	return len(structType.Fields)
}

func (structType *StructType) FieldType(idx int) Type {
	return structType.Fields[idx]
}

func (structType *StructType) ByteSize() int {
	return structType.size
}

func (structType *StructType) Alignment() int {
	return structType.align
}

func (structType *StructType) IsImmutable() bool {
	return !structType.Mutable
}

func (*StructType) IsAbstract() bool {
	return false
}

// Natural alignment for layout purposes.  Scalar and bit-pattern types are
// aligned to their size when the size is a supported register fraction;
// oddly sized bit patterns have no natural alignment.
func alignmentOf(t Type) int {
	switch typ := t.(type) {
	case *StructType:
		return typ.align
	case BitsType:
		switch typ.Size {
		case 1, 2, 4, 8, 16:
			return typ.Size
		default:
			return 1
		}
	default:
		return t.ByteSize()
	}
}

func alignUp(offset int, align int) int {
	return (offset + align - 1) / align * align
}
