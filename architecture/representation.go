package architecture

import (
	"fmt"
)

// The register unit kinds a rewritten value may be split into.
type RegisterUnit string

const (
	// A 64-bit slice of a general-purpose register.
	GeneralUnit = RegisterUnit("GeneralUnit")

	// Scalar floating point register slices.
	Float16Unit = RegisterUnit("Float16Unit")
	Float32Unit = RegisterUnit("Float32Unit")
	Float64Unit = RegisterUnit("Float64Unit")
)

func (unit RegisterUnit) ByteSize() int {
	switch unit {
	case GeneralUnit:
		return RegisterByteSize
	case Float16Unit:
		return 2
	case Float32Unit:
		return 4
	case Float64Unit:
		return 8
	default:
		panic("unexpected register unit: " + string(unit))
	}
}

func (unit RegisterUnit) IsFloat() bool {
	return unit != GeneralUnit
}

// The physical shape a code generator should use in place of a value's
// natural layout: an array of NumElements same-kind register units, loaded
// and stored element by element.
//
// A nil *Representation indicates the natural layout is already correct.
type Representation struct {
	NumElements int
	Unit        RegisterUnit
}

func NewRepresentation(numElements int, unit RegisterUnit) *Representation {
	if numElements < 1 {
		panic("representation must have at least one element")
	}

	return &Representation{
		NumElements: numElements,
		Unit:        unit,
	}
}

func (rep *Representation) ByteSize() int {
	return rep.NumElements * rep.Unit.ByteSize()
}

func (rep *Representation) String() string {
	return fmt.Sprintf("[%d x %s]", rep.NumElements, rep.Unit)
}
