package arm64

import (
	"github.com/pattyshack/nuthatch/architecture"
	"github.com/pattyshack/nuthatch/types"
)

func floatRegisterUnit(kind types.FloatKind) architecture.RegisterUnit {
	switch kind {
	case types.F16:
		return architecture.Float16Unit
	case types.F32:
		return architecture.Float32Unit
	case types.F64:
		return architecture.Float64Unit
	default:
		// Guessing a unit here risks silent ABI corruption.
		panic("unsupported float kind: " + string(kind))
	}
}

func (standardCallSpec) PreferredRepresentation(
	valueType types.Type,
	isReturn bool,
) *architecture.Representation {
	// Half precision scalars need a dedicated 16 bit float register
	// representation in both argument and return position, even though no
	// rewrite is flagged; generators otherwise default them to a plain
	// 16 bit integer encoding, which selects the wrong register file.
	if floatType, ok := valueType.(types.FloatType); ok &&
		floatType.Kind == types.F16 {

		return architecture.NewRepresentation(1, architecture.Float16Unit)
	}

	shape := shapeOf(valueType)
	classification := classifyShape(shape)
	if !classification.NeedsRewrite {
		return nil
	}

	if classification.InFloatRegister {
		// Rewrite to one float register unit per homogeneous member.
		if shape.memberCount < 1 ||
			shape.memberCount > architecture.MaxHomogeneousMembers {

			panic("should never happen")
		}
		return architecture.NewRepresentation(
			shape.memberCount,
			floatRegisterUnit(shape.memberKind))
	}

	// Rewrite to consecutive 64-bit general register units.  Anything
	// larger than 16 bytes was already routed to pass by reference.
	if shape.byteSize > architecture.MaxRegisterPassedSize {
		panic("should never happen")
	}
	return architecture.NewRepresentation(
		architecture.NumRegisters(shape.byteSize),
		architecture.GeneralUnit)
}
