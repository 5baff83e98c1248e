package arm64

import (
	"github.com/pattyshack/nuthatch/architecture"
	"github.com/pattyshack/nuthatch/platform"
	"github.com/pattyshack/nuthatch/types"
)

// Argument classification based on the Procedure Call Standard for the ARM
// 64-bit Architecture (AAPCS64), sections 5.4 and 5.5:
//
// https://github.com/ARM-software/abi-aa/blob/main/aapcs64/aapcs64.rst
//
// Each argument type is classified independently.  The classification never
// fails for concrete types; every type shape terminates in one of the pass
// kinds below.

func NewCallSpec(convention platform.CallConvention) platform.CallSpec {
	switch convention {
	case platform.StandardCallConvention:
		return standardCallSpec{}
	default: // Error emitted by signature validation
		return standardCallSpec{}
	}
}

type passKind int

const (
	// A half-, single- or double-precision floating point scalar, passed in
	// the least significant bits of a float register (C.1).  Quad precision
	// and short vector types have no descriptor kind and are never matched.
	passFloatScalar = passKind(iota)

	// A homogeneous floating-point aggregate, passed with one float
	// register per member (C.2).
	passHomogeneousAggregate

	// A composite type larger than 16 bytes, copied to caller allocated
	// memory and replaced by a pointer to the copy (B.3).
	passByReference

	// An immutable zero-field bit pattern of integral/pointer size, passed
	// in general registers unmodified (C.7, C.9).
	passDirectBits

	// A composite type of at most 16 bytes, repacked into consecutive
	// 64-bit general register units (C.10).
	passPackedComposite

	// A bit pattern with a weird or large size and no natural register
	// encoding, passed on stack (C.15).  Kept distinct from passByReference
	// even though both end up on stack.
	passIrregular
)

// Pre-computed shape of a value type.  Computed once per classification and
// shared by the classifier and the representation rewriter to avoid
// re-running descriptor queries.
type typeShape struct {
	kind     passKind
	byteSize int

	// Only set for passHomogeneousAggregate.
	memberCount int
	memberKind  types.FloatKind
}

// Returns the member count of a homogeneous floating-point aggregate, or 0
// if the type does not qualify.
//
// A qualifying aggregate has one to four uniquely addressable members, all
// of the identical half-, single- or double-precision floating point type.
// Members must be plain floating point scalars; nested aggregates do not
// qualify.  Quad precision and short vector members are unsupported.
func homogeneousMemberCount(argType types.Type) int {
	members := argType.NumFields()
	if members < 1 || members > architecture.MaxHomogeneousMembers {
		return 0
	}

	first, ok := argType.FieldType(0).(types.FloatType)
	if !ok {
		return 0
	}
	switch first.Kind {
	case types.F16, types.F32, types.F64: // ok
	default:
		return 0
	}

	for idx := 1; idx < members; idx++ {
		if !first.Equals(argType.FieldType(idx)) {
			return 0
		}
	}

	return members
}

// Returns true if a non-homogeneous composite type must be copied to caller
// allocated memory and passed by reference (B.3: composite types larger
// than 16 bytes).
func needPassByRef(argType types.Type) bool {
	return argType.NumFields() > 0 &&
		argType.ByteSize() > architecture.MaxRegisterPassedSize
}

func shapeOf(argType types.Type) typeShape {
	// C.1
	if _, ok := argType.(types.FloatType); ok {
		return typeShape{
			kind:     passFloatScalar,
			byteSize: argType.ByteSize(),
		}
	}

	// C.2.  Homogeneity takes precedence over the B.3 size check; a large
	// homogeneous aggregate stays in float registers.
	if members := homogeneousMemberCount(argType); members > 0 {
		return typeShape{
			kind:        passHomogeneousAggregate,
			byteSize:    argType.ByteSize(),
			memberCount: members,
			memberKind:  argType.FieldType(0).(types.FloatType).Kind,
		}
	}

	// B.3
	if needPassByRef(argType) {
		return typeShape{
			kind:     passByReference,
			byteSize: argType.ByteSize(),
		}
	}

	// C.7 / C.9.  Any immutable zero-field bit pattern of the right size is
	// treated as an integral or pointer type.  This covers raw pointer
	// handles which must travel in general registers.
	if argType.IsImmutable() && argType.NumFields() == 0 {
		switch argType.ByteSize() {
		case 1, 2, 4, 8, 16:
			return typeShape{
				kind:     passDirectBits,
				byteSize: argType.ByteSize(),
			}
		}
	}

	// C.10.  At most 16 bytes here; larger composites were already routed
	// to passByReference.
	if argType.NumFields() > 0 {
		return typeShape{
			kind:     passPackedComposite,
			byteSize: argType.ByteSize(),
		}
	}

	// C.15.  Only oddly sized bit patterns reach this point.
	return typeShape{
		kind:     passIrregular,
		byteSize: argType.ByteSize(),
	}
}

func classifyShape(shape typeShape) platform.ArgumentClassification {
	switch shape.kind {
	case passFloatScalar:
		return platform.ArgumentClassification{
			InFloatRegister: true,
		}
	case passHomogeneousAggregate:
		return platform.ArgumentClassification{
			InFloatRegister: true,
			NeedsRewrite:    true,
		}
	case passByReference:
		return platform.ArgumentClassification{
			OnStack: true,
		}
	case passDirectBits:
		return platform.ArgumentClassification{}
	case passPackedComposite:
		return platform.ArgumentClassification{
			NeedsRewrite: true,
		}
	case passIrregular:
		return platform.ArgumentClassification{
			OnStack: true,
		}
	default:
		panic("should never happen")
	}
}

type standardCallSpec struct{}

var _ platform.CallSpec = standardCallSpec{}

func (standardCallSpec) IsValidArgType(argType types.Type) bool {
	return argType != nil && !argType.IsAbstract()
}

func (standardCallSpec) IsValidReturnType(retType types.Type) bool {
	return retType != nil && !retType.IsAbstract()
}

func (standardCallSpec) ClassifyArgument(
	state *platform.CallSiteState,
	argType types.Type,
) platform.ArgumentClassification {
	// state carries the NGRN/NSRN counters.  Per-argument classification
	// never consumes registers, so the counters are not advanced here.
	return classifyShape(shapeOf(argType))
}

func (spec standardCallSpec) RequiresStructReturn(
	state *platform.CallSiteState,
	retType types.Type,
) bool {
	// Section 5.5: a result that would be passed on stack as an argument is
	// returned through caller allocated memory instead, since no register
	// set is reserved for oversized or irregular aggregates.
	return spec.ClassifyArgument(state, retType).OnStack
}
