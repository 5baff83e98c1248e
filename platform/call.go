package platform

import (
	"github.com/pattyshack/gt/parseutil"

	"github.com/pattyshack/nuthatch/architecture"
	"github.com/pattyshack/nuthatch/types"
)

type CallConvention string

const (
	// The architecture's standard procedure call convention.
	StandardCallConvention = CallConvention("standard")
)

// How a single argument is physically passed.
//
// The three outputs are mutually constrained by the classification decision
// tree; they are never set independently:
//
//   - InFloatRegister && !OnStack: floating point register class.  The value
//     is rewritten to a float register array iff NeedsRewrite.
//   - !InFloatRegister && !OnStack: general register class.  The value is
//     rewritten to a general register array iff NeedsRewrite.
//   - OnStack: the caller copies the value to memory it allocates and passes
//     the copy's address (or places the value in the outgoing stack argument
//     area).  Never combined with InFloatRegister or NeedsRewrite.
type ArgumentClassification struct {
	InFloatRegister bool
	OnStack         bool
	NeedsRewrite    bool
}

// Per-call-site register accounting state, created by the caller before
// classifying the first argument of a call and discarded afterwards.
//
// The counters correspond to the procedure call standard's running NGRN /
// NSRN counts of consumed general and float registers.  Classification
// currently treats every argument independently and never advances the
// counters; they are reserved so cross-argument accounting can be added
// without changing the call contract.
type CallSiteState struct {
	NextGeneralRegister int
	NextFloatRegister   int
}

// Call convention specific classification of how values move across a
// native call boundary.  Consumed by the code generator.
//
// All methods are pure functions of their inputs and are safe to call
// concurrently.  Every method requires concrete (non-abstract) types;
// passing an abstract type is a defect in the caller.  Use ValidateSignature
// to filter signatures up front.
type CallSpec interface {
	CallTypeSpec

	// ClassifyArgument decides the register class, stack placement, and
	// representation rewrite requirement for a single argument type.
	ClassifyArgument(
		state *CallSiteState,
		argType types.Type,
	) ArgumentClassification

	// RequiresStructReturn returns true if a function returning retType
	// must use the struct return convention: the caller allocates result
	// memory and passes a hidden pointer for the callee to write through.
	RequiresStructReturn(state *CallSiteState, retType types.Type) bool

	// PreferredRepresentation returns the physical shape the code generator
	// should use in place of the type's natural layout, or nil if the
	// natural layout is already correct.
	PreferredRepresentation(
		valueType types.Type,
		isReturn bool,
	) *architecture.Representation
}

// Call convention specific, os/architecture-independent, type specification
// used for signature validation.
type CallTypeSpec interface {
	IsValidArgType(types.Type) bool

	IsValidReturnType(types.Type) bool
}

// ValidateSignature emits an error for every parameter/return type that the
// call spec cannot classify.  Classification preconditions require callers
// to filter such signatures before asking for argument placement.
func ValidateSignature(
	spec CallTypeSpec,
	pos parseutil.StartEndPos,
	paramTypes []types.Type,
	returnType types.Type,
	emitter *parseutil.Emitter,
) {
	for idx, paramType := range paramTypes {
		if !spec.IsValidArgType(paramType) {
			emitter.Emit(
				pos.Loc(),
				"cannot pass %s (parameter %d) by native call",
				paramType,
				idx)
		}
	}

	if returnType != nil && !spec.IsValidReturnType(returnType) {
		emitter.Emit(
			pos.Loc(),
			"cannot return %s by native call",
			returnType)
	}
}
