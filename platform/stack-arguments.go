package platform

import (
	"fmt"

	"github.com/pattyshack/nuthatch/architecture"
	"github.com/pattyshack/nuthatch/types"
)

// NewOutgoingFrame lays out the caller side stack memory for a single call:
// one slot per argument classified on stack (in natural argument order),
// plus the caller allocated result slot when the return type uses the
// struct return convention.
//
// For on-stack composite arguments the slot holds the caller's copy of the
// value; the code generator substitutes the slot's address for the argument.
// For irregular scalars the slot holds the value itself.  Register-passed
// arguments take up no stack space.
func NewOutgoingFrame(
	spec CallSpec,
	paramTypes []types.Type,
	returnType types.Type,
) *architecture.CallStackFrame {
	state := &CallSiteState{}
	frame := architecture.NewCallStackFrame()

	for idx, paramType := range paramTypes {
		classification := spec.ClassifyArgument(state, paramType)
		if classification.OnStack {
			frame.AddParameter(
				fmt.Sprintf("%%arg%d", idx),
				paramType.ByteSize())
		}
	}

	if returnType != nil && spec.RequiresStructReturn(state, returnType) {
		frame.SetDestination(returnType.ByteSize())
	}

	frame.Finalize()
	return frame
}
