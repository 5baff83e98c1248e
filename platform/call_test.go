package platform

import (
	"testing"

	"github.com/pattyshack/gt/parseutil"

	"github.com/pattyshack/nuthatch/types"
)

type rejectAbstractTypeSpec struct{}

func (rejectAbstractTypeSpec) IsValidArgType(argType types.Type) bool {
	return argType != nil && !argType.IsAbstract()
}

func (rejectAbstractTypeSpec) IsValidReturnType(retType types.Type) bool {
	return retType != nil && !retType.IsAbstract()
}

func testPos() parseutil.StartEndPos {
	loc := parseutil.Location{FileName: "test", Line: 1, Column: 1}
	return parseutil.NewStartEndPos(loc, loc)
}

func TestValidateSignature(t *testing.T) {
	emitter := &parseutil.Emitter{}
	ValidateSignature(
		rejectAbstractTypeSpec{},
		testPos(),
		[]types.Type{
			types.NewFloat(types.F64),
			types.NewAbstract("any"),
			types.NewInt(types.I32),
			types.NewAbstract("number"),
		},
		types.NewAbstract("result"),
		emitter)

	if len(emitter.Errors()) != 3 {
		t.Errorf("len(Errors()) = %d, want 3", len(emitter.Errors()))
	}
}

func TestValidateSignatureAccepts(t *testing.T) {
	emitter := &parseutil.Emitter{}
	ValidateSignature(
		rejectAbstractTypeSpec{},
		testPos(),
		[]types.Type{
			types.NewFloat(types.F32),
			types.NewStruct("", types.NewInt(types.I8)),
		},
		types.NewBits("ptr", 8),
		emitter)

	if emitter.HasErrors() {
		t.Errorf("unexpected errors: %v", emitter.Errors())
	}
}

func TestValidateSignatureNoReturnType(t *testing.T) {
	emitter := &parseutil.Emitter{}
	ValidateSignature(
		rejectAbstractTypeSpec{},
		testPos(),
		nil,
		nil,
		emitter)

	if emitter.HasErrors() {
		t.Errorf("unexpected errors: %v", emitter.Errors())
	}
}
