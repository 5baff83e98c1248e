package architecture

import (
	"testing"
)

func TestRegisterSet(t *testing.T) {
	sp := NewStackPointerRegister("sp")
	x0 := NewGeneralRegister("x0")
	x1 := NewGeneralRegister("x1")
	v0 := NewFloatRegister("v0")

	set := NewRegisterSet(sp, x0, x1, v0)

	if set.StackPointer != sp {
		t.Error("wrong stack pointer register")
	}
	if len(set.General) != 2 {
		t.Errorf("len(General) = %d, want 2", len(set.General))
	}
	if len(set.Float) != 1 {
		t.Errorf("len(Float) = %d, want 1", len(set.Float))
	}
	if len(set.Data) != 3 {
		t.Errorf("len(Data) = %d, want 3", len(set.Data))
	}
}

func TestRegisterSetRejectsDuplicates(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for duplicate register")
		}
	}()
	NewRegisterSet(
		NewStackPointerRegister("sp"),
		NewGeneralRegister("x0"),
		NewGeneralRegister("x0"))
}

func TestCallStackFrameLayout(t *testing.T) {
	frame := NewCallStackFrame()
	first := frame.AddParameter("a", 20) // aligned to 24
	second := frame.AddParameter("b", 8) // aligned to 8
	third := frame.AddParameter("c", 17) // aligned to 24

	frame.Finalize()

	if first.Offset != 0 {
		t.Errorf("first.Offset = %d, want 0", first.Offset)
	}
	if second.Offset != 24 {
		t.Errorf("second.Offset = %d, want 24", second.Offset)
	}
	if third.Offset != 32 {
		t.Errorf("third.Offset = %d, want 32", third.Offset)
	}

	// 24 + 8 + 24 = 56, rounded up to 64
	if frame.ArgumentAreaSize != 64 {
		t.Errorf("ArgumentAreaSize = %d, want 64", frame.ArgumentAreaSize)
	}
	if frame.TotalFrameSize != 64 {
		t.Errorf("TotalFrameSize = %d, want 64", frame.TotalFrameSize)
	}
	if len(frame.Layout) != 3 {
		t.Errorf("len(Layout) = %d, want 3", len(frame.Layout))
	}
}

func TestCallStackFrameStructReturn(t *testing.T) {
	frame := NewCallStackFrame()
	frame.AddParameter("a", 24)
	dest := frame.SetDestination(20)

	frame.Finalize()

	// Argument area is 24 rounded up to 32; destination sits above it.
	if dest.Offset != 32 {
		t.Errorf("dest.Offset = %d, want 32", dest.Offset)
	}
	if frame.TotalFrameSize != 56 {
		t.Errorf("TotalFrameSize = %d, want 56", frame.TotalFrameSize)
	}
	if frame.Layout[len(frame.Layout)-1] != dest {
		t.Error("destination should be at the top of the layout")
	}
}

func TestCallStackFrameFinalizeOnce(t *testing.T) {
	frame := NewCallStackFrame()
	frame.Finalize()

	defer func() {
		if recover() == nil {
			t.Error("expected panic for double finalize")
		}
	}()
	frame.Finalize()
}

func TestEmptyCallStackFrame(t *testing.T) {
	frame := NewCallStackFrame()
	frame.Finalize()

	if frame.TotalFrameSize != 0 {
		t.Errorf("TotalFrameSize = %d, want 0", frame.TotalFrameSize)
	}
}
