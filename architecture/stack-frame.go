package architecture

// Caller-side layout of a single call's outgoing stack area, from the stack
// pointer upward:
//
// |              | (low address)
// |--------------| <- stack pointer at the point of call
// |argument 1    | first argument that goes on the stack
// |--------------|
// |...           |
// |--------------|
// |argument n    |
// |--------------|
// |padding       | keeps the frame 16-byte aligned
// |--------------|
// |struct return | Optional caller allocated result memory.  The callee
// |              | writes through a hidden pointer to this slot.
// |--------------| <- start of caller's own frame
// |              | (high address)
//
// Each stack argument starts at the next 8-byte aligned offset and occupies
// its register aligned size.  Register-passed arguments never take up stack
// space.
//
// Layout is finalized once; locations are immutable afterwards.
type CallStackFrame struct {
	// In natural argument order.
	Parameters []*DataLocation

	// Caller allocated memory backing the struct-return convention.  nil
	// when the result fits in registers.
	Destination *DataLocation

	// Computed by Finalize()
	ArgumentAreaSize int // 16-byte aligned size of the stack argument area
	TotalFrameSize   int
	Layout           []*DataLocation // from bottom (low address) to top

	finalized bool
}

func NewCallStackFrame() *CallStackFrame {
	return &CallStackFrame{}
}

// Parameters must be added in natural (first to last) order.
func (frame *CallStackFrame) AddParameter(
	name string,
	byteSize int,
) *DataLocation {
	if frame.finalized {
		panic("cannot add parameter after finalize")
	}

	loc := NewStackDataLocation(name, byteSize)
	frame.Parameters = append(frame.Parameters, loc)
	return loc
}

func (frame *CallStackFrame) SetDestination(byteSize int) *DataLocation {
	if frame.finalized {
		panic("cannot set destination after finalize")
	}
	if frame.Destination != nil {
		panic("destination already set")
	}

	frame.Destination = NewStackDataLocation("%struct-return", byteSize)
	return frame.Destination
}

func (frame *CallStackFrame) Finalize() {
	if frame.finalized {
		panic("frame already finalized")
	}
	frame.finalized = true

	offset := 0
	layout := make([]*DataLocation, 0, len(frame.Parameters)+1)
	for _, loc := range frame.Parameters {
		loc.Offset = offset
		offset += loc.AlignedSize
		layout = append(layout, loc)
	}

	roundUp := (offset + StackFrameAlignment - 1) / StackFrameAlignment
	frame.ArgumentAreaSize = roundUp * StackFrameAlignment

	totalSize := frame.ArgumentAreaSize
	if frame.Destination != nil {
		frame.Destination.Offset = totalSize
		totalSize += frame.Destination.AlignedSize
		layout = append(layout, frame.Destination)
	}

	frame.TotalFrameSize = totalSize
	frame.Layout = layout
}
