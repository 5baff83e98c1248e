package architecture

const (
	// Assumption: we only support 64 bit architecture.
	RegisterByteSize = 8
	AddressByteSize  = RegisterByteSize

	// Largest value that may be passed directly in registers.  Composite
	// types above this size are copied to caller allocated memory and
	// passed by reference.
	MaxRegisterPassedSize = 2 * RegisterByteSize

	// Outgoing stack arguments are padded to register size; the whole
	// argument area keeps the stack pointer 16-byte aligned.
	StackSlotAlignment  = RegisterByteSize
	StackFrameAlignment = 16

	// Largest number of uniquely addressable members in a homogeneous
	// floating-point aggregate.
	MaxHomogeneousMembers = 4
)

func NumRegisters(byteSize int) int {
	return (byteSize + RegisterByteSize - 1) / RegisterByteSize
}

func AlignedSize(byteSize int) int {
	return NumRegisters(byteSize) * RegisterByteSize
}
