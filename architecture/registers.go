package architecture

type Register struct {
	Name string

	// When true, the register is reserved for stack pointer.
	IsStackPointer bool

	// When true, the register is usable for signed/unsigned int and pointer
	// operations, as well as general data storage.
	AllowGeneralOp bool

	// When true, the register is usable for floating point and SIMD
	// operations, as well as general data storage.
	AllowFloatOp bool
}

func NewStackPointerRegister(name string) *Register {
	return &Register{
		Name:           name,
		IsStackPointer: true,
	}
}

func NewGeneralRegister(name string) *Register {
	return &Register{
		Name:           name,
		AllowGeneralOp: true,
	}
}

func NewFloatRegister(name string) *Register {
	return &Register{
		Name:         name,
		AllowFloatOp: true,
	}
}

// Assumptions:
//
// 1. When a portion (e.g., w0) of a register is used, the entire register
// (e.g., x0) is considered occupied.  i.e., a register cannot be partitioned
// into multiple disjointed registers.
//
// 2. Each architecture have exactly one stack pointer register.  The stack
// pointer is always live and hence can't be used as a general/float register.
//
// 3. General and float register files are disjoint.  A value is either
// entirely in general registers, entirely in float registers, or entirely
// on stack.
type RegisterSet struct {
	StackPointer *Register

	// The set of registers usable for signed/unsigned int and pointer
	// operations.
	General []*Register

	// The set of registers usable for floating point / SIMD operations.
	Float []*Register

	// All non-stack-pointer registers, usable for temporary data storage.
	Data []*Register
}

func NewRegisterSet(registers ...*Register) *RegisterSet {
	set := &RegisterSet{}

	names := map[string]struct{}{}
	for _, register := range registers {
		if register.Name == "" {
			panic("no register name")
		}

		_, ok := names[register.Name]
		if ok {
			panic("added duplicate register: " + register.Name)
		}
		names[register.Name] = struct{}{}

		set.add(register)
	}

	if set.StackPointer == nil {
		panic("no stack pointer register specified")
	}

	return set
}

func (set *RegisterSet) add(register *Register) {
	if register.IsStackPointer {
		if register.AllowGeneralOp || register.AllowFloatOp {
			panic("stack pointer register cannot be general/float register")
		}

		if set.StackPointer != nil {
			panic("multiple stack pointer register specified")
		}
		set.StackPointer = register
		return
	}

	if !register.AllowGeneralOp && !register.AllowFloatOp {
		panic("added unusable register")
	}

	set.Data = append(set.Data, register)

	if register.AllowGeneralOp {
		set.General = append(set.General, register)
	}

	if register.AllowFloatOp {
		set.Float = append(set.Float, register)
	}
}
