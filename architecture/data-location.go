package architecture

import (
	"fmt"
)

// Where an outgoing argument or return value physically lives during a
// call.
//
// A value is either completely in registers or completely on stack; register
// and stack overlays are not supported.
type DataLocation struct {
	Name string

	Registers []*Register
	OnStack   bool

	AlignedSize int // register aligned size

	// Offset is relative to the stack pointer at the point of call:
	//
	// entry address = stack pointer address + offset
	//
	// Only meaningful for OnStack locations, and only after the frame is
	// finalized.
	Offset int
}

func NewRegistersDataLocation(
	name string,
	byteSize int,
	registers []*Register,
) *DataLocation {
	if len(registers) != NumRegisters(byteSize) {
		panic("should never happen")
	}

	return &DataLocation{
		Name:        name,
		Registers:   registers,
		AlignedSize: AlignedSize(byteSize),
	}
}

func NewStackDataLocation(
	name string,
	byteSize int,
) *DataLocation {
	return &DataLocation{
		Name:        name,
		OnStack:     true,
		AlignedSize: AlignedSize(byteSize),
	}
}

func (loc *DataLocation) Copy() *DataLocation {
	var registers []*Register
	if loc.Registers != nil {
		registers = make([]*Register, 0, len(loc.Registers))
		registers = append(registers, loc.Registers...)
	}

	return &DataLocation{
		Name:        loc.Name,
		Registers:   registers,
		OnStack:     loc.OnStack,
		AlignedSize: loc.AlignedSize,
		Offset:      loc.Offset,
	}
}

func (loc *DataLocation) String() string {
	registers := []string{}
	for _, reg := range loc.Registers {
		registers = append(registers, reg.Name)
	}
	return fmt.Sprintf(
		"Name: %s Registers: %v OnStack: %v AlignedSize: %d Offset: %d",
		loc.Name,
		registers,
		loc.OnStack,
		loc.AlignedSize,
		loc.Offset)
}
