package platform

import (
	"github.com/pattyshack/nuthatch/architecture"
)

type ArchitectureName string
type OperatingSystemName string

const (
	Arm64 = ArchitectureName("arm64")

	Linux  = OperatingSystemName("linux")
	Darwin = OperatingSystemName("darwin")
)

type Platform interface {
	ArchitectureName() ArchitectureName
	OperatingSystemName() OperatingSystemName

	CallSpec(CallConvention) CallSpec

	RegisterSet() *architecture.RegisterSet
}
