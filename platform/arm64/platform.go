package arm64

import (
	"github.com/pattyshack/nuthatch/architecture"
	"github.com/pattyshack/nuthatch/platform"
)

type Platform struct {
	os platform.OperatingSystemName
}

func NewPlatform(os platform.OperatingSystemName) platform.Platform {
	switch os {
	case platform.Linux, platform.Darwin: // ok
	default:
		panic("unsupported os: " + os)
	}

	return Platform{
		os: os,
	}
}

func (Platform) ArchitectureName() platform.ArchitectureName {
	return platform.Arm64
}

func (p Platform) OperatingSystemName() platform.OperatingSystemName {
	return p.os
}

func (Platform) CallSpec(
	convention platform.CallConvention,
) platform.CallSpec {
	return NewCallSpec(convention)
}

func (Platform) RegisterSet() *architecture.RegisterSet {
	return RegisterSet
}
