package arm64

import (
	"github.com/pattyshack/nuthatch/architecture"
)

var (
	sp = architecture.NewStackPointerRegister("sp")

	x0  = architecture.NewGeneralRegister("x0")
	x1  = architecture.NewGeneralRegister("x1")
	x2  = architecture.NewGeneralRegister("x2")
	x3  = architecture.NewGeneralRegister("x3")
	x4  = architecture.NewGeneralRegister("x4")
	x5  = architecture.NewGeneralRegister("x5")
	x6  = architecture.NewGeneralRegister("x6")
	x7  = architecture.NewGeneralRegister("x7")
	x8  = architecture.NewGeneralRegister("x8")
	x9  = architecture.NewGeneralRegister("x9")
	x10 = architecture.NewGeneralRegister("x10")
	x11 = architecture.NewGeneralRegister("x11")
	x12 = architecture.NewGeneralRegister("x12")
	x13 = architecture.NewGeneralRegister("x13")
	x14 = architecture.NewGeneralRegister("x14")
	x15 = architecture.NewGeneralRegister("x15")
	x16 = architecture.NewGeneralRegister("x16")
	x17 = architecture.NewGeneralRegister("x17")
	x18 = architecture.NewGeneralRegister("x18")
	x19 = architecture.NewGeneralRegister("x19")
	x20 = architecture.NewGeneralRegister("x20")
	x21 = architecture.NewGeneralRegister("x21")
	x22 = architecture.NewGeneralRegister("x22")
	x23 = architecture.NewGeneralRegister("x23")
	x24 = architecture.NewGeneralRegister("x24")
	x25 = architecture.NewGeneralRegister("x25")
	x26 = architecture.NewGeneralRegister("x26")
	x27 = architecture.NewGeneralRegister("x27")
	x28 = architecture.NewGeneralRegister("x28")
	x29 = architecture.NewGeneralRegister("x29") // frame pointer
	x30 = architecture.NewGeneralRegister("x30") // link register

	v0  = architecture.NewFloatRegister("v0")
	v1  = architecture.NewFloatRegister("v1")
	v2  = architecture.NewFloatRegister("v2")
	v3  = architecture.NewFloatRegister("v3")
	v4  = architecture.NewFloatRegister("v4")
	v5  = architecture.NewFloatRegister("v5")
	v6  = architecture.NewFloatRegister("v6")
	v7  = architecture.NewFloatRegister("v7")
	v8  = architecture.NewFloatRegister("v8")
	v9  = architecture.NewFloatRegister("v9")
	v10 = architecture.NewFloatRegister("v10")
	v11 = architecture.NewFloatRegister("v11")
	v12 = architecture.NewFloatRegister("v12")
	v13 = architecture.NewFloatRegister("v13")
	v14 = architecture.NewFloatRegister("v14")
	v15 = architecture.NewFloatRegister("v15")
	v16 = architecture.NewFloatRegister("v16")
	v17 = architecture.NewFloatRegister("v17")
	v18 = architecture.NewFloatRegister("v18")
	v19 = architecture.NewFloatRegister("v19")
	v20 = architecture.NewFloatRegister("v20")
	v21 = architecture.NewFloatRegister("v21")
	v22 = architecture.NewFloatRegister("v22")
	v23 = architecture.NewFloatRegister("v23")
	v24 = architecture.NewFloatRegister("v24")
	v25 = architecture.NewFloatRegister("v25")
	v26 = architecture.NewFloatRegister("v26")
	v27 = architecture.NewFloatRegister("v27")
	v28 = architecture.NewFloatRegister("v28")
	v29 = architecture.NewFloatRegister("v29")
	v30 = architecture.NewFloatRegister("v30")
	v31 = architecture.NewFloatRegister("v31")

	RegisterSet = architecture.NewRegisterSet(
		sp,
		x0, x1, x2, x3, x4, x5, x6, x7,
		x8, x9, x10, x11, x12, x13, x14, x15,
		x16, x17, x18, x19, x20, x21, x22, x23,
		x24, x25, x26, x27, x28, x29, x30,
		v0, v1, v2, v3, v4, v5, v6, v7,
		v8, v9, v10, v11, v12, v13, v14, v15,
		v16, v17, v18, v19, v20, v21, v22, v23,
		v24, v25, v26, v27, v28, v29, v30, v31)
)
