// fmul_lua_bench.go - Lua-scripted testbench driver for the multiplier

/*
███████╗███╗   ███╗██╗   ██╗██╗     ██████╗ ██████╗
██╔════╝████╗ ████║██║   ██║██║     ╚════██╗╚════██╗
█████╗  ██╔████╔██║██║   ██║██║      █████╔╝ █████╔╝
██╔══╝  ██║╚██╔╝██║██║   ██║██║      ╚═══██╗██╔═══╝
██║     ██║ ╚═╝ ██║╚██████╔╝███████╗██████╔╝███████╗
╚═╝     ╚═╝     ╚═╝ ╚═════╝ ╚══════╝╚═════╝ ╚══════╝

(c) 2025 - 2026 Daniel Arthur
https://github.com/danielarthurstp/multiply-fp32
License: GPLv3 or later
*/

package main

import (
	lua "github.com/yuin/gopher-lua"
)

// RunLuaBenchFile executes a Lua testbench script from a file against a
// fresh multiplier. The script drives the device-under-test through the
// global `dut` table, the software analogue of a simulator testbench
// poking a clocked design.
func RunLuaBenchFile(path string) error {
	L := lua.NewState()
	defer L.Close()
	registerBenchAPI(L, NewFMul32())
	return L.DoFile(path)
}

// RunLuaBenchScript executes testbench source text directly.
func RunLuaBenchScript(src string) error {
	L := lua.NewState()
	defer L.Close()
	registerBenchAPI(L, NewFMul32())
	return L.DoString(src)
}

// registerBenchAPI installs the `dut` table:
//
//	dut.reset()                        force the controller to Idle
//	dut.tick(start, a, b)              one step; returns busy, completed, result
//	dut.multiply(a, b)                 full operation; returns result bits
//	dut.ref(a, b)                      reference oracle result bits
//	dut.classify(bits)                 class name string
//	dut.stage()                        current stage name
//	dut.is_nan(bits)                   NaN predicate
//
// Operand bits are plain Lua numbers; uint32 values are exact in Lua's
// float64 representation.
func registerBenchAPI(L *lua.LState, m *FMul32) {
	dut := L.NewTable()

	L.SetField(dut, "reset", L.NewFunction(func(L *lua.LState) int {
		m.Reset()
		return 0
	}))

	L.SetField(dut, "tick", L.NewFunction(func(L *lua.LState) int {
		start := L.OptBool(1, false)
		a := uint32(L.OptNumber(2, 0))
		b := uint32(L.OptNumber(3, 0))
		busy, done, z := m.Tick(start, a, b)
		L.Push(lua.LBool(busy))
		L.Push(lua.LBool(done))
		L.Push(lua.LNumber(z))
		return 3
	}))

	L.SetField(dut, "multiply", L.NewFunction(func(L *lua.LState) int {
		a := uint32(L.CheckNumber(1))
		b := uint32(L.CheckNumber(2))
		L.Push(lua.LNumber(m.Multiply(a, b)))
		return 1
	}))

	L.SetField(dut, "ref", L.NewFunction(func(L *lua.LState) int {
		a := uint32(L.CheckNumber(1))
		b := uint32(L.CheckNumber(2))
		L.Push(lua.LNumber(RefMul32(a, b)))
		return 1
	}))

	L.SetField(dut, "classify", L.NewFunction(func(L *lua.LState) int {
		bits := uint32(L.CheckNumber(1))
		L.Push(lua.LString(Classify32(bits).String()))
		return 1
	}))

	L.SetField(dut, "stage", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LString(m.Stage().String()))
		return 1
	}))

	L.SetField(dut, "is_nan", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LBool(IsNaN32(uint32(L.CheckNumber(1)))))
		return 1
	}))

	L.SetGlobal("dut", dut)
}
