// fmul_controller_test.go - FSM sequencing, handshake and latency tests

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
	"testing"
)

// startAndWait accepts a start and ticks until completion, reporting the
// result and the number of ticks it took. Mirrors the hardware bench's
// start-then-poll loop.
func startAndWait(t *testing.T, m *FMul32, a, b uint32) (uint32, int) {
	t.Helper()
	if busy, done, _ := m.Tick(true, a, b); busy || done {
		t.Fatalf("accepting tick reported busy=%v completed=%v, want false/false", busy, done)
	}
	for i := 1; i <= 50; i++ {
		_, done, z := m.Tick(false, 0, 0)
		if done {
			return z, i
		}
	}
	t.Fatal("timeout waiting for completion")
	return 0, 0
}

// TestFMul32_Scenario_TwoTimesThree walks 2.0 x 3.0 tick by tick and
// checks the full handshake contract along the way.
func TestFMul32_Scenario_TwoTimesThree(t *testing.T) {
	m := NewFMul32()

	if busy, done, _ := m.Tick(true, 0x40000000, 0x40400000); busy || done {
		t.Fatalf("accepting tick: busy=%v completed=%v, want false/false", busy, done)
	}
	for i := 1; i <= 6; i++ {
		busy, done, _ := m.Tick(false, 0, 0)
		if !busy {
			t.Fatalf("tick %d: busy=false, want true", i)
		}
		if done {
			t.Fatalf("tick %d: completed early", i)
		}
	}
	busy, done, z := m.Tick(false, 0, 0)
	if !busy || !done {
		t.Fatalf("tick 7: busy=%v completed=%v, want true/true", busy, done)
	}
	if z != 0x40C00000 {
		t.Fatalf("result = 0x%08X, want 0x40C00000 (6.0)", z)
	}
	if busy, done, _ := m.Tick(false, 0, 0); busy || done {
		t.Fatalf("tick 8: busy=%v completed=%v, want false/false", busy, done)
	}
}

// TestFMul32_StageSequence verifies one stage advances per tick in the
// fixed order.
func TestFMul32_StageSequence(t *testing.T) {
	m := NewFMul32()
	m.Tick(true, 0x3F800000, 0x3F800000)

	want := []MulStage{
		StageClassify, StageAlign, StageMultiply, StageExtractRound,
		StageNormalizeRound, StagePack, StageIdle,
	}
	if m.Stage() != StageUnpack {
		t.Fatalf("after accept: stage = %s, want Unpack", m.Stage())
	}
	for i, w := range want {
		m.Tick(false, 0, 0)
		if m.Stage() != w {
			t.Fatalf("after tick %d: stage = %s, want %s", i+1, m.Stage(), w)
		}
	}
}

// TestFMul32_Latency pins the seven-tick contract for both the
// arithmetic and the special-case path.
func TestFMul32_Latency(t *testing.T) {
	m := NewFMul32()
	if _, n := startAndWait(t, m, 0x40000000, 0x40400000); n != MUL_LATENCY {
		t.Errorf("arithmetic path latency = %d ticks, want %d", n, MUL_LATENCY)
	}
	if _, n := startAndWait(t, m, 0x7FC00000, 0x3F800000); n != MUL_LATENCY {
		t.Errorf("special path latency = %d ticks, want %d", n, MUL_LATENCY)
	}
}

// TestFMul32_CompletedExactlyOnce runs past completion and counts the
// completion pulses.
func TestFMul32_CompletedExactlyOnce(t *testing.T) {
	m := NewFMul32()
	m.Tick(true, 0x3F800000, 0x40000000)
	completions := 0
	for i := 0; i < 20; i++ {
		if _, done, _ := m.Tick(false, 0, 0); done {
			completions++
		}
	}
	if completions != 1 {
		t.Errorf("completed pulses = %d, want 1", completions)
	}
}

// TestFMul32_StartIgnoredWhileBusy issues a second start mid-flight and
// checks no operand capture or timing disturbance happens.
func TestFMul32_StartIgnoredWhileBusy(t *testing.T) {
	m := NewFMul32()
	m.Tick(true, 0x40000000, 0x40400000) // 2 x 3

	// Three stages in, request 4 x 5; it must be dropped.
	m.Tick(false, 0, 0)
	m.Tick(false, 0, 0)
	if busy, done, _ := m.Tick(true, 0x40800000, 0x40A00000); !busy || done {
		t.Fatalf("busy tick with start: busy=%v completed=%v, want true/false", busy, done)
	}

	var z uint32
	var done bool
	ticks := 3
	for !done {
		_, done, z = m.Tick(false, 0, 0)
		ticks++
		if ticks > 10 {
			t.Fatal("no completion")
		}
	}
	if ticks != MUL_LATENCY {
		t.Errorf("completion on tick %d, want %d (start while busy altered timing)", ticks, MUL_LATENCY)
	}
	if z != 0x40C00000 {
		t.Errorf("result = 0x%08X, want 0x40C00000 (operands were recaptured)", z)
	}
}

// TestFMul32_BackToBack verifies a new start is accepted on the first
// idle tick after completion and retains full latency.
func TestFMul32_BackToBack(t *testing.T) {
	m := NewFMul32()
	if z, _ := startAndWait(t, m, 0x40000000, 0x40400000); z != 0x40C00000 {
		t.Fatalf("first op = 0x%08X, want 0x40C00000", z)
	}
	z, n := startAndWait(t, m, 0x40800000, 0x40A00000) // 4 x 5
	if z != 0x41A00000 {
		t.Errorf("second op = 0x%08X, want 0x41A00000 (20.0)", z)
	}
	if n != MUL_LATENCY {
		t.Errorf("second op latency = %d, want %d", n, MUL_LATENCY)
	}
}

// TestFMul32_ResetMidFlight resets with an operation in flight and
// checks no partial result is ever observed.
func TestFMul32_ResetMidFlight(t *testing.T) {
	m := NewFMul32()
	m.Tick(true, 0x40000000, 0x40400000)
	m.Tick(false, 0, 0)
	m.Tick(false, 0, 0)

	m.Reset()
	if m.Stage() != StageIdle {
		t.Fatalf("stage after reset = %s, want Idle", m.Stage())
	}
	for i := 0; i < 10; i++ {
		if busy, done, _ := m.Tick(false, 0, 0); busy || done {
			t.Fatalf("tick %d after reset: busy=%v completed=%v, want false/false", i, busy, done)
		}
	}
}

// TestFMul32_ResetIdempotent applies reset from every stage, twice.
func TestFMul32_ResetIdempotent(t *testing.T) {
	for stop := 0; stop <= MUL_LATENCY; stop++ {
		m := NewFMul32()
		m.Tick(true, 0x40490FDB, 0x40490FDB)
		for i := 0; i < stop; i++ {
			m.Tick(false, 0, 0)
		}
		m.Reset()
		m.Reset()
		if busy, done, _ := m.Tick(false, 0, 0); busy || done {
			t.Errorf("reset at stage depth %d: busy=%v completed=%v, want false/false", stop, busy, done)
		}
	}
}

// TestFMul32_OperandsOnlyReadAtAccept changes the operand inputs on
// later ticks; they must be ignored.
func TestFMul32_OperandsOnlyReadAtAccept(t *testing.T) {
	m := NewFMul32()
	m.Tick(true, 0x40000000, 0x40400000)
	var z uint32
	var done bool
	for i := 0; i < MUL_LATENCY; i++ {
		_, done, z = m.Tick(false, 0xDEADBEEF, 0xCAFEBABE)
	}
	if !done || z != 0x40C00000 {
		t.Errorf("result = 0x%08X (done=%v), want 0x40C00000", z, done)
	}
}

// =============================================================================
// Numeric Scenarios Through the Full FSM
// =============================================================================

func TestFMul32_Scenario_InfTimesZero(t *testing.T) {
	m := NewFMul32()
	z, n := startAndWait(t, m, 0x7F800000, 0x00000000)
	if z != 0x7FC00000 {
		t.Errorf("+Inf x +0 = 0x%08X, want 0x7FC00000", z)
	}
	if n != MUL_LATENCY {
		t.Errorf("latency = %d, want %d", n, MUL_LATENCY)
	}
}

func TestFMul32_SpecialCases(t *testing.T) {
	cases := []struct {
		name   string
		a, b   uint32
		want   uint32
		anyNaN bool
	}{
		{"qnan x normal", 0x7FC00001, 0x3F800000, FP32_QNAN, true},
		{"snan x normal", 0x7F800001, 0x3F800000, FP32_QNAN, true},
		{"nan x inf", 0xFFC00000, 0x7F800000, FP32_QNAN, true},
		{"inf x normal", 0x7F800000, 0x40400000, 0x7F800000, false},
		{"inf x -normal", 0x7F800000, 0xC0400000, 0xFF800000, false},
		{"-inf x -inf", 0xFF800000, 0xFF800000, 0x7F800000, false},
		{"zero x normal", 0x00000000, 0x42280000, 0x00000000, false},
		{"-zero x normal", 0x80000000, 0x42280000, 0x80000000, false},
		{"-zero x -normal", 0x80000000, 0xC2280000, 0x00000000, false},
		{"zero x subnormal", 0x00000000, 0x00000001, 0x00000000, false},
	}
	m := NewFMul32()
	for _, c := range cases {
		got := m.Multiply(c.a, c.b)
		if c.anyNaN {
			if got != FP32_QNAN {
				t.Errorf("%s = 0x%08X, want canonical quiet NaN 0x%08X", c.name, got, FP32_QNAN)
			}
			continue
		}
		if got != c.want {
			t.Errorf("%s = 0x%08X, want 0x%08X", c.name, got, c.want)
		}
	}
}

func TestFMul32_Overflow(t *testing.T) {
	m := NewFMul32()
	if got := m.Multiply(0x7F7FFFFF, 0x7F7FFFFF); got != 0x7F800000 {
		t.Errorf("maxfloat^2 = 0x%08X, want +Inf", got)
	}
	if got := m.Multiply(0xFF7FFFFF, 0x7F7FFFFF); got != 0xFF800000 {
		t.Errorf("-maxfloat x maxfloat = 0x%08X, want -Inf", got)
	}
	// 2^64 x 2^64 = 2^128, one past the largest exponent.
	if got := m.Multiply(0x5F800000, 0x5F800000); got != 0x7F800000 {
		t.Errorf("2^64 x 2^64 = 0x%08X, want +Inf", got)
	}
}

func TestFMul32_Underflow(t *testing.T) {
	m := NewFMul32()

	// Smallest normal squared is far below the subnormal range.
	if got := m.Multiply(0x00800000, 0x00800000); got != 0x00000000 {
		t.Errorf("minnormal^2 = 0x%08X, want +0", got)
	}
	if got := m.Multiply(0x80800000, 0x00800000); got != 0x80000000 {
		t.Errorf("-minnormal x minnormal = 0x%08X, want -0", got)
	}

	// Smallest normal halved and eighthed land exactly on subnormals.
	if got := m.Multiply(0x00800000, 0x3F000000); got != 0x00400000 {
		t.Errorf("minnormal x 0.5 = 0x%08X, want 0x00400000", got)
	}
	if got := m.Multiply(0x00800000, 0x3E000000); got != 0x00100000 {
		t.Errorf("minnormal x 0.125 = 0x%08X, want 0x00100000", got)
	}
}

// TestFMul32_UnderflowStickyFold pins the realignment behavior: bits
// displaced below the -126 floor fold into sticky and the mantissa
// truncates toward zero.
func TestFMul32_UnderflowStickyFold(t *testing.T) {
	m := NewFMul32()
	// 0x00FFFFFF (exp -126, full mantissa) x 0.125: realign by 2.
	if got := m.Multiply(0x00FFFFFF, 0x3E000000); got != 0x001FFFFF {
		t.Errorf("got 0x%08X, want truncated subnormal 0x001FFFFF", got)
	}
}

// TestFMul32_SubnormalBoundaryTie is an exact tie at the subnormal
// boundary: (1+2^-23) x 2^-127 sits halfway between neighbours and must
// round to the even mantissa.
func TestFMul32_SubnormalBoundaryTie(t *testing.T) {
	m := NewFMul32()
	if got := m.Multiply(0x00800001, 0x3F000000); got != 0x00400000 {
		t.Errorf("got 0x%08X, want 0x00400000 (tie to even)", got)
	}
}

// TestFMul32_RNETies constructs products landing exactly halfway between
// representable mantissas.
func TestFMul32_RNETies(t *testing.T) {
	m := NewFMul32()

	// 0xFFF000 x 0x802800 mantissas: tie with odd LSB, rounds up to even.
	gotUp := m.Multiply(0x3FFFF000, 0x3F802800)
	if gotUp != 0x40001FFE {
		t.Errorf("tie-up case = 0x%08X, want 0x40001FFE", gotUp)
	}
	if gotUp&1 != 0 {
		t.Errorf("tie-up result LSB = 1, want even mantissa")
	}
	if ref := RefMul32(0x3FFFF000, 0x3F802800); gotUp != ref {
		t.Errorf("tie-up case disagrees with oracle: got 0x%08X, ref 0x%08X", gotUp, ref)
	}

	// 0xFFF000 x 0x801800 mantissas: tie with even LSB, stays.
	gotStay := m.Multiply(0x3FFFF000, 0x3F801800)
	if gotStay != 0x40000FFE {
		t.Errorf("tie-stay case = 0x%08X, want 0x40000FFE", gotStay)
	}
	if ref := RefMul32(0x3FFFF000, 0x3F801800); gotStay != ref {
		t.Errorf("tie-stay case disagrees with oracle: got 0x%08X, ref 0x%08X", gotStay, ref)
	}
}

func TestFMul32_SimpleProducts(t *testing.T) {
	cases := []struct {
		a, b, want uint32
	}{
		{0x3F800000, 0x3F800000, 0x3F800000}, // 1 x 1
		{0x3FC00000, 0x3FC00000, 0x40100000}, // 1.5 x 1.5 = 2.25
		{0x40000000, 0xC0400000, 0xC0C00000}, // 2 x -3 = -6
		{0xC0000000, 0xC0400000, 0x40C00000}, // -2 x -3 = 6
		{0x3F000000, 0x3F000000, 0x3E800000}, // 0.5 x 0.5 = 0.25
		{0x41200000, 0x41200000, 0x42C80000}, // 10 x 10 = 100
	}
	m := NewFMul32()
	for _, c := range cases {
		if got := m.Multiply(c.a, c.b); got != c.want {
			t.Errorf("0x%08X x 0x%08X = 0x%08X, want 0x%08X", c.a, c.b, got, c.want)
		}
	}
}
