// fmul_controller.go - operation controller FSM and start/busy/complete handshake

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

// =============================================================================
// Stages
// =============================================================================

// MulStage is the controller's position in the pipeline. One stage
// executes per tick; none may be skipped or reordered.
type MulStage int

const (
	StageIdle MulStage = iota
	StageUnpack
	StageClassify
	StageAlign
	StageMultiply
	StageExtractRound
	StageNormalizeRound
	StagePack
)

func (s MulStage) String() string {
	switch s {
	case StageIdle:
		return "Idle"
	case StageUnpack:
		return "Unpack"
	case StageClassify:
		return "Classify"
	case StageAlign:
		return "Align"
	case StageMultiply:
		return "Multiply"
	case StageExtractRound:
		return "ExtractRound"
	case StageNormalizeRound:
		return "NormalizeRound"
	case StagePack:
		return "Pack"
	}
	return "Unknown"
}

// =============================================================================
// FMul32 - Multi-Cycle binary32 Multiplier
// =============================================================================

// FMul32 is a cycle-accurate model of a multi-cycle binary32 multiplier.
// An external driver advances it one stage per Tick; at most one
// operation is in flight and a start while busy is silently ignored.
// All per-operation state lives in the instance; there is no global
// mutable state.
type FMul32 struct {
	stage MulStage

	// Operand registers, captured when a start is accepted.
	rawA, rawB uint32
	clsA, clsB FloatClass
	opA, opB   Operand

	// Special-case latch from the Classify stage. While set, the
	// arithmetic stages still tick through but do no work.
	special     bool
	specialBits uint32

	// Arithmetic pipeline registers.
	product uint64
	cand    resultCandidate

	result uint32
	cycles uint64
}

// NewFMul32 creates an idle multiplier.
func NewFMul32() *FMul32 {
	return &FMul32{}
}

// Reset forces an immediate return to Idle from any stage, discarding
// in-flight operand state and any latched completion. Idempotent.
func (m *FMul32) Reset() {
	*m = FMul32{}
}

// Stage returns the controller's current position.
func (m *FMul32) Stage() MulStage {
	return m.stage
}

// Cycles returns the number of ticks since construction or reset.
func (m *FMul32) Cycles() uint64 {
	return m.cycles
}

func (m *FMul32) clearPipeline() {
	m.clsA, m.clsB = ClassZero, ClassZero
	m.opA, m.opB = Operand{}, Operand{}
	m.special = false
	m.specialBits = 0
	m.product = 0
	m.cand = resultCandidate{}
	m.result = 0
}

// Tick advances the controller by exactly one step. Operands are read
// only at the instant a start is accepted (controller Idle with
// startRequested set). completed is true for exactly one tick per
// accepted operation, on the Pack stage, and result is meaningful only
// then. busy covers the seven stage ticks that follow an accepted start,
// the Pack tick included.
func (m *FMul32) Tick(startRequested bool, a, b uint32) (busy, completed bool, result uint32) {
	m.cycles++

	switch m.stage {
	case StageIdle:
		if startRequested {
			m.clearPipeline()
			m.rawA, m.rawB = a, b
			m.stage = StageUnpack
		}
		return false, false, 0

	case StageUnpack:
		m.clsA = Classify32(m.rawA)
		m.clsB = Classify32(m.rawB)
		m.opA = Unpack32(m.rawA)
		m.opB = Unpack32(m.rawB)
		m.stage = StageClassify

	case StageClassify:
		m.specialBits, m.special = ResolveSpecial(m.clsA, m.opA.Neg, m.clsB, m.opB.Neg)
		m.stage = StageAlign

	case StageAlign:
		if !m.special {
			m.opA = alignOperand(m.opA)
			m.opB = alignOperand(m.opB)
		}
		m.stage = StageMultiply

	case StageMultiply:
		if !m.special {
			m.cand.neg, m.cand.exp, m.product = multiplyCore(m.opA, m.opB)
		}
		m.stage = StageExtractRound

	case StageExtractRound:
		if !m.special {
			m.cand.mant, m.cand.guard, m.cand.round, m.cand.sticky = extractRounding(m.product)
		}
		m.stage = StageNormalizeRound

	case StageNormalizeRound:
		if !m.special {
			m.cand.normalizeRound()
		}
		m.stage = StagePack

	case StagePack:
		if m.special {
			m.result = m.specialBits
		} else {
			m.result = packResult(m.cand)
		}
		m.stage = StageIdle
		return true, true, m.result
	}

	return true, false, 0
}

// Multiply runs a single operation to completion and returns the result
// bits. It resets the controller first, so it must not be interleaved
// with an externally ticked operation. The staged Tick interface remains
// the timing-accurate contract; this is the collapsed convenience form.
func (m *FMul32) Multiply(a, b uint32) uint32 {
	m.Reset()
	m.Tick(true, a, b)
	for i := 0; i < MUL_LATENCY; i++ {
		if _, done, z := m.Tick(false, 0, 0); done {
			return z
		}
	}
	return m.result
}
