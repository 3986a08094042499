// fmul_reference.go - host-float reference oracle and random operand generation

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
	"math"
	"math/rand"
)

// =============================================================================
// Reference Oracle
// =============================================================================

// RefMul32 computes the RNE-correct binary32 product through an exact
// float64 intermediate: two 24-bit mantissas multiply into at most 48
// bits, well inside float64's 53, so the only rounding happens in the
// final float64-to-float32 conversion.
func RefMul32(a, b uint32) uint32 {
	fa := float64(math.Float32frombits(a))
	fb := float64(math.Float32frombits(b))
	return math.Float32bits(float32(fa * fb))
}

// IsNaN32 reports whether a raw pattern encodes a NaN. NaN results are
// compared by class, never bit for bit: the model always emits the one
// canonical quiet NaN while host floats carry payloads around.
func IsNaN32(bits uint32) bool {
	return bits&FP32_EXP_MASK == FP32_EXP_MASK && bits&FP32_FRAC_MASK != 0
}

// =============================================================================
// Random Operand Generation
// =============================================================================

// randNormalBits returns a uniformly random normal-class pattern: any
// sign, exponent field in [1, 254], any fraction.
func randNormalBits(rng *rand.Rand) uint32 {
	sign := uint32(rng.Intn(2)) << 31
	exp := uint32(1+rng.Intn(254)) << FP32_EXP_SHIFT
	frac := rng.Uint32() & FP32_FRAC_MASK
	return sign | exp | frac
}

// randInfBits returns a randomly signed infinity.
func randInfBits(rng *rand.Rand) uint32 {
	return uint32(rng.Intn(2))<<31 | FP32_INF
}

// randNaNBits returns a random NaN pattern. With quietOnly the fraction
// MSB is forced, otherwise signaling encodings can appear too.
func randNaNBits(rng *rand.Rand, quietOnly bool) uint32 {
	frac := rng.Uint32()&FP32_FRAC_MASK | 1
	if quietOnly {
		frac |= 0x00400000
	}
	return uint32(rng.Intn(2))<<31 | FP32_EXP_MASK | frac
}

// SoakConfig controls random operand generation for the soak sweep: a
// special-value rate and per-class enables, with normals as the default
// draw.
type SoakConfig struct {
	AllowNaN     bool
	AllowInf     bool
	SpecialRate  float64
	QuietNaNOnly bool
}

// RandOperandBits draws one operand pattern under the given config.
func RandOperandBits(rng *rand.Rand, cfg SoakConfig) uint32 {
	special := rng.Float64() < cfg.SpecialRate && (cfg.AllowNaN || cfg.AllowInf)
	if !special {
		return randNormalBits(rng)
	}
	if cfg.AllowNaN && (!cfg.AllowInf || rng.Intn(2) == 0) {
		return randNaNBits(rng, cfg.QuietNaNOnly)
	}
	return randInfBits(rng)
}
