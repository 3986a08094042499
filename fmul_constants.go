// fmul_constants.go - binary32 field masks and pipeline constants

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
// binary32 Field Masks
// =============================================================================

const (
	FP32_SIGN_MASK uint32 = 0x80000000
	FP32_EXP_MASK  uint32 = 0x7F800000
	FP32_FRAC_MASK uint32 = 0x007FFFFF

	FP32_EXP_SHIFT = 23
	FP32_EXP_BIAS  = 127

	// 24-bit working mantissa, bit 23 is the hidden bit.
	FP32_HIDDEN_BIT uint32 = 0x00800000
	FP32_MANT_MASK  uint32 = 0x00FFFFFF
)

// Unbiased exponent range of the normal encodings.
const (
	FP32_EXP_MIN int32 = -126
	FP32_EXP_MAX int32 = 127
)

// =============================================================================
// Fixed Result Patterns
// =============================================================================

const (
	// Canonical quiet NaN: sign 0, exponent all-ones, fraction MSB set.
	FP32_QNAN uint32 = 0x7FC00000

	// Unsigned infinity pattern; OR in the sign bit as needed.
	FP32_INF uint32 = 0x7F800000
)

// =============================================================================
// Pipeline Timing
// =============================================================================

// MUL_LATENCY is the number of ticks between an accepted start and the
// tick that reports completion: one tick per stage, Unpack through Pack.
const MUL_LATENCY = 7
