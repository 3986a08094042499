// fmul_special.go - special-case decision table (NaN, infinity, zero)

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

// ResolveSpecial decides whether the product of two classified operands is
// forced to a fixed pattern, bypassing the arithmetic stages. The rules are
// checked in precedence order; NaN and infinity outrank zero so that
// 0 x Inf resolves to NaN, not to a signed zero.
//
// Signaling NaNs are not distinguished from quiet ones and input NaN
// payloads are not propagated: any NaN operand produces the single
// canonical quiet NaN.
func ResolveSpecial(clsA FloatClass, negA bool, clsB FloatClass, negB bool) (uint32, bool) {
	sign := uint32(0)
	if negA != negB {
		sign = FP32_SIGN_MASK
	}

	switch {
	case clsA == ClassNaN || clsB == ClassNaN:
		return FP32_QNAN, true
	case (clsA == ClassInfinity && clsB == ClassZero) ||
		(clsA == ClassZero && clsB == ClassInfinity):
		return FP32_QNAN, true
	case clsA == ClassInfinity || clsB == ClassInfinity:
		return sign | FP32_INF, true
	case clsA == ClassZero || clsB == ClassZero:
		return sign, true
	}
	return 0, false
}
