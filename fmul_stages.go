// fmul_stages.go - arithmetic pipeline stages: align, multiply, extract, round, pack

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
// Align
// =============================================================================

// alignOperand performs the single pre-multiply normalizing shift: a
// mantissa without its hidden bit set is shifted left once, decrementing
// the exponent. Operands already carrying the hidden bit pass through.
// One shift per stage matches the hardware's one-shift-per-cycle design.
func alignOperand(op Operand) Operand {
	if op.Mant&FP32_HIDDEN_BIT == 0 {
		op.Mant = (op.Mant << 1) & FP32_MANT_MASK
		op.Exp--
	}
	return op
}

// =============================================================================
// Multiply
// =============================================================================

// multiplyCore combines signs and exponents and forms the full-width
// mantissa product. The x4 scaling keeps the combined leading one at bit
// 49 or 48 of the 50-bit product; the +1 on the exponent compensates.
func multiplyCore(a, b Operand) (neg bool, exp int32, product uint64) {
	neg = a.Neg != b.Neg
	exp = a.Exp + b.Exp + 1
	product = uint64(a.Mant) * uint64(b.Mant) << 2
	return neg, exp, product
}

// =============================================================================
// Rounding Bit Extraction
// =============================================================================

// extractRounding slices the product into the retained 24-bit mantissa
// (product bits 49:26) and the guard/round/sticky bits below it. Sticky is
// the OR of everything at bit 23 and under; once set it survives every
// later stage of the operation.
func extractRounding(product uint64) (mant uint32, guard, round, sticky bool) {
	mant = uint32(product>>26) & FP32_MANT_MASK
	guard = product&(1<<25) != 0
	round = product&(1<<24) != 0
	sticky = product&0x00FFFFFF != 0
	return mant, guard, round, sticky
}

// =============================================================================
// Normalize and Round
// =============================================================================

// resultCandidate is the pre-pack working result: sign, unbiased exponent,
// 24-bit mantissa and the rounding bits. normalizeRound mutates it in place.
type resultCandidate struct {
	neg    bool
	exp    int32
	mant   uint32
	guard  bool
	round  bool
	sticky bool
}

// normalizeRound realigns an underflowed result up to the -126 baseline,
// applies the single post-multiply normalization shift, and rounds to
// nearest-even with carry propagation into the exponent.
func (r *resultCandidate) normalizeRound() {
	if r.exp < FP32_EXP_MIN {
		// Underflow: shift the mantissa right until the exponent reaches
		// -126, folding every displaced bit into sticky. A shift of 24 or
		// more discards the whole mantissa.
		shift := FP32_EXP_MIN - r.exp
		if shift >= 24 {
			if r.mant != 0 {
				r.sticky = true
			}
			r.mant = 0
		} else {
			if r.mant&((1<<uint32(shift))-1) != 0 {
				r.sticky = true
			}
			r.mant >>= uint32(shift)
		}
		// Guard and round now sit below the new representable position.
		if r.guard || r.round {
			r.sticky = true
		}
		r.guard = false
		r.round = false
		r.exp = FP32_EXP_MIN
	} else if r.mant&FP32_HIDDEN_BIT == 0 && r.exp > FP32_EXP_MIN {
		// Left-shift carries the former guard bit into mantissa bit 0 and
		// promotes round to guard. At exp == -126 the result stays put:
		// the packer encodes it as a subnormal.
		r.mant = (r.mant << 1) & FP32_MANT_MASK
		if r.guard {
			r.mant |= 1
		}
		r.guard = r.round
		r.round = false
		r.exp--
	}

	// Round to nearest, ties to even: round up when guard is set and
	// either real bits remain below it or the mantissa LSB is odd.
	if r.guard && (r.round || r.sticky || r.mant&1 != 0) {
		r.mant++
		if r.mant&(FP32_HIDDEN_BIT<<1) != 0 {
			// Carry out of bit 23: renormalize.
			r.mant = FP32_HIDDEN_BIT
			r.exp++
		}
	}
}

// =============================================================================
// Pack
// =============================================================================

// packResult assembles the final bit pattern from a rounded candidate.
// An exponent beyond +127 overflows to a signed infinity; a result sitting
// at -126 without its hidden bit packs with a zero exponent field, which
// encodes the subnormals and signed zero.
func packResult(r resultCandidate) uint32 {
	sign := uint32(0)
	if r.neg {
		sign = FP32_SIGN_MASK
	}
	if r.exp > FP32_EXP_MAX {
		return sign | FP32_INF
	}
	expField := uint32(r.exp+FP32_EXP_BIAS) & 0xFF
	if r.exp == FP32_EXP_MIN && r.mant&FP32_HIDDEN_BIT == 0 {
		expField = 0
	}
	return sign | expField<<FP32_EXP_SHIFT | r.mant&FP32_FRAC_MASK
}
