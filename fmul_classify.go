// fmul_classify.go - binary32 operand classification, decoding and unpacking

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
// Classification
// =============================================================================

// FloatClass is the IEEE-754 class of a raw binary32 pattern.
type FloatClass int

const (
	ClassZero FloatClass = iota
	ClassSubnormal
	ClassNormal
	ClassInfinity
	ClassNaN
)

func (c FloatClass) String() string {
	switch c {
	case ClassZero:
		return "Zero"
	case ClassSubnormal:
		return "Subnormal"
	case ClassNormal:
		return "Normal"
	case ClassInfinity:
		return "Infinity"
	case ClassNaN:
		return "NaN"
	}
	return "Unknown"
}

// Classify32 reports the IEEE-754 class of a raw bit pattern.
func Classify32(bits uint32) FloatClass {
	exp := (bits & FP32_EXP_MASK) >> FP32_EXP_SHIFT
	frac := bits & FP32_FRAC_MASK
	switch {
	case exp == 0xFF && frac != 0:
		return ClassNaN
	case exp == 0xFF:
		return ClassInfinity
	case exp == 0 && frac == 0:
		return ClassZero
	case exp == 0:
		return ClassSubnormal
	default:
		return ClassNormal
	}
}

// nanIsQuiet reports whether a NaN pattern has the quiet bit (fraction MSB)
// set. Only meaningful for patterns already classified as NaN.
func nanIsQuiet(bits uint32) bool {
	return bits&0x00400000 != 0
}

// =============================================================================
// Decoding
// =============================================================================

// Decoded is the raw field split of a binary32 pattern.
type Decoded struct {
	Sign     uint32 // bit 31
	Exponent uint32 // biased, bits 30:23
	Fraction uint32 // bits 22:0
}

// Decode32 splits a raw pattern into its sign/exponent/fraction fields.
func Decode32(bits uint32) Decoded {
	return Decoded{
		Sign:     bits >> 31,
		Exponent: (bits & FP32_EXP_MASK) >> FP32_EXP_SHIFT,
		Fraction: bits & FP32_FRAC_MASK,
	}
}

// =============================================================================
// Unpacking
// =============================================================================

// Operand is the internal working form of one multiplier input: sign flag,
// unbiased exponent, and a 24-bit mantissa with bit 23 as the hidden bit.
type Operand struct {
	Neg  bool
	Exp  int32
	Mant uint32
}

// Unpack32 converts a raw pattern into its working representation. Normal
// operands get the hidden bit inserted and a bias-corrected exponent;
// subnormals and zeros keep the bare fraction at the fixed -126 baseline.
// Infinities and NaNs never reach the arithmetic path, so their unpacked
// form follows the normal rule and is otherwise unused.
func Unpack32(bits uint32) Operand {
	d := Decode32(bits)
	op := Operand{Neg: d.Sign != 0}
	switch Classify32(bits) {
	case ClassSubnormal, ClassZero:
		op.Exp = FP32_EXP_MIN
		op.Mant = d.Fraction
	default:
		op.Exp = int32(d.Exponent) - FP32_EXP_BIAS
		op.Mant = d.Fraction | FP32_HIDDEN_BIT
	}
	return op
}
