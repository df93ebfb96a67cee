// Package rangecheck enforces that a witness fits within a bounded number of
// bits, the central defense against field-arithmetic wraparound: an
// out-of-range subtraction wraps to a value near the field modulus, far
// outside any small bit width, so range-checking the result is how
// underflow is distinguished from legitimate small values.
package rangecheck

import (
	"github.com/consensys/gnark/frontend"
)

// Bits is the default range width: quantities and item ids are modeled as
// 32-bit unsigned integers, supporting values up to 4,294,967,295.
const Bits = 32

// EnforceRange asserts that value fits in nBits bits. Allocates nBits
// boolean witnesses for value's bit decomposition and asserts their
// weighted sum equals value; a value outside [0, 2^nBits) has no such
// decomposition, so the constraint is unsatisfiable. Cost is ~nBits
// constraints rather than ~254 for a full field-width decomposition.
func EnforceRange(api frontend.API, value frontend.Variable, nBits int) {
	api.ToBinary(value, nBits)
}

// EnforceU32Range asserts that value fits in Bits (32) bits.
func EnforceU32Range(api frontend.API, value frontend.Variable) {
	EnforceRange(api, value, Bits)
}

// EnforceGEQ asserts a >= b by range-checking a - b: if b > a, the
// subtraction wraps to a field element far larger than 2^Bits, which
// EnforceU32Range rejects.
func EnforceGEQ(api frontend.API, a, b frontend.Variable) {
	EnforceU32Range(api, api.Sub(a, b))
}
