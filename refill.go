// FILE: refill.go
package bucket4j

import "math/bits"

// widenedMulDiv computes floor(a*b/c) using 128-bit widening so the
// intermediate product a*b can exceed 64 bits without overflowing.
// overflow is true when the product is so large that the quotient itself
// would not fit in 64 bits; callers treat that as "clamp to capacity"
// rather than propagating an error.
func widenedMulDiv(a, b, c uint64) (quotient, remainder uint64, overflow bool) {
	hi, lo := bits.Mul64(a, b)
	if hi >= c {
		return 0, 0, true
	}
	quotient, remainder = bits.Div64(hi, lo, c)
	return quotient, remainder, false
}

// widenedMulDivCeil computes ceil(a*b/c) with the same overflow contract
// as widenedMulDiv.
func widenedMulDivCeil(a, b, c uint64) (result uint64, overflow bool) {
	q, r, overflow := widenedMulDiv(a, b, c)
	if overflow {
		return 0, true
	}
	if r != 0 {
		q++
	}
	return q, false
}
