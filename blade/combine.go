package blade

import (
	"math/bits"

	"github.com/TheZerth/GASmith/signature"
)

// swapParity counts, for each axis present in aMask, how many axes in
// bMask have a strictly smaller index — the number of transpositions
// needed to merge the two sorted axis lists into canonical order.
// Only its parity matters to callers.
func swapParity(aMask, bMask Mask) int {
	count := 0
	for i := 0; i < signature.NMax; i++ {
		if aMask.HasAxis(i) {
			prefix := bMask & (AxisBit(i) - 1)
			count += bits.OnesCount8(uint8(prefix))
		}
	}

	return count
}

// Combine computes the metric-free exterior combine of two blades:
// zero if either operand is zero, the other operand
// (with multiplied signs) if either is the scalar basis, zero if the
// masks overlap (a repeated axis), and otherwise a mask equal to the XOR
// of the two operand masks with a sign from swap parity alone — no
// metric contraction.
func Combine(a, b Blade) Blade {
	if a.IsZero() || b.IsZero() {
		return Zero()
	}
	if a.IsScalarBasis() {
		return Blade{Mask: b.Mask, Sign: a.Sign * b.Sign}
	}
	if b.IsScalarBasis() {
		return Blade{Mask: a.Mask, Sign: a.Sign * b.Sign}
	}
	if a.Mask&b.Mask != 0 {
		return Zero()
	}

	sign := a.Sign * b.Sign
	if swapParity(a.Mask, b.Mask)%2 != 0 {
		sign = -sign
	}

	return Blade{Mask: a.Mask ^ b.Mask, Sign: sign}
}
