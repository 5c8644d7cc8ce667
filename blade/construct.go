package blade

import "github.com/samber/lo"

// FromAxes builds the basis blade e_{axes[0]} ^ e_{axes[1]} ^ ... from an
// axis index list of length k <= signature.NMax:
//
//  1. If any two axis indices coincide, the result is the zero blade
//     (this implements e_i ^ e_i == 0) — lo.Uniq detects the duplicate
//     without a hand-rolled dedupe loop.
//  2. Otherwise the list is sorted ascending, counting the parity of
//     adjacent-swap inversions.
//  3. Sign is +1 for even parity, -1 for odd; Mask is the OR of each
//     axis's bit.
//
// An empty axis list returns the scalar basis (mask 0, sign +1).
func FromAxes(axes ...int) Blade {
	if len(axes) == 0 {
		return ScalarBasis()
	}
	if len(lo.Uniq(axes)) != len(axes) {
		return Zero()
	}

	sorted := append([]int(nil), axes...)
	parity := insertionSortParity(sorted)

	var mask Mask
	for _, axis := range sorted {
		mask |= AxisBit(axis)
	}

	sign := int8(1)
	if parity%2 != 0 {
		sign = -1
	}

	return Blade{Mask: mask, Sign: sign}
}

// insertionSortParity sorts a in place ascending and returns the number
// of adjacent transpositions performed, whose parity is the sign of the
// permutation that produced a's original order.
func insertionSortParity(a []int) int {
	swaps := 0
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j-1] > a[j]; j-- {
			a[j-1], a[j] = a[j], a[j-1]
			swaps++
		}
	}

	return swaps
}
