package blade

import "github.com/TheZerth/GASmith/signature"

// Product computes the geometric product of two basis blades under sig:
//
//  1. Either operand zero, or either the scalar basis, is handled as an
//     absorbing/identity case exactly as in Combine.
//  2. The running sign picks up (-1)^swapCount from swapParity, the same
//     permutation-parity count the metric-free combine uses.
//  3. For every axis present in both operands, the running sign is
//     multiplied by g(i); a null axis (g(i) == 0) makes the whole
//     product the zero blade immediately.
//  4. The result mask is the symmetric difference of the two operand
//     masks.
func Product(a, b Blade, sig signature.Signature) Blade {
	if a.IsZero() || b.IsZero() {
		return Zero()
	}
	if a.IsScalarBasis() {
		return Blade{Mask: b.Mask, Sign: a.Sign * b.Sign}
	}
	if b.IsScalarBasis() {
		return Blade{Mask: a.Mask, Sign: a.Sign * b.Sign}
	}

	sign := a.Sign * b.Sign
	if swapParity(a.Mask, b.Mask)%2 != 0 {
		sign = -sign
	}

	overlap := a.Mask & b.Mask
	for i := 0; i < signature.NMax; i++ {
		if !overlap.HasAxis(i) {
			continue
		}
		g := sig.G(i)
		if g == signature.SignNull {
			return Zero()
		}
		sign *= int8(g)
	}

	return Blade{Mask: a.Mask ^ b.Mask, Sign: sign}
}
