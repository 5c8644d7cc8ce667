package product

import (
	"github.com/TheZerth/GASmith/algebra"
	"github.com/TheZerth/GASmith/blade"
)

// gradeSign applies a per-grade sign function to every component of mv,
// leaving the magnitude of each component untouched.
func gradeSign(mv algebra.Multivector, signOf func(grade int) float64) algebra.Multivector {
	out := mv.Clone()
	for m := 0; m < out.Len(); m++ {
		mask := blade.Mask(m)
		v := out.Component(mask)
		if v == 0 {
			continue
		}
		_ = out.SetComponent(mask, v*signOf(mask.Grade()))
	}

	return out
}

// Reverse computes the reverse of mv: a grade-g blade picks up a sign of
// (-1)^(g(g-1)/2), the sign of reversing the order of its g constituent
// vector factors.
func Reverse(mv algebra.Multivector) algebra.Multivector {
	return gradeSign(mv, func(g int) float64 {
		if (g*(g-1)/2)%2 == 0 {
			return 1
		}

		return -1
	})
}

// GradeInvolution computes the grade involution of mv (the main
// involution): a grade-g blade picks up a sign of (-1)^g.
func GradeInvolution(mv algebra.Multivector) algebra.Multivector {
	return gradeSign(mv, func(g int) float64 {
		if g%2 == 0 {
			return 1
		}

		return -1
	})
}

// CliffordConjugate computes the Clifford conjugate of mv, the
// composition of Reverse and GradeInvolution: a grade-g blade picks up a
// sign of (-1)^(g(g+1)/2).
func CliffordConjugate(mv algebra.Multivector) algebra.Multivector {
	return gradeSign(mv, func(g int) float64 {
		if (g*(g+1)/2)%2 == 0 {
			return 1
		}

		return -1
	})
}
