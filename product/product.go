package product

import (
	"github.com/TheZerth/GASmith/algebra"
	"github.com/TheZerth/GASmith/blade"
)

// GradeFilter decides whether a bilinear term contributes to a filtered
// product's output, given the grades of the two blade operands and the
// grade their geometric product landed on.
type GradeFilter func(gradeA, gradeB, gradeResult int) bool

// Product computes the bilinear extension of the blade-level geometric
// product to two multivectors: every pair of nonzero components is
// combined via blade.Product, scaled by the two coefficients, and
// accumulated into the result at the product blade's mask. A nil keep
// keeps every term, producing the unfiltered geometric product; a
// non-nil keep drops any term whose (gradeA, gradeB, gradeResult) triple
// it rejects.
func Product(a, b algebra.Multivector, keep GradeFilter) (algebra.Multivector, error) {
	if err := algebra.RequireSameAlgebra(a, b); err != nil {
		return algebra.Multivector{}, err
	}

	alg := a.Algebra()
	sig := alg.Signature()
	out := algebra.NewMultivector(alg)

	for am := 0; am < a.Len(); am++ {
		av := a.Component(blade.Mask(am))
		if av == 0 {
			continue
		}
		ab := blade.Blade{Mask: blade.Mask(am), Sign: 1}

		for bm := 0; bm < b.Len(); bm++ {
			bv := b.Component(blade.Mask(bm))
			if bv == 0 {
				continue
			}
			bb := blade.Blade{Mask: blade.Mask(bm), Sign: 1}

			res := blade.Product(ab, bb, sig)
			if res.IsZero() {
				continue
			}
			if keep != nil && !keep(ab.Grade(), bb.Grade(), res.Grade()) {
				continue
			}

			contribution := av * bv * float64(res.Sign)
			_ = out.SetComponent(res.Mask, out.Component(res.Mask)+contribution)
		}
	}

	return out, nil
}

// Wedge computes the exterior (outer) product: only terms whose result
// grade equals gradeA+gradeB survive.
func Wedge(a, b algebra.Multivector) (algebra.Multivector, error) {
	return Product(a, b, func(gradeA, gradeB, gradeResult int) bool {
		return gradeResult == gradeA+gradeB
	})
}

// Inner computes the Hestenes inner product: only terms whose result
// grade equals |gradeA-gradeB| survive.
func Inner(a, b algebra.Multivector) (algebra.Multivector, error) {
	return Product(a, b, func(gradeA, gradeB, gradeResult int) bool {
		return gradeResult == absInt(gradeA-gradeB)
	})
}

// LeftContract computes a ⌋ b: only terms whose result grade equals
// gradeB-gradeA survive.
func LeftContract(a, b algebra.Multivector) (algebra.Multivector, error) {
	return Product(a, b, func(gradeA, gradeB, gradeResult int) bool {
		return gradeResult == gradeB-gradeA
	})
}

// RightContract computes a ⌊ b: only terms whose result grade equals
// gradeA-gradeB survive.
func RightContract(a, b algebra.Multivector) (algebra.Multivector, error) {
	return Product(a, b, func(gradeA, gradeB, gradeResult int) bool {
		return gradeResult == gradeA-gradeB
	})
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
