package product

import (
	"github.com/TheZerth/GASmith/algebra"
	"github.com/TheZerth/GASmith/blade"
)

// Dual computes the Hodge dual of mv via pseudoscalar complement: for
// each nonzero component c at mask m, let comp be m's complement within
// the algebra's pseudoscalar mask, and bp the geometric product of the
// blades (m, +1) and (comp, +1). If bp is well-formed (nonzero, and its
// mask equals the full pseudoscalar mask) its sign scales c into
// result[comp]; otherwise that component has no well-defined dual under
// a degenerate metric and is silently skipped. This surfaces degeneracy
// by omission rather than producing a misleading partial result for
// just that component, while leaving every well-defined component
// intact.
func Dual(mv algebra.Multivector) (algebra.Multivector, error) {
	alg := mv.Algebra()
	if alg == nil {
		return algebra.Multivector{}, algebra.ErrNoAlgebra
	}

	sig := alg.Signature()
	pseudoscalarMask := alg.Pseudoscalar()
	out := algebra.NewMultivector(alg)

	for m := 0; m < mv.Len(); m++ {
		c := mv.Component(blade.Mask(m))
		if c == 0 {
			continue
		}

		comp := pseudoscalarMask ^ blade.Mask(m)
		bp := blade.Product(blade.Blade{Mask: blade.Mask(m), Sign: 1}, blade.Blade{Mask: comp, Sign: 1}, sig)
		if bp.IsZero() || bp.Mask != pseudoscalarMask {
			continue
		}

		_ = out.SetComponent(comp, out.Component(comp)+c*float64(bp.Sign))
	}

	return out, nil
}
