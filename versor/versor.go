package versor

import (
	"github.com/TheZerth/GASmith/algebra"
	"github.com/TheZerth/GASmith/numeric"
	"github.com/TheZerth/GASmith/product"
)

// Versor wraps a multivector used to transform others via the sandwich
// product V X V^-1, alongside the numeric.Policy governing when its norm
// is too small to invert.
type Versor struct {
	mv     algebra.Multivector
	policy numeric.Policy
}

// New wraps mv as a Versor, resolving a numeric.Policy from opts (or the
// default policy if none are given).
func New(mv algebra.Multivector, opts ...numeric.Option) Versor {
	return Versor{mv: mv, policy: numeric.NewPolicy(opts...)}
}

// Multivector returns the underlying multivector.
func (v Versor) Multivector() algebra.Multivector { return v.mv }

// normScalar returns the scalar part of v.mv * Reverse(v.mv).
func (v Versor) normScalar() (float64, error) {
	rev := product.Reverse(v.mv)
	squared, err := product.Product(v.mv, rev, nil)
	if err != nil {
		return 0, err
	}

	return squared.Component(0), nil
}

// Inverse returns v's multiplicative inverse, Reverse(v.mv) / (v.mv *
// Reverse(v.mv)). Returns ErrSingularOperand if that scalar norm is
// negligible under v's policy.
func (v Versor) Inverse() (Versor, error) {
	norm, err := v.normScalar()
	if err != nil {
		return Versor{}, err
	}
	if v.policy.IsNegligible(norm) {
		return Versor{}, ErrSingularOperand
	}

	inv := product.Reverse(v.mv).Scaled(1 / norm)

	return Versor{mv: inv, policy: v.policy}, nil
}

// Apply transforms x via the sandwich product v.mv * x * v.mv^-1.
func (v Versor) Apply(x algebra.Multivector) (algebra.Multivector, error) {
	inv, err := v.Inverse()
	if err != nil {
		return algebra.Multivector{}, err
	}

	middle, err := product.Product(v.mv, x, nil)
	if err != nil {
		return algebra.Multivector{}, err
	}

	return product.Product(middle, inv.mv, nil)
}
