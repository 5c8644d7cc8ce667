package versor

import (
	"math"

	"github.com/TheZerth/GASmith/algebra"
	"github.com/TheZerth/GASmith/numeric"
	"github.com/TheZerth/GASmith/product"
)

// Rotor is the even-grade Versor specialization built from a rotation
// angle and plane: cos(theta/2) - sin(theta/2) * Bhat, where Bhat is the
// unit bivector spanning the rotation plane.
type Rotor struct {
	Versor
}

// FromBivectorAngle builds the rotor cos(theta/2) - sin(theta/2)*b in
// the plane spanned by bivector b, then rescales it to unit norm via
// Normalize. b is not rescaled first, so the rotation angle is theta
// when b has unit magnitude (b*b == ±1); FromPlaneAngle rescales its
// wedge to unit magnitude before calling this. Building
// cos(theta/2) - sin(theta/2)*b directly from the
// as-given b (rather than first normalizing b by its own geometric
// square) and only normalizing the resulting rotor at the end is what
// keeps this construction correct in non-Euclidean signatures, where
// b's own square need not be -1. Returns ErrSingularOperand if the raw
// rotor built from b has a negligible norm under the resolved policy.
func FromBivectorAngle(alg *algebra.Algebra, b algebra.Multivector, theta float64, opts ...numeric.Option) (Rotor, error) {
	half := theta / 2

	rawMV, err := algebra.Add(algebra.Scalar(alg, math.Cos(half)), b.Scaled(-math.Sin(half)))
	if err != nil {
		return Rotor{}, err
	}

	raw := Rotor{Versor: New(rawMV, opts...)}

	return raw.Normalize()
}

// FromPlaneAngle builds the rotor that rotates by theta radians in the
// plane spanned by vectors a and b. Their wedge product is rescaled to
// unit magnitude, measured by the scalar part of its Hestenes inner
// product with itself, and passed to FromBivectorAngle. Returns
// ErrSingularOperand if that squared magnitude is negligible under the
// resolved policy.
func FromPlaneAngle(alg *algebra.Algebra, a, b algebra.Multivector, theta float64, opts ...numeric.Option) (Rotor, error) {
	plane, err := product.Wedge(a, b)
	if err != nil {
		return Rotor{}, err
	}

	squared, err := product.Inner(plane, plane)
	if err != nil {
		return Rotor{}, err
	}
	magnitudeSq := squared.Component(0)
	if numeric.NewPolicy(opts...).IsNegligible(magnitudeSq) {
		return Rotor{}, ErrSingularOperand
	}
	plane = plane.Scaled(1 / math.Sqrt(math.Abs(magnitudeSq)))

	return FromBivectorAngle(alg, plane, theta, opts...)
}

// Normalize returns a copy of r scaled to unit norm, so that Apply acts
// as an exact isometry. Returns ErrSingularOperand if r's norm is
// negligible under its policy.
func (r Rotor) Normalize() (Rotor, error) {
	norm, err := r.normScalar()
	if err != nil {
		return Rotor{}, err
	}

	if r.policy.IsNegligible(norm) {
		return Rotor{}, ErrSingularOperand
	}
	magnitude := math.Sqrt(math.Abs(norm))

	return Rotor{Versor: Versor{mv: r.mv.Scaled(1 / magnitude), policy: r.policy}}, nil
}
