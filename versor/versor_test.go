package versor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TheZerth/GASmith/algebra"
	"github.com/TheZerth/GASmith/blade"
	"github.com/TheZerth/GASmith/product"
	"github.com/TheZerth/GASmith/signature"
)

func e3(t *testing.T) *algebra.Algebra {
	t.Helper()
	sig, err := signature.FromCounts(3, 0, 0, true)
	require.NoError(t, err)

	return algebra.New(sig)
}

func TestVersorApplyReflectsOrthogonalVector(t *testing.T) {
	alg := e3(t)
	e1 := algebra.Basis(alg, 0)
	v := New(e1)

	x := algebra.Basis(alg, 1)
	got, err := v.Apply(x)
	require.NoError(t, err)

	// reflecting e2 through the e1 "mirror" versor: e1 e2 e1^-1 = -e2.
	require.InDelta(t, -1, got.Component(blade.AxisBit(1)), 1e-9)
}

func TestVersorInverseSingular(t *testing.T) {
	alg := e3(t)
	zero := algebra.NewMultivector(alg)
	v := New(zero)

	_, err := v.Inverse()
	require.ErrorIs(t, err, ErrSingularOperand)
}

func TestRotorNinetyDegreesInE1E2Plane(t *testing.T) {
	alg := e3(t)
	e1 := algebra.Basis(alg, 0)
	e2 := algebra.Basis(alg, 1)

	bivector, err := wedge(t, e1, e2)
	require.NoError(t, err)

	r, err := FromBivectorAngle(alg, bivector, math.Pi/2)
	require.NoError(t, err)

	got, err := r.Apply(e1)
	require.NoError(t, err)

	require.InDelta(t, 0, got.Component(blade.AxisBit(0)), 1e-9)
	require.InDelta(t, 1, got.Component(blade.AxisBit(1)), 1e-9)
}

func TestRotorFromPlaneAngleMatchesBivectorForm(t *testing.T) {
	alg := e3(t)
	e1 := algebra.Basis(alg, 0)
	e2 := algebra.Basis(alg, 1)

	r, err := FromPlaneAngle(alg, e1, e2, math.Pi/2)
	require.NoError(t, err)

	got, err := r.Apply(e1)
	require.NoError(t, err)
	require.InDelta(t, 1, got.Component(blade.AxisBit(1)), 1e-9)
}

func TestRotorNormalizeProducesUnitNorm(t *testing.T) {
	alg := e3(t)
	e1 := algebra.Basis(alg, 0)
	e2 := algebra.Basis(alg, 1)

	bivector, err := wedge(t, e1, e2)
	require.NoError(t, err)

	r, err := FromBivectorAngle(alg, bivector, math.Pi/3)
	require.NoError(t, err)

	scaled := Rotor{Versor: New(r.Multivector().Scaled(2))}
	normalized, err := scaled.Normalize()
	require.NoError(t, err)

	norm, err := normalized.normScalar()
	require.NoError(t, err)
	require.InDelta(t, 1, norm, 1e-9)
}

func wedge(t *testing.T, a, b algebra.Multivector) (algebra.Multivector, error) {
	t.Helper()

	return product.Wedge(a, b)
}

func TestRotorFromBivectorAngleNonEuclideanSignature(t *testing.T) {
	sig, err := signature.FromCounts(1, 3, 0, true)
	require.NoError(t, err)
	alg := algebra.New(sig)

	e0 := algebra.Basis(alg, 0)
	e1 := algebra.Basis(alg, 1)

	bivector, err := wedge(t, e0, e1)
	require.NoError(t, err)

	squared, err := product.Product(bivector, bivector, nil)
	require.NoError(t, err)
	require.InDelta(t, 1, squared.Component(0), 1e-9)

	// theta/2 = pi/6 keeps cos(theta) != 0, so the raw rotor built from
	// this b^2 == +1 plane is non-degenerate and Normalize can rescale it
	// to unit norm; theta == pi/2 would make the raw rotor's own norm
	// (cos(theta)) vanish in this plane, which is a property of the plane
	// rather than a bug.
	r, err := FromBivectorAngle(alg, bivector, math.Pi/3)
	require.NoError(t, err)

	norm, err := r.normScalar()
	require.NoError(t, err)
	require.InDelta(t, 1, norm, 1e-9)
}
