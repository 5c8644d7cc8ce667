package algebra

import (
	"github.com/TheZerth/GASmith/blade"
	"github.com/TheZerth/GASmith/signature"
)

// Algebra is a Signature plus its derived dimension count. It is the
// shared, immutable context that every Multivector, LinearMap, Versor,
// and Rotor references by pointer. Construct one with New and keep
// reusing the same *Algebra value — algebra identity is compared by
// pointer, not by structural signature equality.
type Algebra struct {
	signature  signature.Signature
	dimensions int
}

// New builds an Algebra from a Signature.
func New(sig signature.Signature) *Algebra {
	return &Algebra{signature: sig, dimensions: sig.Dimensions()}
}

// Signature returns the algebra's metric signature.
func (a *Algebra) Signature() signature.Signature { return a.signature }

// Dimensions returns n = p + q + r.
func (a *Algebra) Dimensions() int { return a.dimensions }

// Size returns 2^n, the number of distinct basis-blade masks (and the
// length of every Multivector's dense coefficient storage).
func (a *Algebra) Size() int { return 1 << uint(a.dimensions) }

// Pseudoscalar returns the mask containing every axis of this algebra.
func (a *Algebra) Pseudoscalar() blade.Mask { return blade.Pseudoscalar(a.dimensions) }

// Multivector is a dense coefficient vector bound to an Algebra: a real
// linear combination of every basis blade of that algebra, indexed
// directly by blade mask. The zero value is invalid; construct one with
// NewMultivector(alg) or a helper like Scalar/Basis.
type Multivector struct {
	alg    *Algebra
	coeffs []float64
}

// NewMultivector constructs a zero-initialized Multivector bound to alg.
func NewMultivector(alg *Algebra) Multivector {
	return Multivector{alg: alg, coeffs: make([]float64, alg.Size())}
}

// Algebra returns the Multivector's bound Algebra, or nil if it was
// never attached (the zero value of Multivector).
func (mv Multivector) Algebra() *Algebra { return mv.alg }

// Len returns the number of coefficient slots (2^n), or 0 if mv has no
// algebra attached.
func (mv Multivector) Len() int { return len(mv.coeffs) }

// Component returns the coefficient at the given blade mask. Out-of-range
// masks return 0 rather than panicking; callers that need a strict
// contract use SetComponent, which does return ErrOutOfRange.
func (mv Multivector) Component(m blade.Mask) float64 {
	if int(m) < 0 || int(m) >= len(mv.coeffs) {
		return 0
	}

	return mv.coeffs[m]
}

// SetComponent assigns the coefficient at mask m. Returns ErrOutOfRange
// if m falls outside [0, 2^n) for mv's algebra.
func (mv Multivector) SetComponent(m blade.Mask, value float64) error {
	if int(m) < 0 || int(m) >= len(mv.coeffs) {
		return ErrOutOfRange
	}
	mv.coeffs[m] = value

	return nil
}

// SameAlgebra reports whether mv and other are bound to the identical
// Algebra instance (pointer identity, not merely structural signature
// equality), and that both have an algebra attached.
func (mv Multivector) SameAlgebra(other Multivector) bool {
	return mv.alg != nil && mv.alg == other.alg
}

// RequireSameAlgebra returns ErrNoAlgebra if either operand lacks an
// algebra, or ErrAlgebraMismatch if they reference different algebras.
// Every binary operation in package product/linmap/versor calls this
// before touching either operand's storage.
func RequireSameAlgebra(a, b Multivector) error {
	if a.alg == nil || b.alg == nil {
		return ErrNoAlgebra
	}
	if a.alg != b.alg {
		return ErrAlgebraMismatch
	}

	return nil
}

// Clone returns a deep copy of mv, bound to the same algebra.
func (mv Multivector) Clone() Multivector {
	out := Multivector{alg: mv.alg, coeffs: make([]float64, len(mv.coeffs))}
	copy(out.coeffs, mv.coeffs)

	return out
}

// Scaled returns a copy of mv with every component multiplied by factor.
func (mv Multivector) Scaled(factor float64) Multivector {
	out := mv.Clone()
	for i := range out.coeffs {
		out.coeffs[i] *= factor
	}

	return out
}

// Add returns the componentwise sum of a and b. Returns
// ErrAlgebraMismatch or ErrNoAlgebra if the two are not bound to the
// same algebra.
func Add(a, b Multivector) (Multivector, error) {
	if err := RequireSameAlgebra(a, b); err != nil {
		return Multivector{}, err
	}
	out := a.Clone()
	for i := range out.coeffs {
		out.coeffs[i] += b.coeffs[i]
	}

	return out, nil
}

// Scalar constructs a Multivector whose only nonzero component is the
// scalar part, equal to s.
func Scalar(alg *Algebra, s float64) Multivector {
	mv := NewMultivector(alg)
	mv.coeffs[0] = s

	return mv
}

// Basis constructs the unit vector multivector e_axis, for axis in
// [0, alg.Dimensions()).
func Basis(alg *Algebra, axis int) Multivector {
	mv := NewMultivector(alg)
	mv.coeffs[blade.AxisBit(axis)] = 1

	return mv
}

// FromBlade constructs a Multivector whose only nonzero component is b,
// scaled by coeff. A zero blade b produces the zero multivector.
func FromBlade(alg *Algebra, b blade.Blade, coeff float64) Multivector {
	mv := NewMultivector(alg)
	if b.IsZero() {
		return mv
	}
	mv.coeffs[b.Mask] = coeff * float64(b.Sign)

	return mv
}
