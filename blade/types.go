package blade

import (
	"math/bits"
)

// Mask is an unsigned bit-field of width signature.NMax. Bit i set means
// basis vector e_i is present in the blade.
type Mask uint8

// AxisBit returns the mask with only axis i set.
func AxisBit(i int) Mask {
	return Mask(1) << uint(i)
}

// HasAxis reports whether m contains axis i.
func (m Mask) HasAxis(i int) bool {
	return m&AxisBit(i) != 0
}

// Grade returns popcount(m), the number of axes present in the blade.
func (m Mask) Grade() int {
	return bits.OnesCount8(uint8(m))
}

// Pseudoscalar returns the mask (1<<n)-1 containing every axis of an
// n-dimensional algebra.
func Pseudoscalar(n int) Mask {
	return Mask(1<<uint(n)) - 1
}

// Blade is a basis blade: a mask of participating axes plus an
// orientation sign. Sign == 0 denotes the absorbing zero blade; Mask ==
// 0 with a nonzero Sign denotes the scalar basis.
type Blade struct {
	Mask Mask
	Sign int8
}

// Zero is the absorbing zero blade.
func Zero() Blade { return Blade{Mask: 0, Sign: 0} }

// ScalarBasis is the unit scalar basis blade (mask 0, sign +1).
func ScalarBasis() Blade { return Blade{Mask: 0, Sign: 1} }

// IsZero reports whether b is the absorbing zero blade.
func (b Blade) IsZero() bool { return b.Sign == 0 }

// IsScalarBasis reports whether b is a (possibly negated) scalar: an
// empty mask with a nonzero sign.
func (b Blade) IsScalarBasis() bool { return b.Mask == 0 && b.Sign != 0 }

// Grade returns popcount(b.Mask).
func (b Blade) Grade() int { return b.Mask.Grade() }
