// Package blade implements basis-blade bitmask encoding and the two
// products defined purely at the blade level: the metric-free exterior
// combine and the metric-aware geometric product.
//
// A Mask is a bitfield of width NMax: bit i set means basis vector e_i
// participates in the blade. A Blade pairs a mask with an orientation
// Sign in {-1, 0, +1}; Sign == 0 is the absorbing zero blade, Mask == 0
// with a nonzero Sign is the scalar basis.
//
// The geometric-product algorithm (Product) combines a swap-parity sign
// from walking the two sorted axis lists, expressed here as a
// closed-form bitmask popcount, with a metric contraction over the
// overlapping axes that annihilates on any null direction, and a result
// mask equal to the symmetric difference of the two operand masks.
package blade
