// Package algebra provides the Algebra descriptor and Multivector, the
// dense coefficient vector bound to it.
//
// An Algebra is a Signature plus its derived dimension count; it is the
// shared context every Multivector, LinearMap, Versor, and Rotor
// references. Two multivectors may only interact through a binary
// operation when they share the *same* Algebra value by pointer
// identity, not merely structurally-equal signatures.
//
// Multivector storage is a flat []float64 of length 2^n indexed directly
// by blade mask.
package algebra
