// Package versor implements Versor, an invertible multivector used to
// transform other multivectors via the sandwich product, and Rotor, the
// even-grade versor specialization constructed from a bivector angle or
// a pair of vectors spanning a rotation plane.
//
// Every operation in this package consults a numeric.Policy to decide
// when a norm is too small to invert, rather than hard-coding a
// tolerance at each call site.
package versor
