// Package gasmith is a from-scratch Clifford (geometric) algebra kernel
// for computing over any dense, diagonal-metric algebra with up to eight
// basis dimensions: Euclidean spaces, Minkowski spacetime, and
// degenerate-axis algebras like PGA all fall out of the same Signature.
//
// What gasmith brings together:
//   - signature — Signature, the (p,q,r) metric plus pseudoscalar
//     handedness that every other package is parameterized on
//   - blade — Mask, the blade bit encoding, and the blade-level exterior combine
//     and geometric product
//   - algebra — Algebra (a bound Signature) and Multivector, its dense
//     coefficient storage
//   - product — the bilinear extension of the geometric product to
//     multivectors, plus wedge, inner, left/right contraction, the three
//     involutions, and the Hodge dual, all built on it
//   - linmap — LinearMap and its outermorphism extension to every grade
//   - versor — Versor and Rotor, metric-aware sandwich-product
//     transformations
//   - numeric — the shared epsilon tolerance policy used by every
//     singularity guard
//
// Everything operates on plain float64 components stored densely; there
// is no sparse representation, no symbolic layer, and no algebra above
// eight dimensions.
//
// A minimal walk through Euclidean 3-space:
//
//	sig, _ := signature.FromCounts(3, 0, 0, true)
//	alg := algebra.New(sig)
//
//	e1 := algebra.Basis(alg, 0)
//	e2 := algebra.Basis(alg, 1)
//
//	e12, _ := product.Wedge(e1, e2)
//	r, _ := versor.FromBivectorAngle(alg, e12, math.Pi/2)
//	rotated, _ := r.Apply(e1) // rotated == e2
package gasmith
