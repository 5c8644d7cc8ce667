// Package product extends the blade-level geometric product to
// multivectors and derives the family of grade-filtered products built
// on it: wedge, the Hestenes inner product, left and right contraction,
// the three standard involutions, and the Hodge dual.
//
// Every binary product here works in terms of Product, the bilinear
// extension of blade.Product weighted by each multivector's dense
// coefficients; the involutions are per-grade sign flips, and Dual calls
// blade.Product directly for each component. A GradeFilter decides which (gradeA, gradeB, gradeResult)
// triples survive into the output; Wedge, Inner, LeftContract, and
// RightContract are each just Product with a fixed filter.
package product
