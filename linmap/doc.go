// Package linmap implements LinearMap, a linear map on an algebra's
// vector space, and its canonical extension to an outermorphism acting
// on multivectors of every grade.
//
// The vector-grade action is backed by a dense gonum matrix; applying a
// LinearMap to a higher-grade blade wedges together the image of each of
// its constituent basis vectors, which is the unique grade-preserving,
// wedge-respecting extension of a linear map to the whole algebra.
package linmap
