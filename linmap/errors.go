package linmap

import "errors"

var (
	// ErrAlgebraMismatch indicates a LinearMap was applied to a
	// Multivector bound to a different Algebra than the one it was
	// constructed for.
	ErrAlgebraMismatch = errors.New("linmap: multivector does not belong to this map's algebra")

	// ErrDimensionMismatch indicates FromRows received a row count or
	// row length that does not equal the algebra's dimension count.
	ErrDimensionMismatch = errors.New("linmap: matrix dimensions do not match algebra dimension count")

	// ErrOutOfRange indicates Get or Set received a row or column index
	// outside [0, n) for this map's n-dimensional algebra.
	ErrOutOfRange = errors.New("linmap: row or column index out of range")
)
