package algebra

import "errors"

// Sentinel errors for algebra/multivector operations.
var (
	// ErrAlgebraMismatch indicates a binary operation received
	// multivectors bound to different Algebra instances.
	ErrAlgebraMismatch = errors.New("algebra: multivectors do not share the same algebra")

	// ErrNoAlgebra indicates an operation received a Multivector with no
	// algebra attached (the zero value of Multivector).
	ErrNoAlgebra = errors.New("algebra: multivector has no algebra")

	// ErrOutOfRange indicates a component accessor received a mask
	// outside the algebra's valid range [0, 2^n).
	ErrOutOfRange = errors.New("algebra: mask out of range for this algebra")
)
