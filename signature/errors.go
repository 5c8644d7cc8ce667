package signature

import "errors"

// Sentinel errors for signature construction. Callers branch on these
// with errors.Is, never on message text.
var (
	// ErrSignatureTooLarge indicates p+q+r exceeds N_MAX (FromCounts), or
	// a mask references an axis at or above N_MAX (FromMasks).
	ErrSignatureTooLarge = errors.New("signature: axis count exceeds N_MAX")

	// ErrMaskOverlap indicates two of the three axis masks share a bit.
	ErrMaskOverlap = errors.New("signature: pMask, qMask, rMask are not pairwise disjoint")

	// ErrAxisCountOutOfRange indicates an explicit axisCount argument is
	// negative or exceeds the supplied metric's length.
	ErrAxisCountOutOfRange = errors.New("signature: axis count out of range")
)
