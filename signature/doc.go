// Package signature declares the metric of a Clifford algebra: the
// counts of basis axes that square to +1, −1, and 0 (the (p, q, r)
// triple), plus a handedness flag for pseudoscalar orientation.
//
// A Signature is built one of three ways:
//
//   - FromCounts(p, q, r, handedness) — the common case: the first p
//     axes are positive, the next q are negative, the last r are null.
//   - FromMasks(pMask, qMask, rMask, handedness) — for non-canonical axis
//     orderings (e.g. a time axis placed last instead of first).
//   - FromMetric(metric, axisCount, handedness) — round-trips an
//     already-serialized diagonal metric, recovering (p, q, r) by
//     counting entries.
//
// All three share one invariant: axisCount = p + q + r must not exceed
// N_MAX. g(i) is looked up per axis and returns 0 for any i outside
// [0, axisCount) as a defensive default — callers never reach that path
// because every blade/multivector operation bounds its axis iteration by
// the algebra's own dimensions.
package signature
