package signature

// NMax is the hard cap on algebra dimensions. The dense multivector
// storage backing this module is 2^n coefficients (see package algebra),
// so n is never allowed to exceed NMax.
const NMax = 8

// Sign is one of −1, 0, or +1: the diagonal metric value g(i) for a
// single basis axis.
type Sign int

const (
	SignNegative Sign = -1
	SignNull     Sign = 0
	SignPositive Sign = 1
)

// Metric is a fixed-width diagonal metric: Metric[i] = g(i) for
// i in [0, NMax).
type Metric [NMax]Sign

// Signature is the metric of a Clifford algebra: how many axes square to
// +1 (p), −1 (q), and 0 (r), plus orientation handedness for the
// pseudoscalar. The zero value is the empty (0,0,0) signature.
type Signature struct {
	p, q, r     int
	metric      Metric
	rightHanded bool
}

// P returns the count of positive-square axes.
func (s Signature) P() int { return s.p }

// Q returns the count of negative-square axes.
func (s Signature) Q() int { return s.q }

// R returns the count of null axes.
func (s Signature) R() int { return s.r }

// Dimensions returns p + q + r, the total number of basis axes.
func (s Signature) Dimensions() int { return s.p + s.q + s.r }

// RightHanded reports the handedness flag the signature was built with.
// No operation in this module reads it: the pseudoscalar mask, Dual, and
// every product are the same for either value.
func (s Signature) RightHanded() bool { return s.rightHanded }

// IsDegenerate reports whether the signature contains any null axis
// (r > 0).
func (s Signature) IsDegenerate() bool { return s.r > 0 }

// G returns g(i), the diagonal metric value for axis i. i outside
// [0, Dimensions()) returns SignNull as a sentinel that callers never
// reach in practice because every blade/multivector operation bounds
// its axis iteration by Dimensions().
func (s Signature) G(i int) Sign {
	if i < 0 || i >= s.Dimensions() {
		return SignNull
	}

	return s.metric[i]
}

// FromCounts builds a Signature from axis counts: the first p axes are
// positive, the next q are negative, the last r are null. Fails with
// ErrSignatureTooLarge when p+q+r > NMax.
func FromCounts(p, q, r int, rightHanded bool) (Signature, error) {
	if p < 0 || q < 0 || r < 0 || p+q+r > NMax {
		return Signature{}, ErrSignatureTooLarge
	}

	var metric Metric
	i := 0
	for n := 0; n < p; n++ {
		metric[i] = SignPositive
		i++
	}
	for n := 0; n < q; n++ {
		metric[i] = SignNegative
		i++
	}
	for n := 0; n < r; n++ {
		metric[i] = SignNull
		i++
	}

	return Signature{p: p, q: q, r: r, metric: metric, rightHanded: rightHanded}, nil
}

// FromMasks builds a Signature from three disjoint axis-index masks:
// axis i is positive if pMask has bit i set, negative if qMask does, and
// null if rMask does. Fails with ErrMaskOverlap when any pair of masks
// shares a bit, and with ErrSignatureTooLarge when the highest set bit
// across all three masks is >= NMax.
func FromMasks(pMask, qMask, rMask uint32, rightHanded bool) (Signature, error) {
	if pMask&qMask != 0 || pMask&rMask != 0 || qMask&rMask != 0 {
		return Signature{}, ErrMaskOverlap
	}

	all := pMask | qMask | rMask
	n := 0
	for i := 0; i < 32; i++ {
		if all&(1<<uint(i)) != 0 {
			n = i + 1
		}
	}
	if n > NMax {
		return Signature{}, ErrSignatureTooLarge
	}

	var metric Metric
	p, q, r := 0, 0, 0
	for i := 0; i < n; i++ {
		bit := uint32(1) << uint(i)
		switch {
		case pMask&bit != 0:
			metric[i] = SignPositive
			p++
		case qMask&bit != 0:
			metric[i] = SignNegative
			q++
		case rMask&bit != 0:
			metric[i] = SignNull
			r++
		default:
			// Axis unused by any mask but below the highest referenced
			// bit: treat as null so Dimensions() stays contiguous.
			metric[i] = SignNull
			r++
		}
	}

	return Signature{p: p, q: q, r: r, metric: metric, rightHanded: rightHanded}, nil
}

// FromMetric builds a Signature from an explicit diagonal metric and an
// axis count, recovering (p, q, r) by counting entries in
// metric[:axisCount]. Fails with ErrAxisCountOutOfRange when axisCount is
// negative or exceeds NMax.
func FromMetric(metric Metric, axisCount int, rightHanded bool) (Signature, error) {
	if axisCount < 0 || axisCount > NMax {
		return Signature{}, ErrAxisCountOutOfRange
	}

	p, q, r := 0, 0, 0
	for i := 0; i < axisCount; i++ {
		switch metric[i] {
		case SignPositive:
			p++
		case SignNegative:
			q++
		default:
			r++
		}
	}

	var out Metric
	copy(out[:axisCount], metric[:axisCount])

	return Signature{p: p, q: q, r: r, metric: out, rightHanded: rightHanded}, nil
}
