package numeric

import "math"

// DefaultEpsilon is the tolerance used when no WithEpsilon option is
// supplied.
const DefaultEpsilon = 1e-6

// Policy bundles the numeric tolerance consulted by versor inversion,
// rotor normalization, and plane-wedge magnitude guards.
type Policy struct {
	// Epsilon is the non-negative threshold below which a scalar norm is
	// treated as zero.
	Epsilon float64
}

// Option mutates a Policy under construction.
type Option func(*Policy)

// WithEpsilon overrides the zero-tolerance used by numeric guards.
// Panics if eps is not finite or negative — this is a programmer error,
// caught at construction time rather than surfaced as a runtime error.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic("numeric: WithEpsilon: eps must be finite and non-negative")
	}

	return func(p *Policy) { p.Epsilon = eps }
}

// NewPolicy resolves a Policy from zero or more Option setters, starting
// from DefaultEpsilon and applying each option in order.
func NewPolicy(opts ...Option) Policy {
	p := Policy{Epsilon: DefaultEpsilon}
	for _, opt := range opts {
		opt(&p)
	}

	return p
}

// Default is the zero-configuration Policy, equivalent to NewPolicy().
func Default() Policy {
	return NewPolicy()
}

// IsNegligible reports whether |v| is at or below the policy's epsilon.
func (p Policy) IsNegligible(v float64) bool {
	return math.Abs(v) <= p.Epsilon
}
