// SPDX-License-Identifier: MIT
// Package: lvalign/align
//
// options.go: functional options for Compute.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors panic on meaningless inputs (nil policy);
//     Compute itself never panics and reports invalid values as errors.
//   • Unset scoring resolves to the algorithm's default policy.

package align

import "github.com/katalvlaran/lvalign/scoring"

// Option customizes Compute.
type Option func(*config)

// config is the resolved option set.
type config struct {
	policy scoring.Policy
	all    bool
}

// WithScoring sets the scoring policy. Panics on nil.
func WithScoring(p scoring.Policy) Option {
	if p == nil {
		panic("align: WithScoring(nil)")
	}
	return func(c *config) {
		c.policy = p
	}
}

// WithAllAlignments selects enumeration of every co-optimal alignment
// (true) or only the first one found (false, default).
func WithAllAlignments(all bool) Option {
	return func(c *config) {
		c.all = all
	}
}

// DefaultScoring returns the default policy of a.
func DefaultScoring(a Algorithm) scoring.Policy {
	switch a {
	case SmithWaterman:
		return scoring.DefaultSmithWaterman()
	case WagnerFischer:
		return scoring.DefaultWagnerFischer()
	}

	return scoring.DefaultNeedlemanWunsch()
}

// newConfig applies opts over the defaults of a.
func newConfig(a Algorithm, opts ...Option) config {
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}
	if c.policy == nil {
		c.policy = DefaultScoring(a)
	}

	return c
}
