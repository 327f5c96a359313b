// Package schubert defines tunable options and error definitions for
// the closure enumerator.
package schubert

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/nilhecke/odd"
)

// Sentinel errors for closure enumeration.
var (
	// ErrInvalidRank is returned when the requested rank is below 2.
	ErrInvalidRank = errors.New("schubert: rank must be at least 2")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("schubert: invalid option supplied")
)

// Option configures closure enumeration via functional arguments.
// An invalid Option (negative round count, zero seed) is recorded
// internally and surfaced as ErrOptionViolation when Generate runs.
type Option func(*Options)

// Options holds the parameters of one closure enumeration.
type Options struct {
	// Seed is the starting polynomial. When left empty, Generate seeds
	// with the staircase monomial for the requested rank.
	Seed odd.Polynomial

	// Rounds overrides the number of sweep rounds. A value of -1 (the
	// default) derives the bound from the seed's total degree.
	Rounds int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: staircase seed,
// round count derived from the seed degree.
func DefaultOptions() Options {
	return Options{Rounds: -1}
}

// WithSeed replaces the staircase seed with a caller-provided
// polynomial. Supplying the zero polynomial is invalid: the sweep
// would have nothing to enumerate.
func WithSeed(p odd.Polynomial) Option {
	return func(o *Options) {
		if p.IsZero() {
			o.err = fmt.Errorf("%w: seed polynomial is zero", ErrOptionViolation)

			return
		}
		o.Seed = p
	}
}

// WithRounds fixes the number of sweep rounds instead of deriving it
// from the seed degree.
//
//	r >= 0: run exactly r rounds
//	r < 0:  invalid option → ErrOptionViolation
func WithRounds(r int) Option {
	return func(o *Options) {
		if r < 0 {
			o.err = fmt.Errorf("%w: round count cannot be negative (%d)", ErrOptionViolation, r)

			return
		}
		o.Rounds = r
	}
}
