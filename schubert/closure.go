package schubert

import (
	"fmt"

	"github.com/katalvlaran/nilhecke/odd"
	"github.com/katalvlaran/nilhecke/operator"
)

// Staircase returns the maximal seed monomial for the given rank:
// coefficient 1, exponents rank-1, rank-2, …, 1 across the first
// rank-1 generators. Its total degree is rank·(rank-1)/2. Requires
// rank >= 2; smaller ranks yield the zero monomial.
func Staircase(rank int) odd.Monomial {
	if rank < 2 {
		return odd.Monomial{}
	}
	powers := make([]int, rank-1)
	for i := range powers {
		powers[i] = rank - 1 - i
	}

	return odd.New(1, powers)
}

// Generate enumerates the closure of the seed under the operator
// generating set for the given rank.
//
// Every round applies Simple at each strand 1 ≤ k < rank and
// Difference at strand rank to every polynomial collected so far; the
// distinct nonzero results are merged into the set after the round's
// full fan-out, keeping the sweep breadth-first. Exactly degree rounds
// run (degree = the seed's total degree) unless WithRounds overrides
// the bound; stabilization is not checked, the bound alone terminates
// the sweep.
//
// Returns the final set and the seed degree. A rank below 2 fails with
// ErrInvalidRank before any enumeration starts.
func Generate(rank int, opts ...Option) (*Set, int, error) {
	if rank < 2 {
		return nil, 0, fmt.Errorf("%w: got %d", ErrInvalidRank, rank)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, 0, o.err
	}

	seed := o.Seed
	if seed.IsZero() {
		seed = odd.FromMonomial(Staircase(rank))
	}
	degree := seed.Degree()

	rounds := degree
	if o.Rounds >= 0 {
		rounds = o.Rounds
	}

	set := NewSet()
	set.Add(seed)

	for round := 0; round < rounds; round++ {
		fresh := NewSet()
		for _, p := range set.Polynomials() {
			for k := 1; k < rank; k++ {
				q, err := operator.Simple(p, k)
				if err != nil {
					return nil, 0, err
				}
				collect(fresh, q)
			}
			q, err := operator.Difference(p, rank)
			if err != nil {
				return nil, 0, err
			}
			collect(fresh, q)
		}
		for _, p := range fresh.Polynomials() {
			set.Add(p)
		}
	}

	return set, degree, nil
}

// collect adds a sweep result to the round's temporary set, discarding
// the zero polynomial: operators annihilate constants, and the zero
// result is not a generated polynomial.
func collect(s *Set, p odd.Polynomial) {
	if p.IsZero() {
		return
	}
	s.Add(p)
}
