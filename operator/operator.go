package operator

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/nilhecke/odd"
)

// Sentinel errors for operator application.
var (
	// ErrInvalidStrand indicates a strand index below the minimum the
	// requested family supports (1 for Simple and Boundary, 2 for
	// Difference).
	ErrInvalidStrand = errors.New("operator: invalid strand index")
)

// family selects the boundary-weight rule and strand transform of one
// divided-difference operator family.
type family int

const (
	simple family = iota
	boundary
	difference
)

// Simple applies the simple divided-difference operator at strand n to
// every term of p and sums the results. Requires n >= 1.
func Simple(p odd.Polynomial, n int) (odd.Polynomial, error) {
	if n < 1 {
		return odd.Polynomial{}, fmt.Errorf("%w: simple family needs n >= 1, got %d", ErrInvalidStrand, n)
	}

	return apply(p, n, simple), nil
}

// Boundary applies the boundary divided-difference operator at strand n
// to every term of p and sums the results. Requires n >= 1.
func Boundary(p odd.Polynomial, n int) (odd.Polynomial, error) {
	if n < 1 {
		return odd.Polynomial{}, fmt.Errorf("%w: boundary family needs n >= 1, got %d", ErrInvalidStrand, n)
	}

	return apply(p, n, boundary), nil
}

// Difference applies the difference divided-difference operator at
// strand n to every term of p and sums the results. Requires n >= 2.
func Difference(p odd.Polynomial, n int) (odd.Polynomial, error) {
	if n < 2 {
		return odd.Polynomial{}, fmt.Errorf("%w: difference family needs n >= 2, got %d", ErrInvalidStrand, n)
	}

	return apply(p, n, difference), nil
}

// apply extends the monomial-level operator linearly over p's terms.
func apply(p odd.Polynomial, n int, f family) odd.Polynomial {
	var res odd.Polynomial
	for _, term := range p.Terms() {
		applyTerm(&res, term, n, f)
	}

	return res
}

// applyTerm accumulates the operator image of one monomial into res.
//
// The Leibniz recursion
//
//	F(m) = c·g + x̃ · F(g)
//
// (g = m with its first nonzero exponent decremented, c the boundary
// weight at that position, x̃ the strand-transformed peeled generator)
// is unrolled into a loop: prefix carries the left product of the
// transformed generators peeled so far, and each round merges
// prefix·(c·g) into the accumulator. Associativity of the signed
// product makes the flat form identical to the nested one.
func applyTerm(res *odd.Polynomial, m odd.Monomial, n int, f family) {
	prefix := odd.New(1, nil)
	work := m

	for {
		pos := firstNonzero(work.Powers)
		if pos < 0 {
			return
		}

		g := odd.New(work.Coefficient, work.Powers)
		g.Powers[pos]--

		if c := boundaryWeight(f, pos, n); c != 0 {
			res.AddMonomial(prefix.Mul(g.Scale(c)))
		}

		prefix = prefix.Mul(transform(f, pos, n))
		work = g
	}
}

// boundaryWeight returns the family's weight for a peel at position pos
// under strand n.
func boundaryWeight(f family, pos, n int) int64 {
	switch f {
	case simple:
		if pos == n-1 || pos == n {
			return 1
		}
	case boundary:
		if pos == n-1 {
			return 1
		}
	case difference:
		if pos == n-2 {
			return 1
		}
		if pos == n-1 {
			return -1
		}
	}

	return 0
}

// transform returns the peeled generator x_{pos+1} passed through the
// family's elementary strand transform.
func transform(f family, pos, n int) odd.Monomial {
	x := odd.X(pos + 1)
	switch f {
	case boundary:
		return x.ParityFlip(n)
	case difference:
		return x.UnsignedSwap(n)
	default:
		return x.SignedSwap(n)
	}
}

// firstNonzero returns the index of the first nonzero exponent, or -1
// when every exponent is zero (the recursion base case).
func firstNonzero(powers []int) int {
	for i, p := range powers {
		if p != 0 {
			return i
		}
	}

	return -1
}
