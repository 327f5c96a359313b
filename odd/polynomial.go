package odd

import (
	"sort"
	"strconv"
	"strings"
)

// FromMonomial wraps a single Monomial into a Polynomial.
// The zero monomial yields the zero polynomial.
func FromMonomial(m Monomial) Polynomial {
	var p Polynomial
	p.AddMonomial(m)

	return p
}

// IsZero reports whether p is the zero polynomial (no terms).
func (p Polynomial) IsZero() bool { return len(p.terms) == 0 }

// Len returns the number of canonical terms in p.
func (p Polynomial) Len() int { return len(p.terms) }

// Terms returns a copy of p's terms in insertion order.
func (p Polynomial) Terms() []Monomial {
	out := make([]Monomial, len(p.terms))
	copy(out, p.terms)

	return out
}

// Degree returns the largest total exponent sum over p's terms,
// or 0 for the zero polynomial.
func (p Polynomial) Degree() int {
	d := 0
	for _, t := range p.terms {
		if td := t.Degree(); td > d {
			d = td
		}
	}

	return d
}

// AddMonomial merges m into p, preserving canonical form: the zero
// monomial is a no-op; a term with the same support accumulates the
// coefficient (and is deleted if the sum is zero); otherwise m is
// appended as a new term. This is the single funnel every construction
// path goes through.
func (p *Polynomial) AddMonomial(m Monomial) {
	if m.IsZero() {
		return
	}
	for i, t := range p.terms {
		if !t.SameSupport(m) {
			continue
		}
		p.terms[i].Coefficient += m.Coefficient
		if p.terms[i].IsZero() {
			p.terms = append(p.terms[:i], p.terms[i+1:]...)
		}

		return
	}
	p.terms = append(p.terms, New(m.Coefficient, m.Powers))
}

// Add returns p + q. Neither operand is mutated.
func (p Polynomial) Add(q Polynomial) Polynomial {
	var sum Polynomial
	for _, t := range p.terms {
		sum.AddMonomial(t)
	}
	for _, t := range q.terms {
		sum.AddMonomial(t)
	}

	return sum
}

// Mul returns p * q, folding every signed cross product through the
// canonical merge. This is the only place term count can blow up
// quadratically; same-support collapses keep it bounded.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	var prod Polynomial
	for _, t1 := range p.terms {
		for _, t2 := range q.terms {
			prod.AddMonomial(t1.Mul(t2))
		}
	}

	return prod
}

// Key returns a canonical textual identity for p: terms sorted by
// support, rendered in parse syntax (coefficient then trimmed
// exponents, joined by TermSeparator). Two polynomials built in any
// insertion order have equal keys iff they are structurally equal, so
// Key is safe to use as a set/map key. The zero polynomial keys to "0".
func (p Polynomial) Key() string {
	if len(p.terms) == 0 {
		return "0"
	}

	sorted := make([]Monomial, len(p.terms))
	copy(sorted, p.terms)
	sort.Slice(sorted, func(i, j int) bool {
		return supportLess(sorted[i], sorted[j])
	})

	var b strings.Builder
	for i, t := range sorted {
		if i > 0 {
			b.WriteString(TermSeparator)
		}
		b.WriteString(strconv.FormatInt(t.Coefficient, 10))
		for j := 0; j <= lastNonzero(t.Powers); j++ {
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(t.Powers[j]))
		}
	}

	return b.String()
}

// Equal reports structural equality: same canonical multiset of
// (support, coefficient) pairs, independent of term insertion order.
func (p Polynomial) Equal(q Polynomial) bool { return p.Key() == q.Key() }

// supportLess orders monomials by their zero-padded exponent vectors,
// lexicographically. Distinct canonical terms never tie.
func supportLess(a, b Monomial) bool {
	n := len(a.Powers)
	if len(b.Powers) > n {
		n = len(b.Powers)
	}
	for i := 0; i < n; i++ {
		pa, pb := a.powerAt(i), b.powerAt(i)
		if pa != pb {
			return pa < pb
		}
	}

	return false
}

// lastNonzero returns the index of the last nonzero exponent, or -1.
func lastNonzero(powers []int) int {
	for i := len(powers) - 1; i >= 0; i-- {
		if powers[i] != 0 {
			return i
		}
	}

	return -1
}
