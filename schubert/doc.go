// Package schubert enumerates the closure of a seed polynomial under
// the divided-difference operator generating set for a given rank.
//
// 🚀 What it computes
//
//	Starting from a seed (by default the staircase monomial
//	x_1^{rank-1} x_2^{rank-2} … x_{rank-1}^1), the enumerator runs a
//	bounded breadth-first sweep: every round applies the Simple family
//	at every strand 1 ≤ k < rank and the Difference family at strand
//	rank to every polynomial collected so far, merging the distinct
//	results into the set. Exactly degree rounds run, degree being the
//	seed's total exponent sum; each operator application lowers the
//	degree by one, so the set reaches its fixed point by then and an
//	extra round cannot grow it.
//
// ✨ Identity
//
//	Membership is structural: polynomials are keyed by their canonical
//	order-insensitive form (odd.Polynomial.Key), so two equal
//	polynomials built through different operator words collapse to one
//	set element. Zero results are discarded — the sweep tracks the
//	polynomials the operators generate, and the zero polynomial is not
//	one of them.
//
// ⚙️ Usage
//
//	set, degree, err := schubert.Generate(3)
//	if err != nil {
//	  // errors.Is(err, schubert.ErrInvalidRank)
//	}
//	for _, p := range set.Polynomials() {
//	  fmt.Println(p)
//	}
//
// The enumeration is a pure, deterministic, single-threaded function of
// (seed, rank, rounds); there is no shared state across calls.
//
// Errors:
//   - ErrInvalidRank      — rank below 2.
//   - ErrOptionViolation  — invalid option value (negative round count,
//     zero seed).
package schubert
