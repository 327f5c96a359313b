// Package operator implements the three divided-difference operator
// families acting on the odd polynomial ring.
//
// 🚀 The families
//
//	Each family is a linear operator on odd.Polynomial, parameterized by
//	a strand index n selecting which generator pair it acts across:
//	  • Simple     — boundary weight 1 at positions n-1 and n, recursive
//	    step through SignedSwap (requires n ≥ 1)
//	  • Boundary   — boundary weight 1 at position n-1, recursive step
//	    through ParityFlip (requires n ≥ 1)
//	  • Difference — boundary weight +1 at n-2 and -1 at n-1, recursive
//	    step through UnsignedSwap (requires n ≥ 2)
//
// ✨ The Leibniz peel
//
//	On one monomial the operator peels the lowest-index generator with a
//	nonzero exponent: decrement it to obtain g, emit g scaled by the
//	family's boundary weight at that position, then recurse into g
//	behind the strand-transformed copy of the peeled generator. The
//	total exponent strictly decreases, so the peel terminates; it is
//	implemented as a flat loop carrying the left prefix of transformed
//	generators, so the call stack never grows with the degree.
//
// ⚙️ Usage
//
//	q, err := operator.Simple(p, 1)
//	if err != nil {
//	  // errors.Is(err, operator.ErrInvalidStrand)
//	}
//
// Errors:
//   - ErrInvalidStrand — strand index below the family's minimum.
//
// All three families are linear (F(p+q) == F(p)+F(q)) and annihilate
// the zero polynomial; both properties are exercised by the tests.
package operator
