// Package odd implements the ground ring of the engine: monomials and
// polynomials over finitely many odd (graded, anti-commuting) generators.
//
// 🚀 What lives here?
//
//	A small, allocation-friendly value-type core:
//	  • Monomial — signed integer coefficient + exponent vector
//	  • Polynomial — canonicalized, deduplicated term collection
//	  • Signed multiplication encoding the odd commutation convention
//	  • The three elementary strand transforms (SignedSwap, ParityFlip,
//	    UnsignedSwap) consumed by the operator package
//	  • Textual parse / format round-tripping for the shell
//
// ✨ The sign rule
//
//	Generators x_2, x_3, … pairwise anti-commute; multiplication tracks
//	the parity of odd-exponent crossings while the right factor's powers
//	are folded in left to right. The exact accounting (running remainder
//	of the left factor's powers past index 1) is load-bearing: the ring
//	is associative and graded-commutative only under this precise order
//	of bookkeeping. See Monomial.Mul.
//
// ⚙️ Canonical form
//
//	Every Polynomial is its own normal form: no zero-coefficient terms,
//	no two terms with the same support (zero-padded exponent vectors).
//	AddMonomial is the single merge funnel enforcing this. Term order is
//	insertion order and carries no algebraic meaning; Key() produces an
//	order-insensitive identity for equality and set membership.
//
// Errors:
//   - ErrParse — malformed coefficient or exponent token while reading a
//     polynomial from text.
//
// Complexity:
//
//	Monomial multiplication is O(len(powers)); polynomial multiplication
//	is O(|P|·|Q|·t) with t the merge scan, bounded by canonical merging.
package odd
