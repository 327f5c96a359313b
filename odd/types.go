// Package odd defines the monomial/polynomial value types, sentinel
// errors, and the textual conventions shared by Parse and String.
package odd

import "errors"

// Sentinel errors for the ring core.
var (
	// ErrParse indicates a malformed coefficient or exponent token while
	// reading a Polynomial from text. The failed parse leaves no partial
	// polynomial behind.
	ErrParse = errors.New("odd: cannot parse polynomial")
)

// TermSeparator splits a textual polynomial into terms. Each term is a
// whitespace-separated token list: a signed integer coefficient followed
// by non-negative integer exponents in ascending generator order.
const TermSeparator = "/"

// Monomial is one signed term: a coefficient and an exponent vector,
// index i holding the exponent of generator i+1.
//
// The exponent vector is not length-canonical: a vector and any
// zero-padded extension of it denote the same generator assignment.
// A Monomial with Coefficient == 0 is the zero monomial regardless of
// Powers, and is dropped wherever polynomials are canonicalized.
//
// Treat a Monomial as immutable once built; every operation returns a
// fresh value and never aliases the receiver's Powers slice.
type Monomial struct {
	// Coefficient is the signed integer coefficient of the term.
	Coefficient int64

	// Powers holds the exponent of each generator, ascending order.
	Powers []int
}

// Polynomial is a canonicalized sum of Monomials: no zero-coefficient
// terms, no two terms sharing a support. The zero value is the zero
// polynomial (the additive identity).
//
// Term order is insertion order, retained for display only; use Equal
// or Key for structural identity.
type Polynomial struct {
	terms []Monomial
}
