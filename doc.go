// Package nilhecke is a symbolic algebra engine for a graded ("odd")
// polynomial ring — monomials, signed multiplication, recursive
// divided-difference operators, and Schubert-type closure enumeration.
//
// 🚀 What is nilhecke?
//
//	A pure, value-type engine built from small layered packages:
//		• Monomials & polynomials with an exact graded sign rule
//		• Canonical merge: no zero terms, no duplicate supports, ever
//		• Three divided-difference operator families (simple, boundary,
//		  difference), linear over the ring
//		• Bounded breadth-first closure enumeration for a given rank
//		• A thin interactive shell on top (cmd/nilhecke)
//
// ✨ Why choose nilhecke?
//
//   - Deterministic – every operation is a pure function of its inputs
//   - Exact – the odd sign bookkeeping is associativity-tested, not
//     approximated by a generic anticommutator
//   - Minimal API – parse, format, add, multiply, apply, enumerate
//   - Pure Go – no cgo, no hidden deps in the core
//
// Under the hood, everything is organized under three subpackages:
//
//	odd/      — Monomial, Polynomial, signed multiplication, strand
//	            transforms, parse/format (the ground ring)
//	operator/ — the Simple, Boundary and Difference operator families
//	schubert/ — staircase seeds, polynomial sets, closure enumeration
//
// Quick example:
//
//	p, _ := odd.Parse("1 2")              // x_1^2
//	q, _ := operator.Simple(p, 1)         // x_1^1 - x_2^1
//	set, degree, _ := schubert.Generate(3)
//
// Data flows strictly upward: odd → operator → schubert → cmd.
//
//	go get github.com/katalvlaran/nilhecke
package nilhecke
