package odd_test

import (
	"fmt"

	"github.com/katalvlaran/nilhecke/odd"
)

// ExampleParse reads a polynomial in coefficient/exponent syntax:
// terms split on "/", each term a coefficient followed by exponents.
func ExampleParse() {
	p, err := odd.Parse("2 1/1 0 1")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(p)
	// Output:
	// 2x_1^1 + x_2^1
}

// ExamplePolynomial_Add shows canonical merging: same supports
// accumulate, distinct supports stay separate.
func ExamplePolynomial_Add() {
	p1, _ := odd.Parse("1 1")
	p2, _ := odd.Parse("1 0 1")
	fmt.Println(p1.Add(p2))
	// Output:
	// x_1^1 + x_2^1
}

// ExamplePolynomial_Mul shows the odd sign rule: multiplying x_2 by x_1
// crosses an odd generator and flips the sign.
func ExamplePolynomial_Mul() {
	x1, _ := odd.Parse("1 1")
	x2, _ := odd.Parse("1 0 1")

	fmt.Println(x1.Mul(x2))
	fmt.Println(x2.Mul(x1))
	// Output:
	// x_1^1 x_2^1
	// -x_1^1 x_2^1
}
