package operator_test

import (
	"fmt"

	"github.com/katalvlaran/nilhecke/odd"
	"github.com/katalvlaran/nilhecke/operator"
)

// ExampleSimple peels x_1^2 at strand 1: the Leibniz recursion leaves
// the classic two-term divided difference.
func ExampleSimple() {
	p, _ := odd.Parse("1 2")

	q, err := operator.Simple(p, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(q)
	// Output:
	// x_1^1 - x_2^1
}

// ExampleDifference shows the signed boundary weights of the
// difference family at strand 2.
func ExampleDifference() {
	x1, _ := odd.Parse("1 1")
	x2, _ := odd.Parse("1 0 1")

	d1, _ := operator.Difference(x1, 2)
	d2, _ := operator.Difference(x2, 2)
	fmt.Println(d1)
	fmt.Println(d2)
	// Output:
	// 1
	// -1
}
