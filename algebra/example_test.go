// SPDX-License-Identifier: MIT

package algebra_test

import (
	"fmt"

	"github.com/katalvlaran/algex/algebra"
	"github.com/katalvlaran/algex/format"
	"github.com/katalvlaran/algex/numeric"
)

// ExampleDeterminant shows the default exact pipeline end to end: text in,
// canonical string out.
func ExampleDeterminant() {
	res := algebra.Determinant("[[2,3],[1,4]]", numeric.Default())
	fmt.Println(res.Formatted)
	// Output: 5
}

// ExampleSum demonstrates exact fraction arithmetic with fraction output.
func ExampleSum() {
	res := algebra.Sum("[[1/2]]", "[[1/3]]", numeric.Default(),
		algebra.WithFormat(format.Fraction))
	fmt.Println(res.Formatted[0][0])
	// Output: 5/6
}

func ExampleMultiply() {
	res := algebra.Multiply("[[1,2],[3,4]]", "[[2,0],[0,2]]", numeric.Default())
	for _, row := range res.Formatted {
		fmt.Println(row)
	}
	// Output:
	// [2 4]
	// [6 8]
}
