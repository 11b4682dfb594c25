package exprtree_test

import (
	"fmt"

	"github.com/zephyrtronium/exprtree"
)

func ExampleParse() {
	e, err := exprtree.Parse("X + 4 ^ 2 * 2 / (5 - 1)")
	if err != nil {
		panic(err)
	}
	fmt.Println(e)
	fmt.Println(e.Eval(1))

	// Output:
	// (X+(((4^2)*2)/(5-1)))
	// 9
}

func ExampleTokenize() {
	rpn, err := exprtree.Tokenize("abs(sin(X)) * 2^3^2")
	if err != nil {
		panic(err)
	}
	fmt.Println(rpn)

	// Output:
	// X sin abs 2 3 2 ^ ^ *
}

func ExampleExpr_Simplify() {
	e, _ := exprtree.Parse("(X*1 + 0) * (2 + 3) - sin(0*X)")
	s, err := e.Simplify()
	if err != nil {
		panic(err)
	}
	fmt.Println(e)
	fmt.Println(s)

	d, _ := exprtree.Parse("X/(2-2)")
	_, err = d.Simplify()
	fmt.Println(err)

	// Output:
	// ((((X*1)+0)*(2+3))-sin((0*X)))
	// ((X*5)-sin(0))
	// division by zero: X/0
}
