package array2d_test

import (
	"fmt"

	"github.com/katalvlaran/vec2d/array2d"
)

// ExampleWrap demonstrates the zero-copy view contract: the Array and the
// original buffer share storage.
func ExampleWrap() {
	buf := []float64{3, 4, 0, 5}

	a, err := array2d.Wrap(buf)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("norms:", a.Norm())

	// Writing through the view mutates the buffer...
	_ = a.Set(1, 6, 8)
	fmt.Println("buffer:", buf)

	// ...and mutating the buffer is visible through the view.
	buf[0] = 0
	x, y, _ := a.At(0)
	fmt.Println("row 0:", x, y)

	// Output:
	// norms: [5 5]
	// buffer: [3 4 6 8]
	// row 0: 0 4
}

// ExampleConcat stacks several arrays vertically.
func ExampleConcat() {
	a, _ := array2d.New([]float64{1, 2})
	b, _ := array2d.New([]float64{3, 4, 5, 6})

	c := array2d.Concat(a, b)
	fmt.Print(c)

	// Output:
	// [1, 2]
	// [3, 4]
	// [5, 6]
}
