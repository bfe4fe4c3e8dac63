package point2d_test

import (
	"fmt"

	"github.com/katalvlaran/vec2d/point2d"
)

// ExamplePoint_Displacement subtracts two point arrays pairwise and reads
// the displacement magnitudes.
func ExamplePoint_Displacement() {
	from, _ := point2d.FromBuffer([]float64{0, 0, 1, 1})
	to, _ := point2d.FromBuffer([]float64{3, 4, 1, 2})

	d, err := to.Displacement(from)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("vectors:", d.Raw())
	fmt.Println("lengths:", d.Norm())

	// Output:
	// vectors: [3 4 0 1]
	// lengths: [5 1]
}
