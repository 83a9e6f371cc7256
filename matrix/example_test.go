package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvalign/matrix"
)

// ExampleNewFilled builds a 2×3 grid filled with -1 and updates one cell.
func ExampleNewFilled() {
	m, err := matrix.NewFilled(2, 3, -1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	_ = m.Set(1, 2, 4)
	fmt.Print(m)
	// Output:
	// [-1, -1, -1]
	// [-1, -1, 4]
}
