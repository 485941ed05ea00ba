package echelon_test

import (
	"fmt"

	"github.com/katalvlaran/echelon/echelon"
)

// ExampleSystem_ToReducedTriangular solves 2x + 3y = 1, 10x + 9y = 11 and
// prints the row operations that led there.
func ExampleSystem_ToReducedTriangular() {
	s, err := echelon.New([][]float64{{2, 3}, {10, 9}}, []float64{1, 11})
	if err != nil {
		fmt.Println(err)
		return
	}
	if _, err = s.ToReducedTriangular(); err != nil {
		fmt.Println(err)
		return
	}
	for _, op := range s.Operations() {
		fmt.Println(op)
	}
	sol, _ := s.Solution()
	fmt.Printf("x = %.3f, y = %.3f\n", sol.Values[0], sol.Values[1])

	// Output:
	// Row 2 -> Row 2 - 5.000 * Row 1
	// Row 2 -> Row 2 * -0.167
	// Row 1 -> Row 1 * 0.500
	// Row 1 -> Row 1 - 1.500 * Row 2
	// x = 2.000, y = -1.000
}

// ExampleSystem_Check shows that Check only reports; the system is unchanged.
func ExampleSystem_Check() {
	s, _ := echelon.New([][]float64{{0, 0, 1}, {2, 1, 1}, {3, 3, 4}}, []float64{0, 1, 10})
	fmt.Println(s.Check())
	fmt.Println(s.Leading())

	// Output:
	// Not all coefficients below the leading coefficient [1, 3] are zero.
	// [2 0 0]
}

// ExampleSystem_Solution reads a particular solution of an underdetermined system.
func ExampleSystem_Solution() {
	s, _ := echelon.New([][]float64{{1, 1}, {0, 0}}, []float64{2, 0})
	sol, err := s.Solution()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(sol.Values, "free:", sol.Free, "unique:", sol.Unique())

	// Output:
	// [2 0] free: [1] unique: false
}

// ExampleSystem_ToTriangular_inconsistent reports a system with no solution.
func ExampleSystem_ToTriangular_inconsistent() {
	s, _ := echelon.New([][]float64{{1, 2}, {2, 4}}, []float64{1, 3})
	_, err := s.ToTriangular()
	fmt.Println(err)

	// Output:
	// ToTriangular: row 2 reads 0 = 1: echelon: singular system: no valid pivot, equations are inconsistent
}
