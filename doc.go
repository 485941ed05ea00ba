// Package echelon is a small workbench for solving linear systems by hand,
// step by step, with every row operation written down.
//
// It is organized in two subpackages:
//
//	matrix/  : dense float64 storage: a row arena with O(1) row swaps,
//	           validators, sentinel errors and MatVec
//	echelon/ : the System: row operations, the row-echelon predicate, the
//	           triangular and reduced-triangular reducers, the operation
//	           log and solution read-off
//
// Quick example:
//
//	s, _ := echelon.New([][]float64{{2, 3}, {10, 9}}, []float64{1, 11})
//	sol, _ := s.Solution()
//	fmt.Print(s.Text()) // Row 2 -> Row 2 - 5.000 * Row 1 ...
//	fmt.Println(sol.Values) // [2 -1]
//
// Runnable programs live under examples/.
//
//	go get github.com/katalvlaran/echelon
package echelon
