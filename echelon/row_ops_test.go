package echelon_test

import (
	"testing"

	"github.com/katalvlaran/echelon/echelon"
	"github.com/stretchr/testify/require"
)

func TestSwap(t *testing.T) {
	t.Parallel()

	s := MustSystem(t, [][]float64{{0, 1}, {1, 0}}, []float64{5, 7})
	require.NoError(t, s.Swap(0, 1))

	require.Equal(t, [][]float64{{1, 0}, {0, 1}}, s.Matrix())
	require.Equal(t, []float64{7, 5}, s.Vector())
	require.Equal(t, []int{0, 1}, s.Leading())
	require.Equal(t, []string{"Row 1 <-> Row 2"}, opLines(s))

	op := s.Operations()[0]
	require.Equal(t, echelon.OpSwap, op.Op)
	require.Equal(t, 0, op.Row)
	require.Equal(t, 1, op.Source)
}

func TestSwap_SameRowIsNotLogged(t *testing.T) {
	s := MustSystem(t, [][]float64{{1}}, []float64{1})
	require.NoError(t, s.Swap(0, 0))
	require.Empty(t, s.Operations())
}

func TestSwap_OutOfRange(t *testing.T) {
	s := MustSystem(t, [][]float64{{1}, {2}}, []float64{1, 2})
	require.ErrorIs(t, s.Swap(0, 2), echelon.ErrOutOfRange)
	require.ErrorIs(t, s.Swap(-1, 0), echelon.ErrOutOfRange)
	require.Empty(t, s.Operations())
}

func TestEliminate(t *testing.T) {
	t.Parallel()

	s := MustSystem(t, [][]float64{{2, 3}, {10, 9}}, []float64{1, 11})
	require.NoError(t, s.Eliminate(0, 1, 0))

	require.Equal(t, [][]float64{{2, 3}, {0, -6}}, s.Matrix())
	require.Equal(t, []float64{1, 6}, s.Vector())
	require.Equal(t, []int{0, 1}, s.Leading())

	op := s.Operations()[0]
	require.Equal(t, echelon.OpEliminate, op.Op)
	require.Equal(t, 1, op.Row)
	require.Equal(t, 0, op.Source)
	require.Equal(t, 5.0, op.Multiplier)
	require.Equal(t, "Row 2 -> Row 2 - 5.000 * Row 1", op.String())
}

func TestEliminate_NegativeMultiplierRendersPlus(t *testing.T) {
	s := MustSystem(t, [][]float64{{2, 1}, {-1, 1}}, []float64{0, 0})
	require.NoError(t, s.Eliminate(0, 1, 0))
	require.Equal(t, []string{"Row 2 -> Row 2 + 0.500 * Row 1"}, opLines(s))
	require.Equal(t, [][]float64{{2, 1}, {0, 1.5}}, s.Matrix())
}

func TestEliminate_Errors(t *testing.T) {
	t.Parallel()

	s := MustSystem(t, [][]float64{{0, 1}, {1, 1}}, []float64{1, 2})
	require.ErrorIs(t, s.Eliminate(0, 1, 0), echelon.ErrZeroPivot)
	require.ErrorIs(t, s.Eliminate(0, 0, 1), echelon.ErrSameRow)
	require.ErrorIs(t, s.Eliminate(0, 2, 1), echelon.ErrOutOfRange)
	require.ErrorIs(t, s.Eliminate(0, 1, 2), echelon.ErrOutOfRange)
	require.Empty(t, s.Operations(), "failed operations must not be logged")
	require.Equal(t, [][]float64{{0, 1}, {1, 1}}, s.Matrix())
}

func TestScale(t *testing.T) {
	t.Parallel()

	s := MustSystem(t, [][]float64{{0, 4, 2}}, []float64{8})
	require.NoError(t, s.Scale(0, 1))

	require.Equal(t, [][]float64{{0, 1, 0.5}}, s.Matrix())
	require.Equal(t, []float64{2}, s.Vector())
	require.Equal(t, []string{"Row 1 -> Row 1 * 0.250"}, opLines(s))
}

func TestScale_PivotBecomesExactlyOne(t *testing.T) {
	s := MustSystem(t, [][]float64{{3, 1}}, []float64{1})
	require.NoError(t, s.Scale(0, 0))
	require.Equal(t, 1.0, s.Matrix()[0][0])
}

func TestScale_Errors(t *testing.T) {
	s := MustSystem(t, [][]float64{{0, 1}}, []float64{1})
	require.ErrorIs(t, s.Scale(0, 0), echelon.ErrZeroPivot)
	require.ErrorIs(t, s.Scale(1, 0), echelon.ErrOutOfRange)
	require.ErrorIs(t, s.Scale(0, -1), echelon.ErrOutOfRange)
	require.Empty(t, s.Operations())
}

// TestRowOpsPreserveSolutionSet applies each operation by hand and checks that
// the known solution of the original system still satisfies the current one.
func TestRowOpsPreserveSolutionSet(t *testing.T) {
	t.Parallel()

	a := [][]float64{{1, 3, 2}, {4, 0, 1}, {2, 1, 1}}
	x := []float64{-1, 3, 4}
	b := []float64{16, 0, 5} // a·x
	s := MustSystem(t, a, b)

	steps := []func() error{
		func() error { return s.Swap(0, 2) },
		func() error { return s.Eliminate(0, 1, 0) },
		func() error { return s.Eliminate(0, 2, 0) },
		func() error { return s.Scale(1, 1) },
		func() error { return s.Eliminate(1, 2, 1) },
		func() error { return s.Scale(2, 2) },
		func() error { return s.Swap(1, 2) },
	}
	for i, step := range steps {
		require.NoErrorf(t, step(), "step %d", i)
		requireSolves(t, s.Matrix(), s.Vector(), x)
	}
	require.Len(t, s.Operations(), len(steps))
}
