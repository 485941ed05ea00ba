package echelon_test

import (
	"testing"

	"github.com/katalvlaran/echelon/echelon"
	"github.com/stretchr/testify/require"
)

// TestToTriangular_ReordersZeroLeadingRow: [[0,0,1],[2,1,1],[3,3,4]] needs
// swaps so that no zero leading coefficient precedes a non-zero one.
func TestToTriangular_ReordersZeroLeadingRow(t *testing.T) {
	t.Parallel()

	s := MustSystem(t, [][]float64{{0, 0, 1}, {2, 1, 1}, {3, 3, 4}}, []float64{0, 1, 10})
	got, err := s.ToTriangular()
	require.NoError(t, err)
	require.Same(t, s, got)

	require.Equal(t, []string{
		"Row 1 <-> Row 2",
		"Row 3 -> Row 3 - 1.500 * Row 1",
		"Row 2 <-> Row 3",
	}, opLines(s))
	require.Equal(t, [][]float64{{2, 1, 1}, {0, 1.5, 2.5}, {0, 0, 1}}, s.Matrix())
	require.Equal(t, []float64{1, 8.5, 0}, s.Vector())

	leading := s.Leading()
	for i := 1; i < len(leading); i++ {
		require.Greater(t, leading[i], leading[i-1])
	}
	require.True(t, s.IsTriangular())
}

// TestToTriangular_ZeroRowGoesLast covers the zero-row correction: after the
// first pass row 2 is all zero above a non-zero row 3.
func TestToTriangular_ZeroRowGoesLast(t *testing.T) {
	t.Parallel()

	s := MustSystem(t, [][]float64{{2, -1, 1}, {2, -1, 1}, {4, 1, 1}}, []float64{0, 0, 2})
	_, err := s.ToTriangular()
	require.NoError(t, err)

	require.Equal(t, []string{
		"Row 2 -> Row 2 - 1.000 * Row 1",
		"Row 3 -> Row 3 - 2.000 * Row 1",
		"Row 2 <-> Row 3",
	}, opLines(s))
	require.Equal(t, [][]float64{{2, -1, 1}, {0, 3, -1}, {0, 0, 0}}, s.Matrix())
	require.Equal(t, []int{0, 1, echelon.NoPivot}, s.Leading())
}

// TestToTriangular_ZeroRowInput: [[1,1],[0,0]] is already in form and must
// terminate without any row operation.
func TestToTriangular_ZeroRowInput(t *testing.T) {
	s := MustSystem(t, [][]float64{{1, 1}, {0, 0}}, []float64{2, 0})
	_, err := s.ToTriangular()
	require.NoError(t, err)
	require.Empty(t, s.Operations())
	require.Equal(t, []int{0, echelon.NoPivot}, s.Leading())
}

func TestToTriangular_ZeroRowOnTop(t *testing.T) {
	s := MustSystem(t, [][]float64{{0, 0}, {1, 2}}, []float64{0, 3})
	_, err := s.ToTriangular()
	require.NoError(t, err)
	require.Equal(t, []string{"Row 1 <-> Row 2"}, opLines(s))
	require.Equal(t, []float64{3, 0}, s.Vector())
}

func TestToTriangular_AllZero(t *testing.T) {
	s := MustSystem(t, [][]float64{{0, 0}, {0, 0}}, []float64{0, 0})
	_, err := s.ToTriangular()
	require.NoError(t, err)
	require.Empty(t, s.Operations())
}

// TestToTriangular_Inconsistent: [[1,2],[2,4]]·x = [1,3] has no solution.
func TestToTriangular_Inconsistent(t *testing.T) {
	t.Parallel()

	s := MustSystem(t, [][]float64{{1, 2}, {2, 4}}, []float64{1, 3})
	got, err := s.ToTriangular()
	require.ErrorIs(t, err, echelon.ErrInconsistent)
	require.ErrorIs(t, err, echelon.ErrSingular)
	require.Same(t, s, got, "state is still returned for inspection")

	require.Equal(t, []string{"Row 2 -> Row 2 - 2.000 * Row 1"}, opLines(s))
	require.Equal(t, [][]float64{{1, 2}, {0, 0}}, s.Matrix())
	require.Equal(t, []float64{1, 1}, s.Vector())
}

// TestToTriangular_Stable: once in form, a second call mutates nothing.
func TestToTriangular_Stable(t *testing.T) {
	s := MustSystem(t, [][]float64{{0, 0, 1}, {2, 1, 1}, {3, 3, 4}}, []float64{0, 1, 10})
	_, err := s.ToTriangular()
	require.NoError(t, err)
	ops, m, b := len(s.Operations()), s.Matrix(), s.Vector()

	_, err = s.ToTriangular()
	require.NoError(t, err)
	require.Len(t, s.Operations(), ops)
	require.Equal(t, m, s.Matrix())
	require.Equal(t, b, s.Vector())
}

func TestToTriangular_StageMarker(t *testing.T) {
	s := MustSystem(t, [][]float64{{2, 3}, {10, 9}}, []float64{1, 11})
	_, err := s.ToTriangular()
	require.NoError(t, err)

	log := s.Log()
	last := log[len(log)-1]
	require.Equal(t, echelon.OpStage, last.Op)
	require.Equal(t, "Now in triangular form.", last.String())
	require.Equal(t, "|     2,     3 |     1 |\n|     0,    -6 |     6 |", last.Snapshot)
}

// TestToTriangular_WideAndTall exercises non-square shapes.
func TestToTriangular_WideAndTall(t *testing.T) {
	t.Parallel()

	wide := MustSystem(t, [][]float64{{0, 2, 4, 2}, {1, 1, 1, 1}}, []float64{2, 3})
	_, err := wide.ToTriangular()
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, wide.Leading())

	tall := MustSystem(t, [][]float64{{1, 1}, {1, -1}, {2, 0}}, []float64{2, 0, 2})
	_, err = tall.ToTriangular()
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, echelon.NoPivot}, tall.Leading())
}
