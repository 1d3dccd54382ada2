// Package matrix_test verifies the instance lock around ResizeAt, Clone and
// Determinant on a shared *Dense.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/neuralnet/matrix"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// TestConcurrentDeterminantAndClone runs guarded readers side by side.
// Every reader must observe the same memoized value.
func TestConcurrentDeterminantAndClone(t *testing.T) {
	m := MustFromRows(t, sarrusRows())
	const readers = 64

	var g errgroup.Group
	results := make([]float64, readers)
	for i := 0; i < readers; i++ {
		g.Go(func() error {
			if i%2 == 0 {
				results[i] = m.Determinant()
				return nil
			}
			results[i] = m.CloneDense().Determinant()
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i, v := range results {
		require.Equal(t, 278.0, v, "reader %d", i)
	}
}

// TestConcurrentResizeAndDeterminant mixes guarded writers and readers.
// Each resize keeps the shape square or not; every determinant result must be
// either a finite value for a square shape or NaN.
func TestConcurrentResizeAndDeterminant(t *testing.T) {
	m := MustFromRows(t, sarrusRows())
	const rounds = 50

	var g errgroup.Group
	for i := 0; i < rounds; i++ {
		g.Go(func() error {
			n := 2 + i%3
			return m.Resize(n, n+i%2)
		})
		g.Go(func() error {
			d := m.Determinant()
			if !math.IsNaN(d) && math.IsInf(d, 0) {
				return matrix.ErrNaNInf
			}
			return nil
		})
		g.Go(func() error {
			c := m.CloneDense()
			if len(c.RawData()) != c.Rows()*c.Cols() {
				return matrix.ErrBadShape
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	// The instance is still consistent after the storm.
	clone := m.CloneDense()
	require.Len(t, clone.RawData(), clone.Rows()*clone.Cols())
}

// TestIndependentInstancesParallel operates on distinct matrices with no
// coordination, including the unguarded element paths.
func TestIndependentInstancesParallel(t *testing.T) {
	const workers = 16

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			m, err := matrix.NewDense(3, 3)
			if err != nil {
				return err
			}
			for i := 0; i < 3; i++ {
				if err = m.Set(i, i, float64(w+1)); err != nil {
					return err
				}
			}
			if d := m.Determinant(); d != math.Pow(float64(w+1), 3) {
				return matrix.ErrInvalidArgument
			}
			return m.ResizeAt(4, 1, 4, 1)
		})
	}
	require.NoError(t, g.Wait())
}
