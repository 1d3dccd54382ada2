package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/neuralnet/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDeterminantOrderThree is the reference sample: 278.
func TestDeterminantOrderThree(t *testing.T) {
	m := MustFromRows(t, sarrusRows())
	require.Equal(t, 278.0, m.Determinant())
}

// TestDeterminantOneByOne returns the single cell.
func TestDeterminantOneByOne(t *testing.T) {
	m := MustFromRows(t, [][]float64{{-4.5}})
	require.Equal(t, -4.5, m.Determinant())
}

// TestDeterminantNonSquare reports NaN, not an error.
func TestDeterminantNonSquare(t *testing.T) {
	m := Fixture(t)
	require.True(t, math.IsNaN(m.Determinant()))

	_, cached := matrix.DeterminantCache_TestOnly(m)
	require.False(t, cached, "NaN is not memoized")
}

// TestDeterminantEmpty pins the 0×0 case to the empty product.
func TestDeterminantEmpty(t *testing.T) {
	require.Equal(t, 1.0, MustDense(t, 0, 0).Determinant())
}

// TestDeterminantOrderTwoCancels documents that forward and backward passes
// coincide for order 2, so the sum is always zero.
func TestDeterminantOrderTwoCancels(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, 0.0, m.Determinant())
}

// TestDeterminantOrderFourDiverges uses a pair-swap permutation matrix whose
// true determinant is +1; the diagonal sweep only sees one backward diagonal.
func TestDeterminantOrderFourDiverges(t *testing.T) {
	m := MustFromRows(t, [][]float64{
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	})
	require.Equal(t, -1.0, m.Determinant())
}

// TestDeterminantIdentity holds for every order ≥ 3 since only the forward
// main diagonal is non-zero.
func TestDeterminantIdentity(t *testing.T) {
	for n := 3; n <= 6; n++ {
		m := MustDense(t, n, n)
		for i := 0; i < n; i++ {
			require.NoError(t, m.Set(i, i, 1))
		}
		assert.Equal(t, 1.0, m.Determinant(), "n=%d", n)
	}
}

// TestDeterminantCache checks memoization and every invalidation path.
func TestDeterminantCache(t *testing.T) {
	m := MustFromRows(t, sarrusRows())

	first := m.Determinant()
	v, cached := matrix.DeterminantCache_TestOnly(m)
	require.True(t, cached)
	require.Equal(t, first, v)
	require.Equal(t, first, m.Determinant())

	// Set invalidates.
	require.NoError(t, m.Set(2, 2, 1))
	_, cached = matrix.DeterminantCache_TestOnly(m)
	require.False(t, cached)
	require.Equal(t, 258.0, m.Determinant()) // forward c=0 gains +40, backward c=1 gains -60

	// Apply invalidates.
	require.NoError(t, m.Apply(MustFromRows(t, sarrusRows())))
	_, cached = matrix.DeterminantCache_TestOnly(m)
	require.False(t, cached)
	require.Equal(t, 278.0, m.Determinant())

	// Map invalidates.
	require.NoError(t, m.Map(func(_, _ int, v float64) float64 { return v }))
	_, cached = matrix.DeterminantCache_TestOnly(m)
	require.False(t, cached)

	// Resize invalidates, even to the same shape.
	require.Equal(t, 278.0, m.Determinant())
	require.NoError(t, m.Resize(3, 3))
	_, cached = matrix.DeterminantCache_TestOnly(m)
	require.False(t, cached)
	require.Equal(t, 278.0, m.Determinant())
}

// TestCloneCarriesCache ensures the clone reports the source's cached value
// without a recomputation.
func TestCloneCarriesCache(t *testing.T) {
	m := MustFromRows(t, sarrusRows())
	require.Equal(t, 278.0, m.Determinant())

	clone := m.CloneDense()
	v, cached := matrix.DeterminantCache_TestOnly(clone)
	require.True(t, cached)
	require.Equal(t, 278.0, v)
	require.Equal(t, 278.0, clone.Determinant())

	// Mutating the clone leaves the source cache alone.
	require.NoError(t, clone.Set(0, 0, 0))
	v, cached = matrix.DeterminantCache_TestOnly(m)
	require.True(t, cached)
	require.Equal(t, 278.0, v)
}

// TestDiagonalTerms checks the trace of the reference sample.
func TestDiagonalTerms(t *testing.T) {
	m := MustFromRows(t, sarrusRows())

	terms, err := m.DiagonalTerms()
	require.NoError(t, err)
	require.Len(t, terms, 6)

	products := make([]float64, len(terms))
	sum := 0.0
	for i, term := range terms {
		products[i] = term.Product
		sum += term.Product
	}
	require.Equal(t, []float64{0, 50, 528, -220, 0, -80}, products)
	require.Equal(t, m.Determinant(), sum)

	require.Equal(t, -1, terms[3].Sign)
	require.Equal(t, []matrix.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 2}, {Row: 2, Col: 1}}, terms[3].Cells)
}

// TestDiagonalTermsNonSquare returns ErrNonSquare.
func TestDiagonalTermsNonSquare(t *testing.T) {
	_, err := Fixture(t).DiagonalTerms()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
}

// TestWrapColumn checks the single-step fold.
func TestWrapColumn(t *testing.T) {
	require.Equal(t, 0, matrix.WrapColumn_TestOnly(3, 3))
	require.Equal(t, 2, matrix.WrapColumn_TestOnly(-1, 3))
	require.Equal(t, 1, matrix.WrapColumn_TestOnly(1, 3))
	require.Equal(t, 0, matrix.WrapColumn_TestOnly(-4, 4))
}
