// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the Dense tests.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/neuralnet/matrix"
)

// Shape of the reference fixture.
const (
	fixtureRows = 4
	fixtureCols = 6
)

// Cells of the reference fixture checked by name in several tests.
const (
	element11 = 74
	element13 = 13
	element21 = 66
	element25 = 13
	element34 = 17
)

// fixtureRowsData returns a fresh copy of the 4×6 reference buffer.
// Row 0 is 1..6 on purpose; tests index it by column.
func fixtureRowsData() [][]float64 {
	return [][]float64{
		{1, 2, 3, 4, 5, 6},
		{2, element11, 4, element13, 8, 35},
		{3, element21, 75, 32, 35, element25},
		{4, 79, 51, 12, element34, 1},
	}
}

// sarrusRows is the 3×3 sample whose diagonal product-sum is 278.
func sarrusRows() [][]float64 {
	return [][]float64{
		{5, 10, 2},
		{6, 8, 1},
		{5, 44, 0},
	}
}

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(tb testing.TB, r, c int, opts ...matrix.Option) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c, opts...)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows BUILDS a *Dense from a 2-D buffer or fails the test.
func MustFromRows(tb testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFromRows(rows, opts...)
	if err != nil {
		tb.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// Fixture returns the 4×6 reference matrix.
func Fixture(tb testing.TB) *matrix.Dense {
	tb.Helper()

	return MustFromRows(tb, fixtureRowsData())
}

// RandomFill WRITES deterministic pseudo-random values in [-1, 1) into m.
func RandomFill(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	err := m.Map(func(_, _ int, _ float64) float64 {
		return rng.Float64()*2 - 1
	})
	if err != nil {
		tb.Fatalf("RandomFill: %v", err)
	}
}

// mustAt reads (i,j) or fails the test.
func mustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	if err != nil {
		tb.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// fakeMatrix is a non-Dense Matrix used to force the At-based copy path.
type fakeMatrix struct {
	rows [][]float64
}

func (f *fakeMatrix) Rows() int { return len(f.rows) }

func (f *fakeMatrix) Cols() int {
	if len(f.rows) == 0 {
		return 0
	}

	return len(f.rows[0])
}

func (f *fakeMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= f.Rows() || j < 0 || j >= f.Cols() {
		return 0, matrix.ErrOutOfRange
	}

	return f.rows[i][j], nil
}

func (f *fakeMatrix) Set(i, j int, v float64) error {
	if i < 0 || i >= f.Rows() || j < 0 || j >= f.Cols() {
		return matrix.ErrOutOfRange
	}
	f.rows[i][j] = v

	return nil
}

func (f *fakeMatrix) Clone() matrix.Matrix {
	cp := make([][]float64, len(f.rows))
	for i := range f.rows {
		cp[i] = append([]float64(nil), f.rows[i]...)
	}

	return &fakeMatrix{rows: cp}
}
