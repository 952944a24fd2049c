// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package mat_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavegeom/expr/mat"
)

func approxEqual(t *testing.T, got, want *mat.Dense) {
	t.Helper()
	if got.Rows() != want.Rows() || got.Cols() != want.Cols() {
		t.Fatalf("shape mismatch: got %dx%d, want %dx%d", got.Rows(), got.Cols(), want.Rows(), want.Cols())
	}
	gotRows := denseRows(got)
	wantRows := denseRows(want)
	if !cmp.Equal(gotRows, wantRows, cmpopts.EquateApprox(0, 1e-9)) {
		t.Errorf("matrices differ (-want +got):\n%s", cmp.Diff(wantRows, gotRows))
	}
}

func denseRows(d *mat.Dense) [][]float64 {
	rows := make([][]float64, d.Rows())
	for i := range rows {
		row := make([]float64, d.Cols())
		for j := range row {
			row[j] = d.At(i, j)
		}
		rows[i] = row
	}
	return rows
}

func TestIdentity(t *testing.T) {
	i3 := mat.Identity(3)
	assert.Equal(t, 3, i3.Rows())
	assert.Equal(t, 3, i3.Cols())
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if r == c {
				assert.Equal(t, 1.0, i3.At(r, c))
			} else {
				assert.Equal(t, 0.0, i3.At(r, c))
			}
		}
	}
}

func TestMul(t *testing.T) {
	a := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := mat.NewDense(3, 2, []float64{7, 8, 9, 10, 11, 12})
	got, err := a.Mul(b)
	require.NoError(t, err)
	approxEqual(t, got, mat.NewDense(2, 2, []float64{58, 64, 139, 154}))
}

func TestMulShapeMismatch(t *testing.T) {
	a := mat.NewDense(2, 3, make([]float64, 6))
	b := mat.NewDense(2, 2, make([]float64, 4))
	_, err := a.Mul(b)
	require.Error(t, err)
	assert.ErrorIs(t, err, mat.ErrShapeMismatch)
}

func TestAddScaleTranspose(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	b := mat.NewDense(2, 2, []float64{10, 20, 30, 40})
	sum, err := a.Add(b)
	require.NoError(t, err)
	approxEqual(t, sum, mat.NewDense(2, 2, []float64{11, 22, 33, 44}))

	approxEqual(t, a.Scale(2), mat.NewDense(2, 2, []float64{2, 4, 6, 8}))
	approxEqual(t, a.Transpose(), mat.NewDense(2, 2, []float64{1, 3, 2, 4}))
}

func TestAtOutOfRangePanicsWithErrIndexRange(t *testing.T) {
	d := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok, "panic value must be an error")
		assert.ErrorIs(t, err, mat.ErrIndexRange)
	}()
	d.At(5, 0)
}

func TestColumnOfRowOf(t *testing.T) {
	col := mat.ColumnOf([]float64{1, 2, 3})
	approxEqual(t, col, mat.NewDense(3, 1, []float64{1, 2, 3}))

	row := mat.RowOf([]float32{1, 2, 3})
	approxEqual(t, row, mat.NewDense(1, 3, []float64{1, 2, 3}))
}
