// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package mat

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Dense is a row-major dense matrix over float64.
type Dense struct {
	rows, cols int
	data       []float64
}

// NewDense builds a Dense from a row-major slice of values. Panics if len(data)
// does not equal rows*cols — a programmer error, not a runtime data error.
func NewDense(rows, cols int, data []float64) *Dense {
	if len(data) != rows*cols {
		panic(fmt.Sprintf("mat: NewDense(%d, %d): got %d values", rows, cols, len(data)))
	}
	cp := make([]float64, len(data))
	copy(cp, data)
	return &Dense{rows: rows, cols: cols, data: cp}
}

// Zero returns a rows x cols matrix of zeros.
func Zero(rows, cols int) *Dense {
	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// Identity returns the n x n identity matrix.
func Identity(n int) *Dense {
	d := Zero(n, n)
	for i := 0; i < n; i++ {
		d.Set(i, i, 1)
	}
	return d
}

// ColumnOf builds a single-column Dense matrix from a slice of any floating
// type, converting each element to float64.
func ColumnOf[S constraints.Float](values []S) *Dense {
	data := make([]float64, len(values))
	for i, v := range values {
		data[i] = float64(v)
	}
	return NewDense(len(values), 1, data)
}

// RowOf builds a single-row Dense matrix from a slice of any floating type.
func RowOf[S constraints.Float](values []S) *Dense {
	data := make([]float64, len(values))
	for i, v := range values {
		data[i] = float64(v)
	}
	return NewDense(1, len(values), data)
}

// Rows returns the number of rows.
func (d *Dense) Rows() int { return d.rows }

// Cols returns the number of columns.
func (d *Dense) Cols() int { return d.cols }

// At returns the value at (i, j). Panics if out of range.
func (d *Dense) At(i, j int) float64 {
	d.checkIndex(i, j)
	return d.data[i*d.cols+j]
}

// Set assigns the value at (i, j). Panics if out of range.
func (d *Dense) Set(i, j int, v float64) {
	d.checkIndex(i, j)
	d.data[i*d.cols+j] = v
}

func (d *Dense) checkIndex(i, j int) {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		panic(wrapIndex(i, j, d.rows, d.cols))
	}
}

// Mul returns the matrix product d*other. Returns a wrapped ErrShapeMismatch
// if the inner dimensions disagree.
func (d *Dense) Mul(other *Dense) (*Dense, error) {
	if d.cols != other.rows {
		return nil, wrapShape("Mul", d, other)
	}
	out := Zero(d.rows, other.cols)
	for i := 0; i < d.rows; i++ {
		for k := 0; k < d.cols; k++ {
			dik := d.At(i, k)
			if dik == 0 {
				continue
			}
			for j := 0; j < other.cols; j++ {
				out.data[i*out.cols+j] += dik * other.At(k, j)
			}
		}
	}
	return out, nil
}

// MustMul is Mul, panicking on shape mismatch. Used inside the Jacobian
// evaluator, where shapes are guaranteed consistent by each operator's own
// LocalJacobian contract rather than by anything the core core checks.
func (d *Dense) MustMul(other *Dense) *Dense {
	out, err := d.Mul(other)
	if err != nil {
		panic(err)
	}
	return out
}

// Add returns the elementwise sum of d and other. Returns a wrapped
// ErrShapeMismatch if the shapes disagree.
func (d *Dense) Add(other *Dense) (*Dense, error) {
	if d.rows != other.rows || d.cols != other.cols {
		return nil, wrapShape("Add", d, other)
	}
	out := Zero(d.rows, d.cols)
	for i := range d.data {
		out.data[i] = d.data[i] + other.data[i]
	}
	return out, nil
}

// MustAdd is Add, panicking on shape mismatch.
func (d *Dense) MustAdd(other *Dense) *Dense {
	out, err := d.Add(other)
	if err != nil {
		panic(err)
	}
	return out
}

// Scale returns d scaled by s.
func (d *Dense) Scale(s float64) *Dense {
	out := Zero(d.rows, d.cols)
	for i := range d.data {
		out.data[i] = d.data[i] * s
	}
	return out
}

// Transpose returns the transpose of d.
func (d *Dense) Transpose() *Dense {
	out := Zero(d.cols, d.rows)
	for i := 0; i < d.rows; i++ {
		for j := 0; j < d.cols; j++ {
			out.Set(j, i, d.At(i, j))
		}
	}
	return out
}

// Equal reports whether d and other have the same shape and exactly equal
// entries. Tests generally prefer an approximate comparison (see the mat_test
// helpers built on cmp/cmpopts) since floating-point Jacobians rarely compare
// exactly; Equal is for the rare case exact equality is expected (identity,
// zero).
func (d *Dense) Equal(other *Dense) bool {
	if d.rows != other.rows || d.cols != other.cols {
		return false
	}
	for i := range d.data {
		if d.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// String renders the matrix row by row, for debugging and CLI output.
func (d *Dense) String() string {
	var b strings.Builder
	for i := 0; i < d.rows; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j := 0; j < d.cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%g", d.At(i, j))
		}
	}
	return b.String()
}
