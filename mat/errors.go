// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package mat

import (
	"fmt"

	"github.com/pkg/errors"
)

// Common errors.
var (
	ErrShapeMismatch = errors.New("matrix shape mismatch")
	ErrIndexRange    = errors.New("matrix index out of range")
)

// ShapeError reports a dimension mismatch between two matrices involved in
// an operation.
type ShapeError struct {
	Op      string
	ARows   int
	ACols   int
	BRows   int
	BCols   int
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: shapes %dx%d and %dx%d are incompatible", e.Op, e.ARows, e.ACols, e.BRows, e.BCols)
}

// Unwrap exposes ErrShapeMismatch for errors.Is.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

func wrapShape(op string, a, b *Dense) error {
	return errors.Wrapf(&ShapeError{Op: op, ARows: a.rows, ACols: a.cols, BRows: b.rows, BCols: b.cols}, "mat: %s", op)
}

// IndexError reports an out-of-range (row, col) access against a matrix of a
// given shape.
type IndexError struct {
	Row, Col   int
	Rows, Cols int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("index (%d, %d) out of range for %dx%d matrix", e.Row, e.Col, e.Rows, e.Cols)
}

// Unwrap exposes ErrIndexRange for errors.Is.
func (e *IndexError) Unwrap() error {
	return ErrIndexRange
}

func wrapIndex(i, j, rows, cols int) error {
	return errors.Wrapf(&IndexError{Row: i, Col: j, Rows: rows, Cols: cols}, "mat: index")
}
