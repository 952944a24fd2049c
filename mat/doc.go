// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package mat provides the small dense-matrix backend used to store and
// multiply Jacobians.
//
// # Overview
//
// This package contains:
//   - Dense: a row-major dense matrix over float64
//   - Space: the dimension contract leaf and node value types must satisfy
//     so the Jacobian evaluator can size identity and zero matrices
//   - Identity, Zero: the identity a leaf's Jacobian against itself
//     returns, and the zero matrix package expr materializes for an absent
//     root Jacobian
//
// # Basic Usage
//
//	a := mat.Identity(3)
//	b := mat.NewDense(3, 1, []float64{1, 0, 0})
//	c, err := a.Mul(b)
//
// Dense is intentionally small and allocation-naive: expression Jacobians in
// this library are tiny (3x3, 1x3, 3x1, ...), so there is no motivation for
// the buffer-pooling or copy-on-write machinery a large tensor backend needs.
package mat
