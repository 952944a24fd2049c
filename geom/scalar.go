// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package geom

import "github.com/wavegeom/expr/internal/tree"

// Scalar is a one-dimensional leaf value.
type Scalar float64

// Dim implements mat.Space.
func (Scalar) Dim() int { return 1 }

// NewScalar builds a Scalar leaf with the given value.
func NewScalar(v float64) tree.Leaf[Scalar] {
	return tree.NewLeaf(Scalar(v))
}
