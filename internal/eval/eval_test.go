// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wavegeom/expr/internal/eval"
)

func TestLeafNode(t *testing.T) {
	n := eval.NewLeaf(3.0)
	assert.Equal(t, 3.0, n.Value())
}

func TestUnaryNodeComputesOnce(t *testing.T) {
	calls := 0
	child := eval.NewLeaf(4.0)
	n := eval.NewUnary(child, func(c float64) float64 {
		calls++
		return c * 2
	})
	assert.Equal(t, 8.0, n.Value())
	assert.Equal(t, 8.0, n.Value())
	assert.Equal(t, 1, calls, "compute must run exactly once, at construction")
}

func TestBinaryNodeComputesOnce(t *testing.T) {
	calls := 0
	lhs := eval.NewLeaf(2.0)
	rhs := eval.NewLeaf(3.0)
	n := eval.NewBinary(lhs, rhs, func(l, r float64) float64 {
		calls++
		return l + r
	})
	assert.Equal(t, 5.0, n.Value())
	assert.Equal(t, 1, calls)
}

func TestUnaryNodeExposesChild(t *testing.T) {
	child := eval.NewLeaf(4.0)
	n := eval.NewUnary(child, func(c float64) float64 { return c * 2 })
	un, ok := n.(eval.UnaryNode[float64, float64])
	if !ok {
		t.Fatalf("expected concrete UnaryNode, got %T", n)
	}
	assert.Equal(t, 4.0, un.Child.Value())
}
