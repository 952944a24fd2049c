// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package expr

import (
	"github.com/wavegeom/expr/internal/jacobian"
	"github.com/wavegeom/expr/internal/tree"
	"github.com/wavegeom/expr/mat"
)

// Evaluate computes the value of e.
func Evaluate[V mat.Space](e tree.Expr[V]) V {
	return tree.Evaluate[V](e).Value()
}

// Jacobian computes the Jacobian of e with respect to target: a V.Dim() x
// T.Dim() matrix, materialized as zero if e does not depend on target. This
// is the only point at which an Absent Jacobian ever becomes an actual zero
// matrix — internally, the jacobian package keeps the two cases distinct for
// as long as it can, to let Binary nodes prune subtrees that provably cannot
// contain the target (see tree.Binary.buildJacobian).
func Jacobian[V, T mat.Space](e tree.Expr[V], target tree.Leaf[T]) *mat.Dense {
	ve := tree.Evaluate[V](e)
	t := jacobian.NewTarget(target.Storage())
	je := tree.BuildJacobian[V](e, ve, t)
	if m, ok := je.Jacobian().Get(); ok {
		return m
	}
	return mat.Zero(ve.Value().Dim(), t.Dim())
}

// WRTTarget is a type-erased Jacobian target, built only through Wrt. It
// exists so ValueAndJacobians can accept a heterogeneously-typed list of
// targets — Go generics have no analog of C++ variadic template packs, so
// a slice of WRTTarget, each closing over its own leaf type at the Wrt call
// site, is how this package accepts several independently-typed targets in
// one call. The runtime dispatch this costs is an accepted tradeoff for the
// flexibility of mixing, say, a Vec3 target and a Scalar target in one
// ValueAndJacobians call.
type WRTTarget interface {
	resolve() jacobian.Target
}

type wrtTarget[T mat.Space] struct {
	leaf tree.Leaf[T]
}

// Wrt builds a WRTTarget identifying leaf, for use with ValueAndJacobians.
func Wrt[T mat.Space](leaf tree.Leaf[T]) WRTTarget {
	return wrtTarget[T]{leaf: leaf}
}

func (w wrtTarget[T]) resolve() jacobian.Target {
	return jacobian.NewTarget(w.leaf.Storage())
}

// ValueAndJacobians computes e's value once and its Jacobian against each of
// targets, sharing the single value evaluator Evaluate would otherwise
// rebuild for every call to Jacobian. Callers who need several Jacobians
// from one expression should reach for this instead of calling Jacobian
// repeatedly, so the shared value evaluator's cached values are computed
// exactly once across every target.
func ValueAndJacobians[V mat.Space](e tree.Expr[V], targets ...WRTTarget) (V, []*mat.Dense) {
	ve := tree.Evaluate[V](e)
	jacs := make([]*mat.Dense, len(targets))
	for i, target := range targets {
		t := target.resolve()
		je := tree.BuildJacobian[V](e, ve, t)
		if m, ok := je.Jacobian().Get(); ok {
			jacs[i] = m
		} else {
			jacs[i] = mat.Zero(ve.Value().Dim(), t.Dim())
		}
	}
	return ve.Value(), jacs
}
