// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package jacobian implements the Jacobian evaluator: a parallel tree, built
// once per (expression, target) pair over an already-computed value
// evaluator, that returns the Jacobian of a node's value with respect to a
// chosen target leaf in forward mode.
//
// The evaluator is a closed family of seven shapes (self, independent leaf,
// unary, binary-both, binary-left-only, binary-right-only, binary-neither).
// Each shape is resolved once, at construction, by the tree package (which
// alone has access to the static generic type parameters needed to tell them
// apart); this package supplies the shapes themselves as a tagged sum, since
// Go generics have no mechanism for specializing a method by a type-level
// predicate.
package jacobian

import "github.com/wavegeom/expr/mat"

// Evaluator exposes Jacobian() for a single, already-fixed (expression,
// target) pair. It never depends on the expression's or target's Go type —
// a Jacobian is always a dynamically-shaped *mat.Dense — so, unlike the
// value evaluator's Node[V], Evaluator is not itself generic.
type Evaluator interface {
	// Jacobian returns the Jacobian matrix, or Absent if it is exactly zero.
	// Pure: depends only on cached values and the target, fixed at
	// construction. There is no memoization here — each call recomputes by
	// recursion; a caller needing the result more than once should store it.
	Jacobian() Optional[*mat.Dense]
}

// NewSelf is the shape-1 constructor: E is a leaf (or scalar) whose
// static type matches the target's. dx/dx is always the identity matrix of
// the leaf's own dimension if isSame, else absent: two distinct leaves of
// the same type are independent variables.
func NewSelf(isSame bool, dim int) Evaluator {
	return selfEvaluator{isSame: isSame, dim: dim}
}

type selfEvaluator struct {
	isSame bool
	dim    int
}

func (e selfEvaluator) Jacobian() Optional[*mat.Dense] {
	if !e.isSame {
		return Absent[*mat.Dense]()
	}
	return Present(mat.Identity(e.dim))
}

// NewAbsent is the shape-2/shape-7 constructor: E is a leaf of a type
// different from the target's, or a binary node whose static contains
// predicate rules out both children. No child Jacobian evaluators are
// constructed in this shape: this is the static short-circuit that makes
// contains-based pruning worthwhile.
func NewAbsent() Evaluator {
	return absentEvaluator{}
}

type absentEvaluator struct{}

func (absentEvaluator) Jacobian() Optional[*mat.Dense] { return Absent[*mat.Dense]() }

// NewUnary is the shape-3 constructor: a unary operator node, recursed into
// unconditionally (unary nodes are never pruned — a unary node's single
// child always "might" contain the target). local is the operator's own
// local_jacobian, evaluated lazily against already-cached values each time
// Jacobian() is called, never memoized at this node.
func NewUnary(local func() *mat.Dense, child Evaluator) Evaluator {
	return unaryEvaluator{local: local, child: child}
}

type unaryEvaluator struct {
	local func() *mat.Dense
	child Evaluator
}

func (e unaryEvaluator) Jacobian() Optional[*mat.Dense] {
	childJac, ok := e.child.Jacobian().Get()
	if !ok {
		return Absent[*mat.Dense]()
	}
	return Present(e.local().MustMul(childJac))
}

// NewBinaryOneSide is the shape-5/shape-6 constructor: a binary node whose
// static contains predicate says only one side (left or right) might carry
// the target. Only that side's Jacobian evaluator is constructed; the other
// side is never recursed into, keeping the live evaluator tree proportional
// to the nodes that actually lie on a path to the target.
func NewBinaryOneSide(local func() *mat.Dense, child Evaluator) Evaluator {
	return unaryEvaluator{local: local, child: child}
}

// NewBinaryBoth is the shape-4 constructor: a binary node whose static
// contains predicate says both sides might carry the target. Both child
// Jacobian evaluators are constructed; the result sums whichever sides are
// dynamically present.
func NewBinaryBoth(leftLocal, rightLocal func() *mat.Dense, lhs, rhs Evaluator) Evaluator {
	return binaryBothEvaluator{leftLocal: leftLocal, rightLocal: rightLocal, lhs: lhs, rhs: rhs}
}

type binaryBothEvaluator struct {
	leftLocal, rightLocal func() *mat.Dense
	lhs, rhs              Evaluator
}

func (e binaryBothEvaluator) Jacobian() Optional[*mat.Dense] {
	lhsJac, lhsOK := e.lhs.Jacobian().Get()
	rhsJac, rhsOK := e.rhs.Jacobian().Get()
	switch {
	case lhsOK && rhsOK:
		return Present(e.leftLocal().MustMul(lhsJac).MustAdd(e.rightLocal().MustMul(rhsJac)))
	case lhsOK:
		return Present(e.leftLocal().MustMul(lhsJac))
	case rhsOK:
		return Present(e.rightLocal().MustMul(rhsJac))
	default:
		return Absent[*mat.Dense]()
	}
}
