// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tree implements the expression tree: the Leaf, Unary, and Binary
// node shapes an expression is built from, and the two tree walkers built
// over them, value evaluation (package eval) and Jacobian evaluation
// (package jacobian).
//
// Go forbids a method from introducing type parameters beyond the ones
// bound by its receiver, so a single generic Expr type cannot dispatch on
// "whatever concrete type my child node turns out to be" the way C++
// template specialization would. Package tree resolves this with ordinary
// interface dispatch instead: every node type implements Expr by calling
// back into its own children through the Expr interface, and each node's
// buildJacobian type-asserts the *eval.Node* its own buildEval is statically
// guaranteed to have produced, recovering the concrete child types it needs
// without ever switching over an open set of instantiations.
package tree

import (
	"reflect"

	"github.com/wavegeom/expr/internal/eval"
	"github.com/wavegeom/expr/internal/jacobian"
	"github.com/wavegeom/expr/mat"
)

// Expr is an expression tree node whose value is a V. Contains reports
// whether a leaf of the given type might appear anywhere beneath this node:
// a conservative, purely type-level over-approximation, used only to prune
// Jacobian recursion into subtrees that provably cannot contain the target.
//
// buildEval and buildJacobian are unexported: they are invoked only through
// this package's own Evaluate and BuildJacobian entry points, never directly
// by callers, so that an Expr's value evaluator and Jacobian evaluator are
// always built in the matched pair this package's internal type assertions
// assume.
type Expr[V mat.Space] interface {
	Contains(leafType reflect.Type) bool
	buildEval() eval.Node[V]
	buildJacobian(ve eval.Node[V], target jacobian.Target) jacobian.Evaluator
}

// Evaluate builds the value evaluator for e and returns its root node.
func Evaluate[V mat.Space](e Expr[V]) eval.Node[V] {
	return e.buildEval()
}

// BuildJacobian builds the Jacobian evaluator for e against target, given
// the value evaluator Evaluate already built for the same e. Passing a
// value evaluator built for a different expression is a programmer error:
// the two trees are assumed to share shape node for node.
func BuildJacobian[V mat.Space](e Expr[V], ve eval.Node[V], target jacobian.Target) jacobian.Evaluator {
	return e.buildJacobian(ve, target)
}

// Leaf is an independent variable: a value stored by reference, so that two
// Leaf values built from the same storage are recognized as the same
// variable by pointer identity, not by structural equality — Go's plain
// value types carry no notion of object identity on their own.
//
// A subtlety worth documenting explicitly: nothing stops two distinct Leaf
// values from wrapping the *same* storage pointer (e.g. by copying a Leaf,
// or by using one Leaf value twice in an expression). When that
// happens, both occurrences are the same variable under SameAs, and if both
// appear in one expression — say, a Leaf summed with itself, or aliased
// through two branches of a Binary — their Jacobian contributions sum
// through the ordinary binary-both dispatch, exactly like any other sum
// rule. This is deliberate: summation is how forward mode accumulates
// multiple paths to the same target, and an aliased leaf is just another
// path.
type Leaf[L mat.Space] struct {
	storage *L
}

// NewLeaf allocates fresh, owned storage for value and returns a Leaf
// wrapping it.
func NewLeaf[L mat.Space](value L) Leaf[L] {
	v := value
	return Leaf[L]{storage: &v}
}

// Storage exposes the Leaf's backing pointer, for use as a Jacobian target
// (see package expr's Wrt). It is not meant for mutation.
func (l Leaf[L]) Storage() *L {
	return l.storage
}

func (l Leaf[L]) Contains(leafType reflect.Type) bool {
	var zero L
	return reflect.TypeOf(zero) == leafType
}

func (l Leaf[L]) buildEval() eval.Node[L] {
	return eval.NewLeaf(*l.storage)
}

func (l Leaf[L]) buildJacobian(ve eval.Node[L], target jacobian.Target) jacobian.Evaluator {
	var zero L
	if target.LeafType() != reflect.TypeOf(zero) {
		return jacobian.NewAbsent()
	}
	return jacobian.NewSelf(target.SameAs(l.storage), target.Dim())
}

// UnaryOp computes a node's value and local Jacobian from its single
// child's value. LocalJacobian is evaluated against already-computed
// values, never triggering further value computation of its own.
type UnaryOp[C, V mat.Space] interface {
	ValueOf(child C) V
	LocalJacobian(nodeValue V, childValue C) *mat.Dense
}

// Unary is a one-child operator node, parameterized by the operator Op that
// supplies its value_of and local_jacobian.
type Unary[O UnaryOp[C, V], C, V mat.Space] struct {
	Op    O
	Child Expr[C]
}

// NewUnary builds a Unary node for op applied to child.
func NewUnary[O UnaryOp[C, V], C, V mat.Space](op O, child Expr[C]) Unary[O, C, V] {
	return Unary[O, C, V]{Op: op, Child: child}
}

func (u Unary[O, C, V]) Contains(leafType reflect.Type) bool {
	return u.Child.Contains(leafType)
}

func (u Unary[O, C, V]) buildEval() eval.Node[V] {
	childEval := u.Child.buildEval()
	return eval.NewUnary(childEval, u.Op.ValueOf)
}

func (u Unary[O, C, V]) buildJacobian(ve eval.Node[V], target jacobian.Target) jacobian.Evaluator {
	un := ve.(eval.UnaryNode[C, V])
	childJac := u.Child.buildJacobian(un.Child, target)
	local := func() *mat.Dense {
		return u.Op.LocalJacobian(un.Value(), un.Child.Value())
	}
	return jacobian.NewUnary(local, childJac)
}

// BinaryOp computes a node's value and both local Jacobians from its two
// children's values.
type BinaryOp[L, R, V mat.Space] interface {
	ValueOf(lhs L, rhs R) V
	LeftLocalJacobian(nodeValue V, lhs L, rhs R) *mat.Dense
	RightLocalJacobian(nodeValue V, lhs L, rhs R) *mat.Dense
}

// Binary is a two-child operator node, parameterized by the operator Op
// that supplies its value_of and both local Jacobians.
type Binary[O BinaryOp[L, R, V], L, R, V mat.Space] struct {
	Op  O
	Lhs Expr[L]
	Rhs Expr[R]
}

// NewBinary builds a Binary node for op applied to lhs and rhs.
func NewBinary[O BinaryOp[L, R, V], L, R, V mat.Space](op O, lhs Expr[L], rhs Expr[R]) Binary[O, L, R, V] {
	return Binary[O, L, R, V]{Op: op, Lhs: lhs, Rhs: rhs}
}

func (b Binary[O, L, R, V]) Contains(leafType reflect.Type) bool {
	return b.Lhs.Contains(leafType) || b.Rhs.Contains(leafType)
}

func (b Binary[O, L, R, V]) buildEval() eval.Node[V] {
	lhsEval := b.Lhs.buildEval()
	rhsEval := b.Rhs.buildEval()
	return eval.NewBinary(lhsEval, rhsEval, b.Op.ValueOf)
}

func (b Binary[O, L, R, V]) buildJacobian(ve eval.Node[V], target jacobian.Target) jacobian.Evaluator {
	bn := ve.(eval.BinaryNode[L, R, V])
	leafType := target.LeafType()
	lhsMight := b.Lhs.Contains(leafType)
	rhsMight := b.Rhs.Contains(leafType)

	leftLocal := func() *mat.Dense { return b.Op.LeftLocalJacobian(bn.Value(), bn.Lhs.Value(), bn.Rhs.Value()) }
	rightLocal := func() *mat.Dense { return b.Op.RightLocalJacobian(bn.Value(), bn.Lhs.Value(), bn.Rhs.Value()) }

	switch {
	case lhsMight && rhsMight:
		lhsJac := b.Lhs.buildJacobian(bn.Lhs, target)
		rhsJac := b.Rhs.buildJacobian(bn.Rhs, target)
		return jacobian.NewBinaryBoth(leftLocal, rightLocal, lhsJac, rhsJac)
	case lhsMight:
		lhsJac := b.Lhs.buildJacobian(bn.Lhs, target)
		return jacobian.NewBinaryOneSide(leftLocal, lhsJac)
	case rhsMight:
		rhsJac := b.Rhs.buildJacobian(bn.Rhs, target)
		return jacobian.NewBinaryOneSide(rightLocal, rhsJac)
	default:
		// Neither child's static type set can contain the target: prune
		// without constructing either child's Jacobian evaluator at all.
		return jacobian.NewAbsent()
	}
}
