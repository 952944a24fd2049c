// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package eval implements the value evaluator: a parallel tree that mirrors
// the shape of an expression tree and caches each node's computed value
// exactly once, at construction. The tree package builds this tree
// bottom-up, one concrete Node per expression node; the jacobian package
// reads cached values back out of it without ever recomputing them.
package eval

// Node is a value-evaluator node: a cached value for one expression-tree
// node. Value is O(1) — the value was computed once, in the constructor that
// produced this Node, and is never recomputed.
type Node[V any] interface {
	Value() V
}

// leafNode caches a leaf's value, which needs no computation — the leaf's
// value is held directly by the expression.
type leafNode[L any] struct {
	v L
}

// NewLeaf wraps an already-known leaf value with no further computation.
func NewLeaf[L any](v L) Node[L] {
	return leafNode[L]{v: v}
}

func (n leafNode[L]) Value() L { return n.v }

// UnaryNode caches the value of a unary-operator node together with its
// child's own evaluator node. Keeping Child concretely typed (rather than
// type-erased) is what lets the jacobian package recover it later, via a
// type assertion on the exact UnaryNode[C, V] this node's own tree.Unary
// built, without recomputing anything.
type UnaryNode[C, V any] struct {
	v     V
	Child Node[C]
}

// NewUnary computes compute() once and pairs it with the already-built child
// evaluator node.
func NewUnary[C, V any](child Node[C], compute func(childValue C) V) Node[V] {
	return UnaryNode[C, V]{v: compute(child.Value()), Child: child}
}

func (n UnaryNode[C, V]) Value() V { return n.v }

// BinaryNode caches the value of a binary-operator node together with both
// children's evaluator nodes.
type BinaryNode[L, R, V any] struct {
	v   V
	Lhs Node[L]
	Rhs Node[R]
}

// NewBinary computes compute() once from both already-built child evaluator
// nodes.
func NewBinary[L, R, V any](lhs Node[L], rhs Node[R], compute func(lhsValue L, rhsValue R) V) Node[V] {
	return BinaryNode[L, R, V]{v: compute(lhs.Value(), rhs.Value()), Lhs: lhs, Rhs: rhs}
}

func (n BinaryNode[L, R, V]) Value() V { return n.v }
