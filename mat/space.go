// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package mat

// Space is implemented by every value type that can appear as a node's value
// in an expression tree: leaves, and the results of unary/binary operators.
// Dim reports the dimension of the (tangent) vector space the Jacobian
// evaluator differentiates into or out of — 3 for a Vec3, 1 for a Scalar, 3
// for an SO3 tangent.
//
// A Jacobian's shape is always Dim(node's value) x Dim(target), computed at
// runtime from two Space values rather than resolved at compile time, since
// Go generics have no mechanism for type-level arithmetic.
type Space interface {
	Dim() int
}
