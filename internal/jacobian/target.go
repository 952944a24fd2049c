// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package jacobian

import (
	"reflect"

	"github.com/wavegeom/expr/mat"
)

// Target identifies, independent of its own concrete leaf type, the leaf a
// Jacobian is being computed against: a small polymorphic identity, resolved
// once and then consulted structurally (LeafType, for contains-based
// pruning) and by identity (SameAs, for Self dispatch).
type Target interface {
	// LeafType is the Go type of the leaf this target refers to.
	LeafType() reflect.Type
	// SameAs reports whether storage — the identity a leaf node carries,
	// i.e. its own *L storage pointer boxed as any — is the same storage
	// this target refers to. Comparison is by storage identity, never by
	// value equality: two numerically equal leaves built independently are
	// mathematically independent variables.
	SameAs(storage any) bool
	// Dim is the dimension of the target's own tangent space — the column
	// count of any Jacobian computed against this target.
	Dim() int
}

type leafTarget[T mat.Space] struct {
	storage *T
}

// NewTarget builds a Target identifying the leaf backed by storage.
func NewTarget[T mat.Space](storage *T) Target {
	return leafTarget[T]{storage: storage}
}

func (t leafTarget[T]) LeafType() reflect.Type {
	var zero T
	return reflect.TypeOf(zero)
}

func (t leafTarget[T]) SameAs(storage any) bool {
	other, ok := storage.(*T)
	return ok && other == t.storage
}

func (t leafTarget[T]) Dim() int {
	return (*t.storage).Dim()
}
