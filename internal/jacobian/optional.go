// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package jacobian

// Optional is the Jacobian evaluator's one application-level signal: either
// a present matrix, or the distinguished absence meaning the true Jacobian
// is the zero matrix at this node. Absence is never represented internally
// as a zeroed matrix, only as the distinct present=false tag; only the
// outermost driver (package expr) ever materializes a zero matrix from it.
type Optional[M any] struct {
	value   M
	present bool
}

// Present wraps a computed value as present.
func Present[M any](value M) Optional[M] {
	return Optional[M]{value: value, present: true}
}

// Absent returns the distinguished "Jacobian is zero here" marker.
func Absent[M any]() Optional[M] {
	return Optional[M]{}
}

// Get returns the wrapped value and whether it was present.
func (o Optional[M]) Get() (M, bool) {
	return o.value, o.present
}

// IsPresent reports whether the Optional holds a value.
func (o Optional[M]) IsPresent() bool {
	return o.present
}
