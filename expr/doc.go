// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package expr is the outermost driver: it builds the value and Jacobian
// evaluators package tree defines, and is the only package that ever
// materializes an Absent Jacobian into an actual zero matrix.
//
// # Overview
//
// This package contains:
//   - Evaluate: compute an expression's value
//   - Jacobian: compute one Jacobian, with respect to one leaf target
//   - Wrt: build a WRTTarget for use with ValueAndJacobians
//   - ValueAndJacobians: compute a value and several Jacobians in one pass,
//     sharing a single value evaluator
//
// # Basic Usage
//
//	import (
//	    "github.com/wavegeom/expr/expr"
//	    "github.com/wavegeom/expr/geom"
//	)
//
//	func main() {
//	    a := geom.NewVec3(1, 2, 3)
//	    s := geom.NewScalar(2)
//	    scaled := geom.Scale(s, a)
//
//	    value := expr.Evaluate[geom.Vec3](scaled)
//	    dScaledDa := expr.Jacobian(scaled, a)
//
//	    value2, jacs := expr.ValueAndJacobians(scaled, expr.Wrt(a), expr.Wrt(s))
//	    _ = value2
//	    _ = jacs // [dScaled/da, dScaled/ds]
//	}
package expr
