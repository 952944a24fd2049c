// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package geom provides the leaf types and operators an expression tree is
// actually built from: Scalar, Vec3, and SO3, and the Plus/Scale/Norm/
// Compose/Inverse/Act family of operators over them.
//
// # Overview
//
// This package contains:
//   - Scalar, Vec3, SO3: the three leaf value types, each implementing
//     mat.Space
//   - Unary operators: Negate, Norm, SquaredNorm, Inverse
//   - Binary operators: PlusVec3, Scale, DivBy, Compose, Act
//   - Leaf constructors: NewScalar, NewVec3, NewSO3
//
// # Basic Usage
//
//	import (
//	    "github.com/wavegeom/expr/geom"
//	    "github.com/wavegeom/expr/expr"
//	)
//
//	func main() {
//	    a := geom.NewVec3(1, 2, 3)
//	    s := geom.NewScalar(2)
//
//	    scaled := geom.Scale(s, a)
//	    value := expr.Evaluate[geom.Vec3](scaled)
//
//	    dScaledDa := expr.Jacobian(scaled, a)
//	    dScaledDs := expr.Jacobian(scaled, s)
//	}
//
// # SO(3) convention
//
// SO3's tangent space is its right-perturbation Lie algebra, so(3): for a
// rotation R and a small twist φ, R∘Exp(φ) approximates a perturbed
// rotation, and every local Jacobian in so3.go is the derivative with
// respect to that right-perturbation, not with respect to the nine raw
// matrix entries.
package geom
