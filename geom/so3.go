// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package geom

import (
	"github.com/wavegeom/expr/internal/tree"
	"github.com/wavegeom/expr/mat"
)

// SO3 is a rotation in 3-space, stored as its 3x3 matrix. Its tangent space
// is the right-perturbation Lie algebra so(3), dimension 3 — see the package
// doc comment's "SO(3) convention" section.
type SO3 struct {
	r [3][3]float64
}

// Dim implements mat.Space. SO3's Jacobians are with respect to its
// 3-dimensional right-perturbation tangent space, never its 9 raw matrix
// entries.
func (SO3) Dim() int { return 3 }

// NewSO3 builds an SO3 leaf from a row-major 3x3 rotation matrix. The caller
// is responsible for passing an orthonormal, determinant-1 matrix; SO3 does
// not validate this.
func NewSO3(rows [3][3]float64) tree.Leaf[SO3] {
	return tree.NewLeaf(SO3{r: rows})
}

// IdentitySO3 returns the identity rotation leaf.
func IdentitySO3() tree.Leaf[SO3] {
	return NewSO3([3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
}

func (r SO3) mul(o SO3) SO3 {
	var out [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += r.r[i][k] * o.r[k][j]
			}
			out[i][j] = sum
		}
	}
	return SO3{r: out}
}

func (r SO3) transpose() SO3 {
	var out [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[j][i] = r.r[i][j]
		}
	}
	return SO3{r: out}
}

func (r SO3) apply(v Vec3) Vec3 {
	return Vec3{
		X: r.r[0][0]*v.X + r.r[0][1]*v.Y + r.r[0][2]*v.Z,
		Y: r.r[1][0]*v.X + r.r[1][1]*v.Y + r.r[1][2]*v.Z,
		Z: r.r[2][0]*v.X + r.r[2][1]*v.Y + r.r[2][2]*v.Z,
	}
}

func (r SO3) dense() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		r.r[0][0], r.r[0][1], r.r[0][2],
		r.r[1][0], r.r[1][1], r.r[1][2],
		r.r[2][0], r.r[2][1], r.r[2][2],
	})
}

// composeOp is the binary "R1 ∘ R2" operator: rotation composition.
//
// Under the right-perturbation convention, the local Jacobians of
// compose(R1, R2) are Ad(R2^-1) == R2^T with respect to R1's own
// perturbation, and the identity with respect to R2's.
type composeOp struct{}

func (composeOp) ValueOf(lhs, rhs SO3) SO3 { return lhs.mul(rhs) }

func (composeOp) LeftLocalJacobian(_, _, rhs SO3) *mat.Dense {
	return rhs.transpose().dense()
}

func (composeOp) RightLocalJacobian(_, _, _ SO3) *mat.Dense {
	return mat.Identity(3)
}

// Compose builds the composition lhs∘rhs of two SO3-valued expressions.
func Compose(lhs, rhs tree.Expr[SO3]) tree.Expr[SO3] {
	return tree.NewBinary[composeOp, SO3, SO3, SO3](composeOp{}, lhs, rhs)
}

// inverseOp is the unary "R^-1" operator.
//
// Under the right-perturbation convention, d(R^-1)/dR == -R.
type inverseOp struct{}

func (inverseOp) ValueOf(c SO3) SO3 { return c.transpose() }

func (inverseOp) LocalJacobian(_, childValue SO3) *mat.Dense {
	return childValue.dense().Scale(-1)
}

// Inverse builds the inverse of an SO3-valued expression.
func Inverse(child tree.Expr[SO3]) tree.Expr[SO3] {
	return tree.NewUnary[inverseOp, SO3, SO3](inverseOp{}, child)
}

// actOp is the binary "R.act(v)" operator: a rotation applied to a Vec3.
//
// d(R.act(v))/dR == -R[v]x (right-perturbation), d(R.act(v))/dv == R.
type actOp struct{}

func (actOp) ValueOf(r SO3, v Vec3) Vec3 { return r.apply(v) }

func (actOp) LeftLocalJacobian(_ Vec3, r SO3, v Vec3) *mat.Dense {
	return r.dense().MustMul(v.skew()).Scale(-1)
}

func (actOp) RightLocalJacobian(_ Vec3, r SO3, _ Vec3) *mat.Dense {
	return r.dense()
}

// Act builds the action of an SO3-valued expression r on a Vec3-valued
// expression v, i.e. the rotated vector r.act(v).
func Act(r tree.Expr[SO3], v tree.Expr[Vec3]) tree.Expr[Vec3] {
	return tree.NewBinary[actOp, SO3, Vec3, Vec3](actOp{}, r, v)
}
