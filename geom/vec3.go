// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"github.com/wavegeom/expr/internal/tree"
	"github.com/wavegeom/expr/mat"
)

// Vec3 is a three-dimensional Euclidean vector leaf value.
type Vec3 struct {
	X, Y, Z float64
}

// Dim implements mat.Space.
func (Vec3) Dim() int { return 3 }

// NewVec3 builds a Vec3 leaf with the given components.
func NewVec3(x, y, z float64) tree.Leaf[Vec3] {
	return tree.NewLeaf(Vec3{X: x, Y: y, Z: z})
}

func (v Vec3) add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vec3) dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) column() *mat.Dense {
	return mat.ColumnOf([]float64{v.X, v.Y, v.Z})
}

// skew returns the 3x3 skew-symmetric cross-product matrix [v]x, such that
// [v]x * w == v cross w for any w.
func (v Vec3) skew() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		0, -v.Z, v.Y,
		v.Z, 0, -v.X,
		-v.Y, v.X, 0,
	})
}

// plusVec3Op is the binary "a + b" operator over two Vec3 operands.
type plusVec3Op struct{}

func (plusVec3Op) ValueOf(lhs, rhs Vec3) Vec3 { return lhs.add(rhs) }

func (plusVec3Op) LeftLocalJacobian(_, _, _ Vec3) *mat.Dense  { return mat.Identity(3) }
func (plusVec3Op) RightLocalJacobian(_, _, _ Vec3) *mat.Dense { return mat.Identity(3) }

// PlusVec3 builds the sum of two Vec3-valued expressions.
func PlusVec3(lhs, rhs tree.Expr[Vec3]) tree.Expr[Vec3] {
	return tree.NewBinary[plusVec3Op, Vec3, Vec3, Vec3](plusVec3Op{}, lhs, rhs)
}

// negateOp is the unary "-a" operator over a Vec3 operand.
type negateOp struct{}

func (negateOp) ValueOf(c Vec3) Vec3 { return c.scale(-1) }

func (negateOp) LocalJacobian(_, _ Vec3) *mat.Dense { return mat.Identity(3).Scale(-1) }

// Negate builds the negation of a Vec3-valued expression.
func Negate(child tree.Expr[Vec3]) tree.Expr[Vec3] {
	return tree.NewUnary[negateOp, Vec3, Vec3](negateOp{}, child)
}

// scaleOp is the binary "s * a" operator: a Scalar times a Vec3.
type scaleOp struct{}

func (scaleOp) ValueOf(s Scalar, a Vec3) Vec3 { return a.scale(float64(s)) }

func (scaleOp) LeftLocalJacobian(_ Vec3, _ Scalar, a Vec3) *mat.Dense {
	return a.column()
}

func (scaleOp) RightLocalJacobian(_ Vec3, s Scalar, _ Vec3) *mat.Dense {
	return mat.Identity(3).Scale(float64(s))
}

// Scale builds the scalar multiple s*a of a Vec3-valued expression a.
func Scale(s tree.Expr[Scalar], a tree.Expr[Vec3]) tree.Expr[Vec3] {
	return tree.NewBinary[scaleOp, Scalar, Vec3, Vec3](scaleOp{}, s, a)
}

// divByOp is the binary "a / s" operator: a Vec3 divided by a Scalar.
type divByOp struct{}

func (divByOp) ValueOf(a Vec3, s Scalar) Vec3 { return a.scale(1 / float64(s)) }

func (divByOp) LeftLocalJacobian(_ Vec3, _ Vec3, s Scalar) *mat.Dense {
	return mat.Identity(3).Scale(1 / float64(s))
}

func (divByOp) RightLocalJacobian(_ Vec3, a Vec3, s Scalar) *mat.Dense {
	return a.column().Scale(-1 / (float64(s) * float64(s)))
}

// DivBy builds the quotient a/s of a Vec3-valued expression a by a
// Scalar-valued expression s.
func DivBy(a tree.Expr[Vec3], s tree.Expr[Scalar]) tree.Expr[Vec3] {
	return tree.NewBinary[divByOp, Vec3, Scalar, Vec3](divByOp{}, a, s)
}

// squaredNormOp is the unary "‖a‖²" operator.
type squaredNormOp struct{}

func (squaredNormOp) ValueOf(a Vec3) Scalar { return Scalar(a.dot(a)) }

func (squaredNormOp) LocalJacobian(_ Scalar, a Vec3) *mat.Dense {
	return mat.RowOf([]float64{2 * a.X, 2 * a.Y, 2 * a.Z})
}

// SquaredNorm builds the squared Euclidean norm of a Vec3-valued expression.
func SquaredNorm(a tree.Expr[Vec3]) tree.Expr[Scalar] {
	return tree.NewUnary[squaredNormOp, Vec3, Scalar](squaredNormOp{}, a)
}

// normOp is the unary "‖a‖" operator. Its local Jacobian is undefined at
// a == 0: differentiating through Norm at the origin gets whatever NaN/Inf
// float64 division produces, not a panic.
type normOp struct{}

func (normOp) ValueOf(a Vec3) Scalar { return Scalar(math.Sqrt(a.dot(a))) }

func (normOp) LocalJacobian(n Scalar, a Vec3) *mat.Dense {
	inv := 1 / float64(n)
	return mat.RowOf([]float64{a.X * inv, a.Y * inv, a.Z * inv})
}

// Norm builds the Euclidean norm of a Vec3-valued expression.
func Norm(a tree.Expr[Vec3]) tree.Expr[Scalar] {
	return tree.NewUnary[normOp, Vec3, Scalar](normOp{}, a)
}
