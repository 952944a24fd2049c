// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package expr_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"github.com/wavegeom/expr/expr"
	"github.com/wavegeom/expr/geom"
	"github.com/wavegeom/expr/internal/tree"
	"github.com/wavegeom/expr/mat"
)

func approxEqual(t *testing.T, got, want *mat.Dense) {
	t.Helper()
	if diff := cmp.Diff(toRows(want), toRows(got), cmpopts.EquateApprox(0, 1e-6)); diff != "" {
		t.Errorf("matrix mismatch (-want +got):\n%s", diff)
	}
}

func toRows(d *mat.Dense) [][]float64 {
	out := make([][]float64, d.Rows())
	for i := range out {
		row := make([]float64, d.Cols())
		for j := range row {
			row[j] = d.At(i, j)
		}
		out[i] = row
	}
	return out
}

func TestSelfJacobianIsIdentity(t *testing.T) {
	a := geom.NewVec3(1, 2, 3)
	approxEqual(t, expr.Jacobian(tree.Expr[geom.Vec3](a), a), mat.Identity(3))
}

func TestIndependentLeavesHaveZeroJacobian(t *testing.T) {
	a := geom.NewVec3(1, 2, 3)
	b := geom.NewVec3(4, 5, 6)
	approxEqual(t, expr.Jacobian(tree.Expr[geom.Vec3](a), b), mat.Zero(3, 3))
}

func TestEvaluatePreservesValue(t *testing.T) {
	a := geom.NewVec3(1, 2, 3)
	s := geom.NewScalar(2)
	scaled := geom.Scale(s, a)
	value := expr.Evaluate[geom.Vec3](scaled)
	assert.Equal(t, geom.Vec3{X: 2, Y: 4, Z: 6}, value)
}

func TestJacobianIsLinearInTheExpression(t *testing.T) {
	a := geom.NewVec3(1, 2, 3)
	b := geom.NewVec3(4, 5, 6)
	sum := geom.PlusVec3(a, b)

	jSumA := expr.Jacobian(sum, a)
	jAAlone := expr.Jacobian(tree.Expr[geom.Vec3](a), a)
	approxEqual(t, jSumA, jAAlone)
}

func TestAbsentEqualsZeroByFiniteDifference(t *testing.T) {
	a := geom.NewVec3(1, 2, 3)
	b := geom.NewVec3(4, 5, 6)
	sum := geom.PlusVec3(a, a)

	analytic := expr.Jacobian(sum, b)
	approxEqual(t, analytic, mat.Zero(3, 3))

	const h = 1e-6
	base := expr.Evaluate[geom.Vec3](sum)
	numeric := mat.Zero(3, 3)
	for col := 0; col < 3; col++ {
		original := *b.Storage()
		perturbed := original
		switch col {
		case 0:
			perturbed.X += h
		case 1:
			perturbed.Y += h
		case 2:
			perturbed.Z += h
		}
		*b.Storage() = perturbed
		perturbedValue := expr.Evaluate[geom.Vec3](sum)
		*b.Storage() = original

		numeric.Set(0, col, (perturbedValue.X-base.X)/h)
		numeric.Set(1, col, (perturbedValue.Y-base.Y)/h)
		numeric.Set(2, col, (perturbedValue.Z-base.Z)/h)
	}
	approxEqual(t, numeric, mat.Zero(3, 3))
}

func TestValueAndJacobiansSharesValueEvaluator(t *testing.T) {
	calls := 0
	a := geom.NewVec3(1, 2, 3)
	s := geom.NewScalar(2)
	scaled := countingScale(&calls, s, a)

	value, jacs := expr.ValueAndJacobians[geom.Vec3](scaled, expr.Wrt(a), expr.Wrt(s))
	assert.Equal(t, geom.Vec3{X: 2, Y: 4, Z: 6}, value)
	assert.Len(t, jacs, 2)
	assert.Equal(t, 1, calls, "value_of must run exactly once across both Jacobian evaluators")
}

func TestValueAndJacobiansEmptyTargetsReturnsJustValue(t *testing.T) {
	a := geom.NewVec3(1, 2, 3)
	value, jacs := expr.ValueAndJacobians[geom.Vec3](tree.Expr[geom.Vec3](a))
	assert.Equal(t, geom.Vec3{X: 1, Y: 2, Z: 3}, value)
	assert.Empty(t, jacs)
}

func TestAbsentChildNeverEvaluatesItsLocalJacobian(t *testing.T) {
	// unrelated shares Vec3's static type with a and b, so the binary node's
	// type-level contains predicate cannot rule out either side (tree_test.go
	// covers the distinct-type pruning case); this test instead exercises
	// the dynamic short-circuit: once a child's own Jacobian evaluator
	// reports Absent, the parent must never call that child's local
	// Jacobian, even though it was willing to recurse into it.
	calls := 0
	a := geom.NewVec3(1, 2, 3)
	b := geom.NewVec3(4, 5, 6)
	unrelated := geom.NewVec3(7, 8, 9)

	countedB := countingNegate(&calls, b)
	sum := geom.PlusVec3(a, countedB)

	// calls counts only LocalJacobian invocations; ValueOf does not touch it.
	approxEqual(t, expr.Jacobian(sum, unrelated), mat.Zero(3, 3))
	assert.Equal(t, 0, calls, "a child reporting Absent must short-circuit before its local jacobian is ever called")
}

// countingScaleOp wraps geom's scale operator to count ValueOf invocations,
// for the cross-evaluator caching property test above.
type countingScaleOp struct {
	calls *int
}

func (o countingScaleOp) ValueOf(s geom.Scalar, a geom.Vec3) geom.Vec3 {
	*o.calls++
	return geom.Vec3{X: a.X * float64(s), Y: a.Y * float64(s), Z: a.Z * float64(s)}
}

func (o countingScaleOp) LeftLocalJacobian(_ geom.Vec3, _ geom.Scalar, a geom.Vec3) *mat.Dense {
	return mat.ColumnOf([]float64{a.X, a.Y, a.Z})
}

func (o countingScaleOp) RightLocalJacobian(_ geom.Vec3, s geom.Scalar, _ geom.Vec3) *mat.Dense {
	return mat.Identity(3).Scale(float64(s))
}

func countingScale(calls *int, s tree.Expr[geom.Scalar], a tree.Expr[geom.Vec3]) tree.Expr[geom.Vec3] {
	return tree.NewBinary[countingScaleOp, geom.Scalar, geom.Vec3, geom.Vec3](countingScaleOp{calls: calls}, s, a)
}

// countingNegateOp wraps geom's negate operator to count LocalJacobian
// invocations, for the absent-child short-circuit test above.
type countingNegateOp struct {
	calls *int
}

func (o countingNegateOp) ValueOf(c geom.Vec3) geom.Vec3 {
	return geom.Vec3{X: -c.X, Y: -c.Y, Z: -c.Z}
}

func (o countingNegateOp) LocalJacobian(_, _ geom.Vec3) *mat.Dense {
	*o.calls++
	return mat.Identity(3).Scale(-1)
}

func countingNegate(calls *int, child tree.Expr[geom.Vec3]) tree.Expr[geom.Vec3] {
	return tree.NewUnary[countingNegateOp, geom.Vec3, geom.Vec3](countingNegateOp{calls: calls}, child)
}
