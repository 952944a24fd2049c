// Package main provides a small demonstration CLI for the wavegeom/expr
// forward-mode Jacobian evaluator.
package main

import (
	"fmt"

	"github.com/wavegeom/expr/expr"
	"github.com/wavegeom/expr/geom"
)

func main() {
	s := geom.NewScalar(2)
	a := geom.NewVec3(1, 2, 3)
	b := geom.NewVec3(4, 5, 6)

	scaled := geom.Scale(s, a)
	result := geom.PlusVec3(scaled, b)

	value, jacs := expr.ValueAndJacobians[geom.Vec3](result, expr.Wrt(s), expr.Wrt(a), expr.Wrt(b))

	fmt.Println("wavegeom/expr demo: s*a + b")
	fmt.Printf("value:\n%s\n\n", geom3String(value))
	fmt.Printf("d(result)/ds:\n%s\n\n", jacs[0])
	fmt.Printf("d(result)/da:\n%s\n\n", jacs[1])
	fmt.Printf("d(result)/db:\n%s\n", jacs[2])
}

func geom3String(v geom.Vec3) string {
	return fmt.Sprintf("%g %g %g", v.X, v.Y, v.Z)
}
