package xi_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/wigner/xi"
)

// ExampleTransform reads a two-sample spectrum, fills in l = 0..2 and
// evaluates ξ(θ) at 0°, 90° and 180°.
func ExampleTransform() {
	sp, err := xi.ParseSpectrum(strings.NewReader("# l C_l\n0 1\n2 1\n"))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	cl, _ := sp.Interpolate(0, 2)
	grid, _ := xi.Grid(0, 180, 3)

	out, err := xi.Transform(context.Background(), cl, 0, 0, 0, grid, xi.WithDegrees())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i, v := range out {
		fmt.Printf("θ=%.0f ξ=%.4f\n", grid[i], v)
	}
	// Output:
	// θ=0 ξ=0.7162
	// θ=90 ξ=-0.1194
	// θ=180 ξ=0.2387
}
