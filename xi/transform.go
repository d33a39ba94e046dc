// SPDX-License-Identifier: MIT

package xi

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wigner/littled"
)

// Transform computes ξ(θ) = Σ_l (2l+1)/(4π) · C_l · d^l_{m1,m2}(θ) for every
// angle in thetas, where cl[i] = C_{lMin+i}.
//
// Implementation:
//   - Stage 1: validate lMin ≥ 0, a non-empty cl, finite C_l and angles.
//   - Stage 2: clip the sum to l ≥ max(lMin, |m1|, |m2|); an empty clipped
//     range gives ξ = 0 everywhere.
//   - Stage 3: evaluate each angle with littled.LittleD on an errgroup
//     limited to the configured number of workers. The first failure or a
//     cancelled ctx stops the remaining angles.
//
// Returns:
//   - []float64 with len(thetas) entries, in the order of thetas.
//
// Errors:
//   - ErrNegativeDegree, ErrEmptyRange, ErrNaNInf, or ctx.Err().
//
// Complexity:
//   - Time O(len(thetas)·len(cl)/workers), Space O(workers·len(cl)).
func Transform(ctx context.Context, cl []float64, lMin, m1, m2 int, thetas []float64, opts ...Option) ([]float64, error) {
	const tag = "Transform"
	if lMin < 0 {
		return nil, fmt.Errorf("%s: %w (lMin=%d)", tag, ErrNegativeDegree, lMin)
	}
	if len(cl) == 0 {
		return nil, fmt.Errorf("%s: %w (no C_l)", tag, ErrEmptyRange)
	}
	if err := validateFinite(tag, "C_l", cl); err != nil {
		return nil, err
	}
	if err := validateFinite(tag, "theta", thetas); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	o := gatherOptions(opts...)
	lMax := lMin + len(cl) - 1
	l0 := max(lMin, littled.MinDegree(m1, m2))
	out := make([]float64, len(thetas))
	if l0 > lMax {
		return out, nil
	}
	weights := make([]float64, lMax-l0+1)
	for l := l0; l <= lMax; l++ {
		weights[l-l0] = float64(2*l+1) / (4 * math.Pi) * cl[l-lMin]
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, theta := range thetas {
		i, theta := i, theta
		if o.degrees {
			theta *= math.Pi / 180
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := littled.LittleD(l0, lMax, m1, m2, theta)
			if err != nil {
				return fmt.Errorf("%s: theta[%d]: %w", tag, i, err)
			}
			sum := 0.0
			for k, w := range weights {
				sum += w * d[k]
			}
			out[i] = sum

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Grid returns n evenly spaced angles from t0 to t1 inclusive, in whatever
// unit the caller uses.
//
// Errors:
//   - ErrInvalidGrid unless 0 ≤ t0 ≤ t1 and n ≥ 2.
//   - ErrNaNInf for non-finite bounds.
func Grid(t0, t1 float64, n int) ([]float64, error) {
	if err := validateFinite("Grid", "bound", []float64{t0, t1}); err != nil {
		return nil, err
	}
	if t0 < 0 || t1 < t0 || n < 2 {
		return nil, fmt.Errorf("Grid: %w (t0=%v t1=%v n=%d)", ErrInvalidGrid, t0, t1, n)
	}
	step := (t1 - t0) / float64(n-1)
	out := make([]float64, n)
	for i := range out {
		out[i] = t0 + step*float64(i)
	}
	out[n-1] = t1

	return out, nil
}

// validateFinite rejects NaN and ±Inf entries of xs.
func validateFinite(tag, name string, xs []float64) error {
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%s: %w (%s[%d]=%v)", tag, ErrNaNInf, name, i, x)
		}
	}

	return nil
}
