// SPDX-License-Identifier: MIT

// Package xi turns an angular power spectrum C_l into the correlation
// function of a (spin-weighted) field on the sphere,
//
//	ξ(θ) = Σ_l (2l+1)/(4π) · C_l · d^l_{m1,m2}(θ),
//
// evaluated on a grid of angles with the little-d recursion of package
// littled.
//
// ✨ Key features:
//   - plain-text spectrum reader: "l C_l" per line, '#' comments
//   - linear interpolation of sparse spectra onto every integer degree
//   - independent angles fan out over a bounded errgroup, cancellable by ctx
//   - functional options with documented defaults (WithWorkers, WithDegrees)
//
// ⚙️ Usage:
//
//	sp, err := xi.ParseSpectrum(f)
//	cl, err := sp.Interpolate(2, 2000)
//	grid, err := xi.Grid(0, 10, 101)
//	out, err := xi.Transform(ctx, cl, 2, 2, -2, grid, xi.WithDegrees())
//	// out[i] == ξ_{2,-2}(grid[i] degrees)
//
// Degrees below max(|m1|,|m2|) carry no little-d function and contribute
// nothing to the sum; the spectrum may still start at lMin = 0.
//
// Performance:
//
//   - Time:   O(len(thetas) · len(cl)) split across the workers
//   - Memory: O(workers · len(cl)) scratch plus the output
package xi
