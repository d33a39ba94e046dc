// SPDX-License-Identifier: MIT

package littled

// Legendre computes the Legendre polynomials P_l(x) for l = lMin..lMax.
//
// Implementation:
//   - Stage 1: validate 0 ≤ lMin ≤ lMax and finite x.
//   - Stage 2: Bonnet recurrence l·P_l = (2l−1)·x·P_{l−1} − (l−1)·P_{l−2}
//     from P_0 = 1, P_1 = x, storing from lMin on.
//
// Errors:
//   - ErrNegativeDegree, ErrEmptyRange, ErrNaNInf.
//
// Complexity:
//   - Time O(lMax), Space O(lMax − lMin).
//
// Notes:
//   - x is not restricted to [−1, 1]; outside it the polynomials simply grow.
//   - LittleD(lMin, lMax, 0, 0, θ) equals Legendre(lMin, lMax, cos θ).
func Legendre(lMin, lMax int, x float64) ([]float64, error) {
	const tag = "Legendre"
	if err := validateRange(tag, lMin, lMax, 0); err != nil {
		return nil, err
	}
	if err := validateFinite(tag, x); err != nil {
		return nil, err
	}

	p := make([]float64, lMax-lMin+1)
	legendre(lMin, lMax, x, p)

	return p, nil
}

// legendre fills p with P_l(x), l = lMin..lMax.
func legendre(lMin, lMax int, x float64, p []float64) {
	p0, p1 := 0.0, 1.0 // P_{l-1}, P_l at l = 0
	for l := 0; l <= lMax; l++ {
		if l > 0 {
			fl := float64(l)
			p0, p1 = p1, ((2*fl-1)*x*p1-(fl-1)*p0)/fl
		}
		if l >= lMin {
			p[l-lMin] = p1
		}
	}
}
