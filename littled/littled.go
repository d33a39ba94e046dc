// SPDX-License-Identifier: MIT

package littled

import (
	"math"

	"github.com/katalvlaran/wigner/internal/numeric"
)

// MinDegree returns l0 = max(|m1|,|m2|), the lowest degree at which
// d^l_{m1,m2} is defined.
func MinDegree(m1, m2 int) int {
	return numeric.MinDegree(m1, m2)
}

// LittleD computes d^l_{m1,m2}(theta) for l = lMin..lMax.
//
// Implementation:
//   - Stage 1: validate 0 ≤ lMin ≤ lMax, lMin ≥ max(|m1|,|m2|), finite theta.
//   - Stage 2: m1 = m2 = 0 → Legendre recurrence in cos(theta).
//   - Stage 3: otherwise seed d^{l0} in closed form (see seed) and run the
//     upward three-term recurrence, storing values once l reaches lMin.
//
// Returns:
//   - []float64 of length lMax−lMin+1, d[i] = d^{lMin+i}_{m1,m2}(theta).
//
// Errors:
//   - ErrNegativeDegree, ErrEmptyRange, ErrBelowOrder, ErrNaNInf.
//
// Complexity:
//   - Time O(lMax − l0), Space O(lMax − lMin).
//
// Notes:
//   - Convention: d^l_{m1,m2}(θ) = ⟨l m1| exp(−iθJ_y) |l m2⟩, so that
//     d^1_{1,0}(θ) = −sin θ/√2 and d^l_{m1,m2} = (−1)^{m1−m2} d^l_{m2,m1}.
//   - The recurrence coefficients are written with the half-angle products
//     (1−1/(l∓m)) so that no large intermediate cancels near θ = 0 or π.
func LittleD(lMin, lMax, m1, m2 int, theta float64) ([]float64, error) {
	const tag = "LittleD"
	if err := validateRange(tag, lMin, lMax, MinDegree(m1, m2)); err != nil {
		return nil, err
	}
	if err := validateFinite(tag, theta); err != nil {
		return nil, err
	}

	d := make([]float64, lMax-lMin+1)
	if m1 == 0 && m2 == 0 {
		legendre(lMin, lMax, math.Cos(theta), d)

		return d, nil
	}
	recurse(lMin, lMax, m1, m2, theta, d)

	return d, nil
}

// recurse fills out with d^l_{m1,m2}(theta), l = lMin..lMax. The caller has
// checked lMin ≥ max(|m1|,|m2|) and len(out) = lMax−lMin+1.
func recurse(lMin, lMax, m1, m2 int, theta float64, out []float64) {
	s := math.Sin(0.5 * theta)
	c := math.Cos(0.5 * theta)
	x := c*c - s*s // cos(theta) from the half angles

	l0, d0 := seed(m1, m2, s, c)
	if l0 == lMin {
		out[0] = d0
	}

	var (
		fm1 = float64(m1)
		fm2 = float64(m2)
		mm  = fm1 * fm2
		d1  float64 // d^{l-1}
		d2  float64 // d^{l-2}
	)
	for l := l0 + 1; l <= lMax; l++ {
		fl := float64(l)
		u := (1 - 1/(fl-fm1)) * (1 - 1/(fl+fm1)) // ((l−1)²−m1²)/(l²−m1²)
		v := (1 - 1/(fl-fm2)) * (1 - 1/(fl+fm2)) // ((l−1)²−m2²)/(l²−m2²)

		d2, d1 = d1, d0
		d0 = (fl*x-mm/(fl-1))*math.Sqrt((1-u)*(1-v))*d1 - (1+1/(fl-1))*math.Sqrt(u*v)*d2

		if l >= lMin {
			out[l-lMin] = d0
		}
	}
}

// seed returns l0 = max(|m1|,|m2|) and the closed form
//
//	d^{l0}_{m1,m2} = (−1)^p · sqrt(C(a+b, a)) · sin(θ/2)^a · cos(θ/2)^b,
//
// where a+b = 2·l0 and (a, b, p) follow from which order attains l0.
// The magnitude is assembled in log space so that C(2·l0, a) never
// overflows; a vanishing half-angle raised to a positive power is an exact 0.
func seed(m1, m2 int, s, c float64) (l0 int, d0 float64) {
	var a, b, p int
	if numeric.Abs(m1) > numeric.Abs(m2) {
		if m1 > 0 {
			l0, a, b, p = m1, m1-m2, m1+m2, m1-m2
		} else {
			l0, a, b, p = -m1, m2-m1, -m1-m2, 0
		}
	} else {
		if m2 > 0 {
			l0, a, b, p = m2, m2-m1, m1+m2, 0
		} else {
			l0, a, b, p = -m2, m1-m2, -m1-m2, m1-m2
		}
	}

	if (a > 0 && s == 0) || (b > 0 && c == 0) {
		return l0, 0
	}

	sign := numeric.Phase(p)
	lg := 0.5 * numeric.LogBinomial(a+b, a)
	if a > 0 {
		lg += float64(a) * math.Log(math.Abs(s))
		if s < 0 && a&1 == 1 {
			sign = -sign
		}
	}
	if b > 0 {
		lg += float64(b) * math.Log(math.Abs(c))
		if c < 0 && b&1 == 1 {
			sign = -sign
		}
	}

	return l0, sign * math.Exp(lg)
}
