// SPDX-License-Identifier: MIT

package threej

import (
	"math"

	"github.com/katalvlaran/wigner/internal/numeric"
)

// racahMaxDegreeSum is the largest l1+l2+l3 evaluated with the Racah sum.
// Above it the alternating sum cancels badly and Symbol takes the value
// from a degree sweep instead.
const racahMaxDegreeSum = 60

// Symbol computes a single 3j-symbol (l1 l2 l3; m1 m2 m3).
//
// Returns exactly 0 when m1+m2+m3 ≠ 0, when the triangle rule fails, or
// when all orders vanish and l1+l2+l3 is odd.
//
// Errors:
//   - ErrNegativeDegree, ErrOrderExceedsDegree.
//
// Notes:
//   - Up to l1+l2+l3 = 60 the value comes from the Racah closed form with
//     log-factorials. Beyond that the alternating sum loses digits (around
//     l ≈ 300 only three significant digits survive), so the value is read
//     from the Schulten–Gordon degree sweep, at O(l2+l3) cost.
func Symbol(l1, l2, l3, m1, m2, m3 int) (float64, error) {
	return symbol("Symbol", 2*l1, 2*l2, 2*l3, 2*m1, 2*m2, 2*m3)
}

// Symbol2 is Symbol for doubled arguments, twoX = 2·x, so that degrees and
// orders may be half-integers.
//
// Errors:
//   - everything Symbol returns, and ErrParity when l − m or l1+l2+l3 is
//     not an integer.
func Symbol2(twoL1, twoL2, twoL3, twoM1, twoM2, twoM3 int) (float64, error) {
	return symbol("Symbol2", twoL1, twoL2, twoL3, twoM1, twoM2, twoM3)
}

func symbol(tag string, t1, t2, t3, tm1, tm2, tm3 int) (float64, error) {
	if err := validatePairs(tag, [2]int{t1, tm1}, [2]int{t2, tm2}, [2]int{t3, tm3}); err != nil {
		return 0, err
	}
	if (t1+t2+t3)&1 != 0 {
		return 0, validatorErrorf(tag, ErrParity, "l1+l2+l3 = %s", half(t1+t2+t3))
	}
	if tm1+tm2+tm3 != 0 || !numeric.Triangle2(t1, t2, t3) {
		return 0, nil
	}
	if tm1 == 0 && tm2 == 0 && ((t1+t2+t3)/2)&1 == 1 {
		return 0, nil
	}

	if (t1+t2+t3)/2 > racahMaxDegreeSum {
		lo, hi := degreeSpan(t2, t3, tm1)
		f := make([]float64, (hi-lo)/2+1)
		degreeSweep(lo, hi, t2, t3, tm2, tm3, f)

		return f[(t1-lo)/2], nil
	}

	return racah(t1, t2, t3, tm1, tm2, tm3), nil
}

// racah evaluates the Racah formula for doubled arguments that already
// satisfy every selection rule; each factorial argument is then an integer.
func racah(t1, t2, t3, tm1, tm2, tm3 int) float64 {
	lf := numeric.LogFactorial
	a := (t1 + t2 - t3) / 2
	lnDelta := lf(a) + lf((t1-t2+t3)/2) + lf((-t1+t2+t3)/2) - lf((t1+t2+t3)/2+1)
	lnPre := 0.5 * (lnDelta +
		lf((t1+tm1)/2) + lf((t1-tm1)/2) +
		lf((t2+tm2)/2) + lf((t2-tm2)/2) +
		lf((t3+tm3)/2) + lf((t3-tm3)/2))

	kMin := max(0, (t2-t3-tm1)/2, (t1-t3+tm2)/2)
	kMax := min(a, (t1-tm1)/2, (t2+tm2)/2)

	sum := 0.0
	for k := kMin; k <= kMax; k++ {
		den := lf(k) + lf((t3-t2+tm1)/2+k) + lf((t3-t1-tm2)/2+k) +
			lf(a-k) + lf((t1-tm1)/2-k) + lf((t2+tm2)/2-k)
		sum += numeric.Phase(k) * math.Exp(lnPre-den)
	}

	return numeric.Phase((t1-t2-tm3)/2) * sum
}
