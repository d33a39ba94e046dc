// SPDX-License-Identifier: MIT

package threej

import (
	"math"

	"github.com/katalvlaran/wigner/internal/numeric"
)

// Degree computes the 3j-symbol (l1 l2 l3; m1 m2 m3) for l1 = l1Min..l1Max
// with l2, l3, m1, m2, m3 held fixed.
//
// Implementation:
//   - Stage 1: validate 0 ≤ l1Min ≤ l1Max and the fixed pairs (l2,m2), (l3,m3).
//   - Stage 2: m1+m2+m3 ≠ 0 yields all zeros (selection rule).
//   - Stage 3: a range that misses [max(|l2−l3|,|m1|), l2+l3] entirely is
//     rejected; otherwise sweep the whole allowed span and copy the overlap.
//
// Returns:
//   - []float64 of length l1Max−l1Min+1, out[i] = (l1Min+i l2 l3; m1 m2 m3).
//     Degrees of a partially overlapping range that violate the triangle
//     rule or |m1| ≤ l1 hold exactly 0.
//
// Errors:
//   - ErrNegativeDegree, ErrEmptyRange, ErrOrderExceedsDegree.
//   - ErrNoAllowedValues when no degree of the range lies in the span.
//
// Complexity:
//   - Time O(l2+l3 − |l2−l3|), Space O(l1Max − l1Min) plus the span.
//
// Notes:
//   - The whole allowed span is always computed because normalisation is
//     global; a narrow request does not make the sweep cheaper.
func Degree(l1Min, l1Max, l2, l3, m1, m2, m3 int) ([]float64, error) {
	return degree("Degree", 2*l1Min, 2*l1Max, 2*l2, 2*l3, 2*m1, 2*m2, 2*m3)
}

// Degree2 is Degree for doubled arguments, twoX = 2·x, so that degrees and
// orders may be half-integers. out[i] holds l1 = (twoL1Min + 2i)/2.
//
// Errors:
//   - everything Degree returns.
//   - ErrParity when l − m or l1+l2+l3 is not an integer, or when
//     twoL1Max − twoL1Min is odd.
func Degree2(twoL1Min, twoL1Max, twoL2, twoL3, twoM1, twoM2, twoM3 int) ([]float64, error) {
	return degree("Degree2", twoL1Min, twoL1Max, twoL2, twoL3, twoM1, twoM2, twoM3)
}

func degree(tag string, t1Min, t1Max, t2, t3, tm1, tm2, tm3 int) ([]float64, error) {
	if err := validateRange(tag, "l1", t1Min, t1Max, true); err != nil {
		return nil, err
	}
	if err := validatePairs(tag, [2]int{t2, tm2}, [2]int{t3, tm3}); err != nil {
		return nil, err
	}

	out := make([]float64, (t1Max-t1Min)/2+1)
	if tm1+tm2+tm3 != 0 {
		return out, nil
	}
	lo, hi := degreeSpan(t2, t3, tm1)
	if (t1Min-lo)&1 != 0 {
		return nil, validatorErrorf(tag, ErrParity, "l1Min=%s l2=%s l3=%s", half(t1Min), half(t2), half(t3))
	}
	if t1Max < lo || t1Min > hi {
		return nil, validatorErrorf(tag, ErrNoAllowedValues, "l1 in [%s, %s], allowed [%s, %s]",
			half(t1Min), half(t1Max), half(lo), half(hi))
	}

	all := make([]float64, (hi-lo)/2+1)
	degreeSweep(lo, hi, t2, t3, tm2, tm3, all)
	for t := max(t1Min, lo); t <= min(t1Max, hi); t += 2 {
		out[(t-t1Min)/2] = all[(t-lo)/2]
	}

	return out, nil
}

// DegreeAll computes (l1 l2 l3; −m2−m3 m2 m3) for every allowed l1 and
// returns the span [l1Min, l1Max] with the values.
//
// The span is l1Min = max(|l2−l3|, |m2+m3|), l1Max = l2+l3; it is never
// empty once the fixed pairs are valid.
//
// Errors:
//   - ErrNegativeDegree, ErrOrderExceedsDegree.
func DegreeAll(l2, l3, m2, m3 int) (l1Min, l1Max int, values []float64, err error) {
	t1Min, t1Max, values, err := degreeAll("DegreeAll", 2*l2, 2*l3, 2*m2, 2*m3)

	return t1Min / 2, t1Max / 2, values, err
}

// DegreeAll2 is DegreeAll for doubled arguments; the span is returned
// doubled as well.
//
// Errors:
//   - ErrNegativeDegree, ErrOrderExceedsDegree, ErrParity.
func DegreeAll2(twoL2, twoL3, twoM2, twoM3 int) (twoL1Min, twoL1Max int, values []float64, err error) {
	return degreeAll("DegreeAll2", twoL2, twoL3, twoM2, twoM3)
}

func degreeAll(tag string, t2, t3, tm2, tm3 int) (lo, hi int, values []float64, err error) {
	if err = validatePairs(tag, [2]int{t2, tm2}, [2]int{t3, tm3}); err != nil {
		return 0, 0, nil, err
	}
	lo, hi = degreeSpan(t2, t3, -tm2-tm3)
	values = make([]float64, (hi-lo)/2+1)
	degreeSweep(lo, hi, t2, t3, tm2, tm3, values)

	return lo, hi, values, nil
}

// degreeSpan returns the doubled allowed l1 range for fixed l2, l3 and m1.
func degreeSpan(t2, t3, tm1 int) (lo, hi int) {
	return max(numeric.Abs(t2-t3), numeric.Abs(tm1)), t2 + t3
}

// degreeSweep fills f with (l1 l2 l3; m1 m2 m3), m1 = −m2−m3, for
// l1 = l1Min..l1Max (all arguments doubled), using the recurrence
//
//	l·A(l+1)·f(l+1) + B(l)·f(l) + (l+1)·A(l)·f(l−1) = 0,
//	A(l) = sqrt((l² − (l2−l3)²)·((l2+l3+1)² − l²)·(l² − m1²)),
//	B(l) = (2l+1)·(m1·(l3(l3+1) − l2(l2+1)) + l(l+1)·(m3−m2)),
//
// normalised by Σ(2l1+1)·f² = 1 with sign f(l1Max) = (−1)^(l2−l3+m2+m3).
func degreeSweep(t1Min, t1Max, t2, t3, tm2, tm3 int, f []float64) {
	n := (t1Max-t1Min)/2 + 1
	phase := numeric.Phase((t2 - t3 + tm2 + tm3) / 2)
	if n == 1 {
		f[0] = phase / math.Sqrt(float64((t1Min+t2+t3)/2+1))

		return
	}

	var (
		fl2, fl3 = 0.5 * float64(t2), 0.5 * float64(t3)
		fm1      = -0.5 * float64(tm2+tm3)
		dl       = (fl2 - fl3) * (fl2 - fl3)
		sl       = (fl2 + fl3 + 1) * (fl2 + fl3 + 1)
		mdiff    = 0.5 * float64(tm3-tm2)
		mterm    = fm1 * (fl3*(fl3+1) - fl2*(fl2+1))
	)
	a := func(l float64) float64 {
		return math.Sqrt((l*l - dl) * (sl - l*l) * (l*l - fm1*fm1))
	}

	recurrence{
		n: n,
		coef: func(c int) (up, mid, down float64) {
			l := 0.5 * float64(t1Min+2*c)
			if l == 0 {
				// l1Min = 0 forces l2 = l3 and m1 = 0: the relation is 0 = 0
				// at l = 0, and f(1)/f(0) follows from dividing B(l) by l.
				return a(1), mdiff, 0
			}

			return l * a(l+1), (2*l + 1) * (mterm + l*(l+1)*mdiff), (l + 1) * a(l)
		},
		weight:   func(k int) float64 { return float64(t1Min + 2*k + 1) },
		scale:    1,
		lastSign: phase,
	}.solve(f)
}
