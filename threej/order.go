// SPDX-License-Identifier: MIT

package threej

import (
	"math"

	"github.com/katalvlaran/wigner/internal/numeric"
)

// Order computes the 3j-symbol (l1 l2 l3; m1 m2 −m1−m2) for m2 = m2Min..m2Max
// with the degrees and m1 held fixed; m3 = −m1−m2 co-varies.
//
// Implementation:
//   - Stage 1: validate m2Min ≤ m2Max, non-negative degrees and |m1| ≤ l1.
//   - Stage 2: a violated triangle yields all zeros (selection rule).
//   - Stage 3: a range that misses [max(−l2, −l3−m1), min(l2, l3−m1)]
//     entirely is rejected; otherwise sweep the whole allowed span (OrderAll)
//     and copy the overlap.
//
// Returns:
//   - []float64 of length m2Max−m2Min+1, out[i] = (l1 l2 l3; m1 m2Min+i −m1−m2Min−i).
//     Orders of a partially overlapping range with |m2| > l2 or |m3| > l3
//     hold exactly 0.
//
// Errors:
//   - ErrNegativeDegree, ErrEmptyRange, ErrOrderExceedsDegree.
//   - ErrNoAllowedValues when no order of the range lies in the span.
//
// Complexity:
//   - Time O(min(l2, l3−m1) − max(−l2, −l3−m1)), Space O(m2Max − m2Min) plus the span.
func Order(l1, l2, l3, m1, m2Min, m2Max int) ([]float64, error) {
	return order("Order", 2*l1, 2*l2, 2*l3, 2*m1, 2*m2Min, 2*m2Max)
}

// Order2 is Order for doubled arguments, twoX = 2·x, so that degrees and
// orders may be half-integers. out[i] holds m2 = (twoM2Min + 2i)/2.
//
// Errors:
//   - everything Order returns.
//   - ErrParity when l1 − m1, l2 − m2 or l1+l2+l3 is not an integer, or
//     when twoM2Max − twoM2Min is odd.
func Order2(twoL1, twoL2, twoL3, twoM1, twoM2Min, twoM2Max int) ([]float64, error) {
	return order("Order2", twoL1, twoL2, twoL3, twoM1, twoM2Min, twoM2Max)
}

func order(tag string, t1, t2, t3, tm1, tm2Min, tm2Max int) ([]float64, error) {
	if err := validateRange(tag, "m2", tm2Min, tm2Max, false); err != nil {
		return nil, err
	}
	if err := validatePairs(tag, [2]int{t1, tm1}); err != nil {
		return nil, err
	}
	if err := validateDegrees(tag, t2, t3); err != nil {
		return nil, err
	}
	if err := validateParity(tag, t1, t2, t3, tm2Min); err != nil {
		return nil, err
	}

	out := make([]float64, (tm2Max-tm2Min)/2+1)
	if !numeric.Triangle2(t1, t2, t3) {
		return out, nil
	}
	lo, hi := orderSpan(t2, t3, tm1)
	if tm2Max < lo || tm2Min > hi {
		return nil, validatorErrorf(tag, ErrNoAllowedValues, "m2 in [%s, %s], allowed [%s, %s]",
			half(tm2Min), half(tm2Max), half(lo), half(hi))
	}

	all := make([]float64, (hi-lo)/2+1)
	orderSweep(lo, hi, t1, t2, t3, tm1, all)
	for m := max(tm2Min, lo); m <= min(tm2Max, hi); m += 2 {
		out[(m-tm2Min)/2] = all[(m-lo)/2]
	}

	return out, nil
}

// validateParity checks that l1+l2+l3 and l2 − m2 are integers.
func validateParity(tag string, t1, t2, t3, tm2 int) error {
	if (t1+t2+t3)&1 != 0 {
		return validatorErrorf(tag, ErrParity, "l1+l2+l3 = %s", half(t1+t2+t3))
	}
	if (t2-tm2)&1 != 0 {
		return validatorErrorf(tag, ErrParity, "l2=%s m2=%s", half(t2), half(tm2))
	}

	return nil
}

// OrderAll computes (l1 l2 l3; m1 m2 −m1−m2) for every allowed m2 and
// returns the span [m2Min, m2Max] with the values.
//
// Errors:
//   - ErrNegativeDegree, ErrOrderExceedsDegree for invalid fixed arguments.
//   - ErrNoAllowedValues when l1, l2, l3 violate the triangle rule.
func OrderAll(l1, l2, l3, m1 int) (m2Min, m2Max int, values []float64, err error) {
	lo, hi, values, err := orderAll("OrderAll", 2*l1, 2*l2, 2*l3, 2*m1)

	return lo / 2, hi / 2, values, err
}

// OrderAll2 is OrderAll for doubled arguments; the span is returned doubled
// as well.
//
// Errors:
//   - everything OrderAll returns, and ErrParity.
func OrderAll2(twoL1, twoL2, twoL3, twoM1 int) (twoM2Min, twoM2Max int, values []float64, err error) {
	return orderAll("OrderAll2", twoL1, twoL2, twoL3, twoM1)
}

func orderAll(tag string, t1, t2, t3, tm1 int) (lo, hi int, values []float64, err error) {
	if err = validatePairs(tag, [2]int{t1, tm1}); err != nil {
		return 0, 0, nil, err
	}
	if err = validateDegrees(tag, t2, t3); err != nil {
		return 0, 0, nil, err
	}
	if (t1+t2+t3)&1 != 0 {
		return 0, 0, nil, validatorErrorf(tag, ErrParity, "l1+l2+l3 = %s", half(t1+t2+t3))
	}
	if !numeric.Triangle2(t1, t2, t3) {
		return 0, 0, nil, validatorErrorf(tag, ErrNoAllowedValues, "l1=%s l2=%s l3=%s", half(t1), half(t2), half(t3))
	}
	lo, hi = orderSpan(t2, t3, tm1)
	values = make([]float64, (hi-lo)/2+1)
	orderSweep(lo, hi, t1, t2, t3, tm1, values)

	return lo, hi, values, nil
}

// orderSpan returns the doubled allowed m2 range for fixed l2, l3 and m1.
func orderSpan(t2, t3, tm1 int) (lo, hi int) {
	return max(-t2, -t3-tm1), min(t2, t3-tm1)
}

// orderSweep fills f with (l1 l2 l3; m1 m2 −m1−m2) for m2 = m2Min..m2Max
// (all arguments doubled), using the recurrence
//
//	F(m+1)·f(m+1) + D(m+1)·f(m) + F(m)·f(m−1) = 0,
//	F(m) = sqrt((l2−m+1)(l2+m)(l3+m3+1)(l3−m3)),         m3 = −m1−m,
//	D(m) = (l1+l2+l3+1)(l2+l3−l1) − (l2−m+1)(l3+m3+1) − (l2+m−1)(l3−m3−1),
//
// normalised by (2l1+1)·Σf² = 1 with sign f(m2Max) = (−1)^(l2−l3−m1).
func orderSweep(tm2Min, tm2Max, t1, t2, t3, tm1 int, f []float64) {
	n := (tm2Max-tm2Min)/2 + 1
	phase := numeric.Phase((t2 - t3 - tm1) / 2)
	if n == 1 {
		f[0] = phase / math.Sqrt(float64((t1+t2+t3)/2+1))

		return
	}

	var (
		fl1, fl2, fl3 = 0.5 * float64(t1), 0.5 * float64(t2), 0.5 * float64(t3)
		fm1           = 0.5 * float64(tm1)
		diag          = (fl1 + fl2 + fl3 + 1) * (fl2 + fl3 - fl1)
	)
	bigF := func(m float64) float64 {
		m3 := -fm1 - m

		return math.Sqrt((fl2 - m + 1) * (fl2 + m) * (fl3 + m3 + 1) * (fl3 - m3))
	}
	bigD := func(m float64) float64 {
		m3 := -fm1 - m

		return diag - (fl2-m+1)*(fl3+m3+1) - (fl2+m-1)*(fl3-m3-1)
	}

	recurrence{
		n: n,
		coef: func(c int) (up, mid, down float64) {
			m := 0.5 * float64(tm2Min+2*c)

			return bigF(m + 1), bigD(m + 1), bigF(m)
		},
		weight:   func(int) float64 { return 1 },
		scale:    float64(t1 + 1),
		lastSign: phase,
	}.solve(f)
}
