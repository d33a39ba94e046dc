// SPDX-License-Identifier: MIT

package numeric

// The predicates below take doubled quantum numbers, twoL = 2·l and
// twoM = 2·m, so that integer and half-integer angular momenta share one
// integer representation.

// ValidPair2 reports whether (l, m) is a structurally valid angular
// momentum pair: l ≥ 0, |m| ≤ l, and l − m an integer.
//
// Used by every 3j evaluator on its fixed pairs before it commits to a
// recurrence.
func ValidPair2(twoL, twoM int) bool {
	return twoL >= 0 && Abs(twoM) <= twoL && (twoL-twoM)&1 == 0
}

// Triangle2 reports whether l1, l2, l3 satisfy |l1−l2| ≤ l3 ≤ l1+l2 with
// l1+l2+l3 an integer. The condition is symmetric in its arguments.
func Triangle2(twoL1, twoL2, twoL3 int) bool {
	if twoL1 < 0 || twoL2 < 0 || twoL3 < 0 {
		return false
	}
	if (twoL1+twoL2+twoL3)&1 != 0 {
		return false
	}

	return Abs(twoL1-twoL2) <= twoL3 && twoL3 <= twoL1+twoL2
}

// MinDegree returns the lowest degree at which orders m1 and m2 are both
// admissible, max(|m1|, |m2|).
func MinDegree(m1, m2 int) int {
	return max(Abs(m1), Abs(m2))
}
