// SPDX-License-Identifier: MIT

// Package numeric holds the stateless arithmetic shared by the littled and
// threej evaluators: log-factorials, log-binomials, the (−1)^n phase, the
// structural (l, m) predicates and the overflow-control constants used by the
// scaled three-term recurrences.
//
// Nothing in this package keeps state between calls. Every helper is a pure
// function of its arguments, so evaluators built on top of it remain
// reentrant and safe for concurrent use.
package numeric

import "math"

// Overflow control for scaled recurrences.
//
// Huge is the square root of one twentieth of the largest float64
// (sqrt(math.MaxFloat64/20)), so that the sum of squares of up to twenty
// values of magnitude SqrtHuge² never overflows. Tiny and SqrtTiny are the
// reciprocals.
const (
	Huge     = 2.9980769960612384e+153
	SqrtHuge = 5.475469839256937e+76
	Tiny     = 1 / Huge
	SqrtTiny = 1 / SqrtHuge
)

// LogFactorial returns ln(n!) for n ≥ 0.
//
// Complexity: O(1) via math.Lgamma; exact for small n up to rounding.
// Negative n has no factorial and yields +Inf, which makes any product of
// factorials that includes it vanish after exponentiation.
func LogFactorial(n int) float64 {
	if n < 0 {
		return math.Inf(1)
	}
	if n < 2 {
		return 0
	}
	v, _ := math.Lgamma(float64(n) + 1)

	return v
}

// LogBinomial returns ln C(n, k). Out-of-range k (k < 0 or k > n) yields −Inf,
// i.e. C(n, k) = 0.
func LogBinomial(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	if k == 0 || k == n {
		return 0
	}

	return LogFactorial(n) - LogFactorial(k) - LogFactorial(n-k)
}

// Phase returns (−1)^n for any integer n.
func Phase(n int) float64 {
	if n&1 == 0 {
		return 1
	}

	return -1
}

// Abs returns |n|.
func Abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
