// SPDX-License-Identifier: MIT

// Package threej evaluates Wigner 3j-symbols
//
//	( l1 l2 l3 )
//	( m1 m2 m3 )
//
// as whole sequences, either over the degree l1 (Degree, DegreeAll) or over
// the order m2 with m3 = −m1−m2 (Order, OrderAll), plus single values from
// the Racah formula (Symbol).
//
// 🚀 Algorithm
//
//	Both sweeps use the Schulten–Gordon three-term recurrences. The sequence
//	is generated forward from the lower end while it grows, backward from the
//	upper end, and the two halves are matched by least squares over three
//	overlapping points. Partial results are rescaled whenever they exceed
//	sqrt(huge), which keeps the method usable for quantum numbers in the
//	thousands. The result is normalised by the orthogonality relation and its
//	overall phase is fixed by the Condon–Shortley convention at the upper end.
//
// ⚙️ Usage:
//
//	// (l1 2 3; 1 −1 0) for l1 = 0..6, zeros outside 1 ≤ l1 ≤ 5
//	f, err := threej.Degree(0, 6, 2, 3, 1, -1, 0)
//
//	// (2 2 3; 1 m2 −1−m2) for every allowed m2
//	lo, hi, g, err := threej.OrderAll(2, 2, 3, 1)
//
// Zero vs. error:
//
//	Structurally invalid arguments (negative degrees, empty ranges, a fixed
//	pair with |m| > l) are errors, and so is a degree or order range that
//	lies entirely outside the allowed span (ErrNoAllowedValues).
//	Selection-rule violations inside a request (triangle rule, m1+m2+m3 ≠ 0,
//	entries of a partially overlapping range) are exact zeros.
//
// Half-integers:
//
//	Degree2, DegreeAll2, Order2, OrderAll2 and Symbol2 take doubled
//	arguments (twoL = 2·l, twoM = 2·m) and so accept half-integer angular
//	momenta; spans come back doubled too. Mixing integer and half-integer
//	values where l − m or l1+l2+l3 would not be an integer is ErrParity.
//
//	// (1/2 1/2 l1; 1/2 −1/2 0) for l1 = 0, 1
//	lo, hi, f, err := threej.DegreeAll2(1, 1, 1, -1)
//
// All functions are pure and safe for concurrent use.
package threej
