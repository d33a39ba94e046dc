// SPDX-License-Identifier: MIT

// Package littled evaluates Wigner (little) d-functions d^l_{m1,m2}(θ) for a
// contiguous range of degrees l, with the orders m1, m2 and the angle θ held
// fixed.
//
// 🚀 What is the little-d function?
//
//	d^l_{m1,m2}(θ) is the real matrix element ⟨l m1| e^{−iθJ_y} |l m2⟩ of a
//	rotation about the y axis. It appears in:
//	  • spin-weighted spherical harmonics and CMB polarisation
//	  • correlation functions of fields on the sphere (see package xi)
//	  • rotation of multipole expansions
//
// ✨ Key features:
//   - stable upward three-term recurrence in l, seeded at l0 = max(|m1|,|m2|)
//   - seed evaluated in log space: no overflow of the binomial normalisation
//   - exact delta-like limits at θ = 0 and θ = π
//   - m1 = m2 = 0 dispatches to the Legendre recurrence
//   - Wigner big-D on top of little-d (BigD)
//
// ⚙️ Usage:
//
//	d, err := littled.LittleD(2, 100, 2, -2, 0.3)
//	if err != nil {
//	  // errors.Is(err, littled.ErrBelowOrder) etc.
//	}
//	// d[i] == d^{2+i}_{2,-2}(0.3)
//
// Domain:
//
//	Degrees below max(|m1|,|m2|) do not exist. A range that starts there is
//	rejected as a whole (ErrBelowOrder); use MinDegree to clip a range first.
//
// Performance:
//
//   - Time:   O(lMax − l0 + 1)
//   - Memory: O(lMax − lMin + 1), the output slice only
//
// All functions are pure and safe for concurrent use.
package littled
