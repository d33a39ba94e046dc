// SPDX-License-Identifier: MIT

package littled

import "math"

// BigD computes the Wigner D-function D^l_{m1,m2}(alpha, beta, gamma) for
// l = lMin..lMax, for the rotation R_z(alpha)·R_y(beta)·R_z(gamma).
//
// The phase convention is D^l_{m1,m2} = exp(i·(m1·alpha + m2·gamma))·d^l_{m1,m2}(beta);
// the phase factor is the same for every l, so it is evaluated once.
//
// Errors:
//   - everything LittleD returns; ErrNaNInf also covers alpha and gamma.
func BigD(lMin, lMax, m1, m2 int, alpha, beta, gamma float64) ([]complex128, error) {
	if err := validateFinite("BigD", alpha, beta, gamma); err != nil {
		return nil, err
	}
	d, err := LittleD(lMin, lMax, m1, m2, beta)
	if err != nil {
		return nil, err
	}

	sin, cos := math.Sincos(float64(m1)*alpha + float64(m2)*gamma)
	out := make([]complex128, len(d))
	for i, v := range d {
		out[i] = complex(cos*v, sin*v)
	}

	return out, nil
}
