// SPDX-License-Identifier: MIT

package threej

import (
	"math"

	"github.com/katalvlaran/wigner/internal/numeric"
)

// recurrence describes a three-term recurrence over the indices 0..n−1 of a
// sequence f (n ≥ 2):
//
//	up(c)·f[c+1] + mid(c)·f[c] + down(c)·f[c−1] = 0,
//
// together with the normalisation scale·Σ weight(k)·f[k]² = 1 and the
// required sign of f[n−1]. Both 3j sweeps are instances of it.
type recurrence struct {
	n        int
	coef     func(c int) (up, mid, down float64)
	weight   func(k int) float64
	scale    float64
	lastSign float64
}

// solve fills out (len n) with the normalised solution.
//
// Implementation (Schulten & Gordon):
//   - Stage 1: forward recurrence from f[0] = sqrt(tiny) while |mid/up|
//     decreases, i.e. while the sequence is growing and the recursion is
//     stable; values beyond sqrt(huge) trigger a rescale of the prefix.
//   - Stage 2: backward recurrence from f[n−1] = sqrt(tiny) down to the
//     forward stopping point, overlapping it at three indices.
//   - Stage 3: least-squares ratio over the overlap joins both halves; the
//     half with the smaller scale is multiplied so no value overflows.
//   - Stage 4: normalise with the accumulated weighted sum of squares and
//     fix the overall phase with lastSign.
//
// Complexity: Time O(n), Space O(1) beyond out.
func (r recurrence) solve(out []float64) {
	var (
		n      = r.n
		f      = out
		tiny   = numeric.Tiny
		srtiny = numeric.SqrtTiny
		huge   = numeric.Huge
		srhuge = numeric.SqrtHuge

		x, c1, c1old   float64
		sum1, sumfor   float64
		sum2, sumbac   float64
		sumuni         float64
		x1, x2, x3     float64
		y, y1, y2, y3  float64
		k              int
		backwardNeeded = true
	)

	// Stage 1: forward.
	f[0] = srtiny
	sum1 = r.weight(0) * tiny
	for k = 1; ; k++ {
		up, mid, down := r.coef(k - 1)
		c1old = math.Abs(c1)
		c1 = -mid / up

		if k == 1 {
			// f[-1] = 0: the third term vanishes.
			x = srtiny * c1
			f[1] = x
			sum1 += tiny * r.weight(1) * c1 * c1
			if n == 2 {
				backwardNeeded = false

				break
			}

			continue
		}

		c2 := -down / up
		x = c1*f[k-1] + c2*f[k-2]
		f[k] = x
		sumfor = sum1
		sum1 += r.weight(k) * x * x
		if k == n-1 {
			backwardNeeded = false

			break
		}

		if math.Abs(x) > srhuge {
			rescale(f[:k+1])
			sum1 /= huge
			sumfor /= huge
			x /= srhuge
		}

		// Past the maximum of |c1| the forward recursion turns unstable.
		if c1old <= math.Abs(c1) {
			break
		}
	}

	if !backwardNeeded {
		sumuni = sum1
	} else {
		// Keep the three forward values around the match point.
		x1, x2, x3 = x, f[k-1], f[k-2]
		nstep2 := n - k + 2

		// Stage 2: backward from the last index, nstep2 steps.
		f[n-1] = srtiny
		sum2 = r.weight(n-1) * tiny
		for lstep := 2; ; lstep++ {
			j := n - lstep // index being computed
			up, mid, down := r.coef(j + 1)
			c1 = -mid / down

			if lstep == 2 {
				// f[n] = 0: the third term vanishes.
				y = srtiny * c1
				f[j] = y
				sumbac = sum2
				sum2 += tiny * r.weight(j) * c1 * c1

				continue
			}

			c2 := -up / down
			y = c1*f[j+1] + c2*f[j+2]
			if lstep == nstep2 {
				break
			}
			f[j] = y
			sumbac = sum2
			sum2 += r.weight(j) * y * y

			if math.Abs(y) > srhuge {
				rescale(f[j:])
				sum2 /= huge
				sumbac /= huge
			}
		}

		// Stage 3: match at indices k, k−1, k−2.
		y3 = y
		y2 = f[k-1]
		y1 = f[k]
		ratio := (x1*y1 + x2*y2 + x3*y3) / (x1*x1 + x2*x2 + x3*x3)
		nlim := k - 1 // f[:nlim] still holds forward values

		if math.Abs(ratio) >= 1 {
			for i := 0; i < nlim; i++ {
				f[i] *= ratio
			}
			sumuni = ratio*ratio*sumfor + sumbac
		} else {
			ratio = 1 / ratio
			for i := nlim; i < n; i++ {
				f[i] *= ratio
			}
			sumuni = sumfor + ratio*ratio*sumbac
		}
	}

	// Stage 4: normalise and fix the phase.
	cnorm := 1 / math.Sqrt(r.scale*sumuni)
	if math.Copysign(1, f[n-1])*r.lastSign < 0 {
		cnorm = -cnorm
	}
	if math.Abs(cnorm) >= 1 {
		for i := range f {
			f[i] *= cnorm
		}

		return
	}
	thresh := tiny / math.Abs(cnorm)
	for i := range f {
		if math.Abs(f[i]) < thresh {
			f[i] = 0
		}
		f[i] *= cnorm
	}
}

// rescale divides a partial solution by sqrt(huge), flushing values that
// would underflow to zero.
func rescale(f []float64) {
	for i := range f {
		if math.Abs(f[i]) < numeric.SqrtTiny {
			f[i] = 0
		} else {
			f[i] /= numeric.SqrtHuge
		}
	}
}
