// SPDX-License-Identifier: MIT

package xi

import "errors"

// Sentinel errors. Spectrum reading errors carry the 1-based line number;
// match them with errors.Is.
var (
	// ErrMissingValue indicates a line with a degree but no C_l.
	ErrMissingValue = errors.New("xi: missing C_l value")

	// ErrMalformedNumber indicates a field that does not parse as a number.
	ErrMalformedNumber = errors.New("xi: malformed number")

	// ErrTooFewSamples indicates a spectrum with fewer than two samples.
	ErrTooFewSamples = errors.New("xi: at least two samples required")

	// ErrDuplicateDegree indicates two samples at the same degree.
	ErrDuplicateDegree = errors.New("xi: duplicate degree in spectrum")

	// ErrNegativeDegree indicates lMin < 0.
	ErrNegativeDegree = errors.New("xi: degree must be non-negative")

	// ErrEmptyRange indicates lMin > lMax or an empty C_l slice.
	ErrEmptyRange = errors.New("xi: empty degree range")

	// ErrInvalidGrid indicates a grid that is not 0 ≤ t0 ≤ t1 with n ≥ 2.
	ErrInvalidGrid = errors.New("xi: invalid angle grid")

	// ErrNaNInf indicates a NaN or ±Inf value.
	ErrNaNInf = errors.New("xi: NaN or Inf value")
)
