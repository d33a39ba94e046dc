// SPDX-License-Identifier: MIT

package littled

import "errors"

// Sentinel errors. All of them are boundary/domain errors: the call fails
// before anything is computed and no partial output is returned. Callers
// match them with errors.Is; the returned errors carry the offending values.
var (
	// ErrNegativeDegree indicates lMin < 0.
	ErrNegativeDegree = errors.New("littled: degree must be non-negative")

	// ErrEmptyRange indicates lMin > lMax.
	ErrEmptyRange = errors.New("littled: lMin must not exceed lMax")

	// ErrBelowOrder indicates lMin < max(|m1|,|m2|): the function is not
	// defined at the leading degrees of the requested range.
	ErrBelowOrder = errors.New("littled: degree below max(|m1|,|m2|)")

	// ErrNaNInf indicates a NaN or ±Inf angle or argument.
	ErrNaNInf = errors.New("littled: NaN or Inf argument")
)
