// SPDX-License-Identifier: MIT

package littled

import (
	"fmt"

	"github.com/katalvlaran/wigner/internal/numeric"
)

// validatorErrorf tags a sentinel with the calling operation and the values
// that violated it. errors.Is still matches the sentinel.
func validatorErrorf(tag string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w (%s)", tag, err, fmt.Sprintf(format, args...))
}

// validateRange checks 0 ≤ lMin ≤ lMax and lMin ≥ l0, in that order.
func validateRange(tag string, lMin, lMax, l0 int) error {
	if lMin < 0 {
		return validatorErrorf(tag, ErrNegativeDegree, "lMin=%d", lMin)
	}
	if lMin > lMax {
		return validatorErrorf(tag, ErrEmptyRange, "lMin=%d lMax=%d", lMin, lMax)
	}
	if lMin < l0 {
		return validatorErrorf(tag, ErrBelowOrder, "lMin=%d l0=%d", lMin, l0)
	}

	return nil
}

// validateFinite rejects NaN and ±Inf arguments.
func validateFinite(tag string, xs ...float64) error {
	for i, x := range xs {
		if !numeric.IsFinite(x) {
			return validatorErrorf(tag, ErrNaNInf, "argument %d = %v", i, x)
		}
	}

	return nil
}
