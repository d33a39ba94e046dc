// SPDX-License-Identifier: MIT

package threej

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/wigner/internal/numeric"
)

// validatorErrorf tags a sentinel with the operation and offending values.
func validatorErrorf(tag string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w (%s)", tag, err, fmt.Sprintf(format, args...))
}

// half renders a doubled quantum number: 6 → "3", 5 → "5/2".
func half(two int) string {
	if two&1 == 0 {
		return strconv.Itoa(two / 2)
	}

	return strconv.Itoa(two) + "/2"
}

// validateRange checks 0 ≤ lo ≤ hi when nonNegative is set, or lo ≤ hi
// alone, and that the doubled bounds differ by whole units.
func validateRange(tag, name string, twoLo, twoHi int, nonNegative bool) error {
	if nonNegative && twoLo < 0 {
		return validatorErrorf(tag, ErrNegativeDegree, "%sMin=%s", name, half(twoLo))
	}
	if twoLo > twoHi {
		return validatorErrorf(tag, ErrEmptyRange, "%sMin=%s %sMax=%s", name, half(twoLo), name, half(twoHi))
	}
	if (twoHi-twoLo)&1 != 0 {
		return validatorErrorf(tag, ErrParity, "%sMin=%s %sMax=%s", name, half(twoLo), name, half(twoHi))
	}

	return nil
}

// validateDegrees checks that every doubled degree is non-negative.
func validateDegrees(tag string, twoLs ...int) error {
	for _, tl := range twoLs {
		if tl < 0 {
			return validatorErrorf(tag, ErrNegativeDegree, "l=%s", half(tl))
		}
	}

	return nil
}

// validatePairs checks every fixed doubled (l, m) pair; the first failure wins.
func validatePairs(tag string, pairs ...[2]int) error {
	for _, p := range pairs {
		if err := validateDegrees(tag, p[0]); err != nil {
			return err
		}
		if numeric.Abs(p[1]) > p[0] {
			return validatorErrorf(tag, ErrOrderExceedsDegree, "l=%s m=%s", half(p[0]), half(p[1]))
		}
		if !numeric.ValidPair2(p[0], p[1]) {
			return validatorErrorf(tag, ErrParity, "l=%s m=%s", half(p[0]), half(p[1]))
		}
	}

	return nil
}
