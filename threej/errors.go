// SPDX-License-Identifier: MIT

package threej

import "errors"

// Sentinel errors. They report structurally invalid requests (boundary or
// domain errors) and are returned before any value is computed. Selection
// rule violations inside a valid request are NOT errors: they yield exact
// zeros in the output.
var (
	// ErrNegativeDegree indicates a negative degree argument.
	ErrNegativeDegree = errors.New("threej: degree must be non-negative")

	// ErrEmptyRange indicates a range whose lower bound exceeds its upper bound.
	ErrEmptyRange = errors.New("threej: range lower bound exceeds upper bound")

	// ErrOrderExceedsDegree indicates a fixed pair (l, m) with |m| > l.
	ErrOrderExceedsDegree = errors.New("threej: |m| exceeds l for a fixed pair")

	// ErrParity indicates mixed integer and half-integer arguments: l − m
	// or l1+l2+l3 is not an integer, or a range does not step by whole units.
	ErrParity = errors.New("threej: integer and half-integer arguments do not match")

	// ErrNoAllowedValues indicates a request that has no overlap with the
	// allowed span: a triangle violation for OrderAll, or a degree or order
	// range lying entirely outside the span for Degree and Order.
	ErrNoAllowedValues = errors.New("threej: no allowed values")
)
