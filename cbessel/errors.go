// SPDX-License-Identifier: MIT

package cbessel

import "errors"

// Sentinel errors returned by the evaluation drivers. Drivers wrap them
// with the offending parameter via fmt.Errorf("%w: ..."), so callers
// should match with errors.Is.
var (
	// ErrInvalidParameter indicates a malformed request: n < 1, a negative
	// or non-finite order, a non-finite argument, an unknown ScalingMode,
	// or z = 0 for a family with a singularity at the origin (Y, K, H).
	ErrInvalidParameter = errors.New("cbessel: invalid parameter")

	// ErrOverflow indicates the unscaled result is certain to exceed the
	// double-precision range, so no values were produced.
	ErrOverflow = errors.New("cbessel: result would overflow")

	// ErrPrecisionLoss indicates |z| or the highest requested order is so
	// large that argument reduction leaves no trustworthy digits.
	ErrPrecisionLoss = errors.New("cbessel: total loss of significance")

	// ErrNoConvergence indicates an internal series, continued fraction or
	// backward recurrence failed to settle within its iteration cap.
	ErrNoConvergence = errors.New("cbessel: algorithm failed to converge")
)
