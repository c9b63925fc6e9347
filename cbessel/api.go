// SPDX-License-Identifier: MIT

package cbessel

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/zbessel/machine"
)

// checkSequenceArgs validates the request shared by all six sequence
// families. origin marks families with a singularity at z = 0.
func checkSequenceArgs(name string, z complex128, nu float64, mode ScalingMode, n int, origin bool) error {
	if n < 1 {
		return fmt.Errorf("%w: %s: n = %d, want n >= 1", ErrInvalidParameter, name, n)
	}
	if !(nu >= 0) || math.IsInf(nu, 0) {
		return fmt.Errorf("%w: %s: order nu = %v, want finite nu >= 0", ErrInvalidParameter, name, nu)
	}
	if !mode.valid() {
		return fmt.Errorf("%w: %s: unknown scaling mode %d", ErrInvalidParameter, name, int(mode))
	}
	if cmplx.IsNaN(z) || cmplx.IsInf(z) {
		return fmt.Errorf("%w: %s: z = %v is not finite", ErrInvalidParameter, name, z)
	}
	if origin && z == 0 {
		return fmt.Errorf("%w: %s: z = 0 is a singular point", ErrInvalidParameter, name)
	}
	return nil
}

// checkMagnitude enforces the argument reduction limits on a, which is
// max(|z|, nu+n-1) for the cylinder families and |z|^(3/2) for Airy.
// Past WarnArg the sine and cosine of the reduced argument retain fewer
// than half their digits; past MaxArg none survive. Both conditions fail
// the call rather than return silently degraded values.
func checkMagnitude(name string, a float64) error {
	if a > machine.MaxArg {
		return fmt.Errorf("%w: %s: argument magnitude %.6g exceeds %.6g", ErrPrecisionLoss, name, a, machine.MaxArg)
	}
	if a > machine.WarnArg {
		return fmt.Errorf("%w: %s: argument magnitude %.6g exceeds %.6g, fewer than half the digits would survive", ErrPrecisionLoss, name, a, machine.WarnArg)
	}
	return nil
}

func checkCylinder(name string, z complex128, nu float64, n int) error {
	return checkMagnitude(name, math.Max(cmplx.Abs(z), nu+float64(n-1)))
}

// BesselJ evaluates the Bessel functions of the first kind J_{nu+k}(z)
// for k = 0..n-1. With mode Scaled each value carries the extra factor
// exp(-|Im z|). Underflowed counts trailing members flushed to zero.
func BesselJ(z complex128, nu float64, mode ScalingMode, n int) (Sequence, error) {
	const name = "BesselJ"
	if err := checkSequenceArgs(name, z, nu, mode, n, false); err != nil {
		return Sequence{}, err
	}
	if err := checkCylinder(name, z, nu, n); err != nil {
		return Sequence{}, err
	}
	y := make([]complex128, n)
	nz, err := besselj(z, nu, mode.scaled(), y)
	if err != nil {
		return Sequence{}, fmt.Errorf("%w: %s: z = %v, nu = %g, n = %d", err, name, z, nu, n)
	}
	return Sequence{Values: y, Underflowed: nz}, nil
}

// BesselY evaluates the Bessel functions of the second kind Y_{nu+k}(z)
// for k = 0..n-1, scaled by exp(-|Im z|) in Scaled mode. z = 0 is
// rejected: Y is singular at the origin.
func BesselY(z complex128, nu float64, mode ScalingMode, n int) (Sequence, error) {
	const name = "BesselY"
	if err := checkSequenceArgs(name, z, nu, mode, n, true); err != nil {
		return Sequence{}, err
	}
	if err := checkCylinder(name, z, nu, n); err != nil {
		return Sequence{}, err
	}
	y := make([]complex128, n)
	nz, err := bessely(z, nu, mode.scaled(), y)
	if err != nil {
		return Sequence{}, fmt.Errorf("%w: %s: z = %v, nu = %g, n = %d", err, name, z, nu, n)
	}
	return Sequence{Values: y, Underflowed: nz}, nil
}

// BesselI evaluates the modified Bessel functions of the first kind
// I_{nu+k}(z) for k = 0..n-1, scaled by exp(-|Re z|) in Scaled mode.
func BesselI(z complex128, nu float64, mode ScalingMode, n int) (Sequence, error) {
	const name = "BesselI"
	if err := checkSequenceArgs(name, z, nu, mode, n, false); err != nil {
		return Sequence{}, err
	}
	if err := checkCylinder(name, z, nu, n); err != nil {
		return Sequence{}, err
	}
	y := make([]complex128, n)
	nz, err := besseli(z, nu, mode.scaled(), y)
	if err != nil {
		return Sequence{}, fmt.Errorf("%w: %s: z = %v, nu = %g, n = %d", err, name, z, nu, n)
	}
	return Sequence{Values: y, Underflowed: nz}, nil
}

// BesselK evaluates the modified Bessel functions of the second kind
// K_{nu+k}(z) for k = 0..n-1, scaled by exp(z) in Scaled mode. z = 0 is
// rejected, and arguments so close to the origin that K_nu exceeds the
// double range fail with ErrOverflow.
func BesselK(z complex128, nu float64, mode ScalingMode, n int) (Sequence, error) {
	const name = "BesselK"
	if err := checkSequenceArgs(name, z, nu, mode, n, true); err != nil {
		return Sequence{}, err
	}
	if err := checkCylinder(name, z, nu, n); err != nil {
		return Sequence{}, err
	}
	y := make([]complex128, n)
	nz, err := besselk(z, nu, mode.scaled(), y)
	if err != nil {
		return Sequence{}, fmt.Errorf("%w: %s: z = %v, nu = %g, n = %d", err, name, z, nu, n)
	}
	return Sequence{Values: y, Underflowed: nz}, nil
}

// Hankel1 evaluates H1_{nu+k}(z) = J + iY for k = 0..n-1, scaled by
// exp(-iz) in Scaled mode. z = 0 is rejected.
func Hankel1(z complex128, nu float64, mode ScalingMode, n int) (Sequence, error) {
	const name = "Hankel1"
	if err := checkSequenceArgs(name, z, nu, mode, n, true); err != nil {
		return Sequence{}, err
	}
	if err := checkCylinder(name, z, nu, n); err != nil {
		return Sequence{}, err
	}
	y := make([]complex128, n)
	nz, err := besselh(1, z, nu, mode.scaled(), y)
	if err != nil {
		return Sequence{}, fmt.Errorf("%w: %s: z = %v, nu = %g, n = %d", err, name, z, nu, n)
	}
	return Sequence{Values: y, Underflowed: nz}, nil
}

// Hankel2 evaluates H2_{nu+k}(z) = J - iY for k = 0..n-1, scaled by
// exp(+iz) in Scaled mode. z = 0 is rejected.
func Hankel2(z complex128, nu float64, mode ScalingMode, n int) (Sequence, error) {
	const name = "Hankel2"
	if err := checkSequenceArgs(name, z, nu, mode, n, true); err != nil {
		return Sequence{}, err
	}
	if err := checkCylinder(name, z, nu, n); err != nil {
		return Sequence{}, err
	}
	y := make([]complex128, n)
	nz, err := besselh(2, z, nu, mode.scaled(), y)
	if err != nil {
		return Sequence{}, fmt.Errorf("%w: %s: z = %v, nu = %g, n = %d", err, name, z, nu, n)
	}
	return Sequence{Values: y, Underflowed: nz}, nil
}

// AiryAi evaluates Ai(z), or Ai'(z) with derivative set. In Scaled mode
// the value carries the factor exp(zeta), zeta = (2/3)z^(3/2), which
// removes the decay in the principal sector. The int result is 1 when an
// unscaled value underflowed to an exact zero, else 0.
func AiryAi(z complex128, derivative bool, mode ScalingMode) (complex128, int, error) {
	const name = "AiryAi"
	if !mode.valid() {
		return 0, 0, fmt.Errorf("%w: %s: unknown scaling mode %d", ErrInvalidParameter, name, int(mode))
	}
	if cmplx.IsNaN(z) || cmplx.IsInf(z) {
		return 0, 0, fmt.Errorf("%w: %s: z = %v is not finite", ErrInvalidParameter, name, z)
	}
	if err := checkMagnitude(name, math.Pow(cmplx.Abs(z), 1.5)); err != nil {
		return 0, 0, err
	}
	ai, nz, err := airyAi(z, derivative, mode.scaled())
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s: z = %v", err, name, z)
	}
	return ai, nz, nil
}

// AiryBi evaluates Bi(z), or Bi'(z) with derivative set. In Scaled mode
// the value carries the factor exp(-|Re zeta|), zeta = (2/3)z^(3/2),
// which caps the growth in every sector. Bi has no decay sector, so no
// underflow count is reported.
func AiryBi(z complex128, derivative bool, mode ScalingMode) (complex128, error) {
	const name = "AiryBi"
	if !mode.valid() {
		return 0, fmt.Errorf("%w: %s: unknown scaling mode %d", ErrInvalidParameter, name, int(mode))
	}
	if cmplx.IsNaN(z) || cmplx.IsInf(z) {
		return 0, fmt.Errorf("%w: %s: z = %v is not finite", ErrInvalidParameter, name, z)
	}
	if err := checkMagnitude(name, math.Pow(cmplx.Abs(z), 1.5)); err != nil {
		return 0, err
	}
	bi, err := airyBi(z, derivative, mode.scaled())
	if err != nil {
		return 0, fmt.Errorf("%w: %s: z = %v", err, name, z)
	}
	return bi, nil
}
