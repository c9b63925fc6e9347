// SPDX-License-Identifier: MIT

package cbessel

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/zbessel/machine"
)

// besseli fills y with I_{fnu+k}(z) for k = 0..len(y)-1, or exp(-|Re z|)*I
// when scaled is set. The left half plane reduces to the right through
//
//	I_v(z) = exp(i pi v) I_v(-z)   for Im(z) >= 0,
//
// with the conjugate rotation below the axis. The phase is assembled from
// the fractional part of fnu and an integer parity so it stays exact for
// large orders, and steps by -1 along the sequence. Underflowed members
// form a trailing block of high orders; the phase multiply stops there.
func besseli(z complex128, fnu float64, scaled bool, y []complex128) (int, error) {
	zn := z
	csgn := complex(1, 0)
	if real(z) < 0 {
		zn = -z
		inu := int(fnu)
		arg := (fnu - float64(inu)) * math.Pi
		if imag(z) < 0 {
			arg = -arg
		}
		csgn = cmplx.Rect(1, arg)
		if inu%2 == 1 {
			csgn = -csgn
		}
	}
	nz, err := rightHalfI(zn, fnu, scaled, y)
	if err != nil {
		return 0, err
	}
	if real(z) >= 0 {
		return nz, nil
	}
	for i := 0; i < len(y)-nz; i++ {
		y[i] = machine.SafeMul(y[i], csgn)
		csgn = -csgn
	}
	return nz, nil
}
