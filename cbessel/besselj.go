// SPDX-License-Identifier: MIT

package cbessel

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/zbessel/machine"
)

// besselj fills y with J_{fnu+k}(z) for k = 0..len(y)-1, or exp(-|Im z|)*J
// when scaled is set. The whole plane rotates onto the right half through
//
//	J_v(z) = exp(+i pi v/2) I_v(-iz)   Im(z) >= 0,
//	J_v(z) = exp(-i pi v/2) I_v(+iz)   Im(z) <  0,
//
// which also carries the scaling factor across, since |Re(-+iz)| = |Im z|.
// The half-integer phase is built from the fractional part of fnu plus an
// integer parity so it stays exact for large orders, then steps by -+i per
// member.
func besselj(z complex128, fnu float64, scaled bool, y []complex128) (int, error) {
	inu := int(fnu)
	inuh := inu / 2
	ir := inu - 2*inuh
	arg := (fnu - float64(inu-ir)) * (0.5 * math.Pi)
	csgn := cmplx.Rect(1, arg)
	if inuh%2 == 1 {
		csgn = -csgn
	}
	ci := complex(0, 1)
	zn := complex(imag(z), -real(z))
	if imag(z) < 0 {
		zn = -zn
		csgn = cmplx.Conj(csgn)
		ci = cmplx.Conj(ci)
	}
	nz, err := rightHalfI(zn, fnu, scaled, y)
	if err != nil {
		return 0, err
	}
	for i := 0; i < len(y)-nz; i++ {
		y[i] = machine.SafeMul(y[i], csgn)
		csgn *= ci
	}
	return nz, nil
}
