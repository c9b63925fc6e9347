// SPDX-License-Identifier: MIT

package cbessel

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/zbessel/machine"
)

// besselh fills y with Hankel functions H(m)_{fnu+k}(z). Only m = 2 is
// computed natively, from
//
//	H2_v(z) = (2i/pi) exp(i pi v/2) K_v(iz),
//
// whose K argument lands in the right half plane for Im(z) <= 0 and is
// continued through the left half plane, one rotation direction only,
// for Im(z) > 0. m = 1 is the reflection conj(H2_v(conj z)). The scale
// factors exp(iz) for m = 2 and exp(-iz) for m = 1 are exactly the K
// scale factor exp(zn) carried across the rotation.
func besselh(m int, z complex128, fnu float64, scaled bool, y []complex128) (int, error) {
	if m == 1 {
		nz, err := besselh(2, cmplx.Conj(z), fnu, scaled, y)
		for i := range y {
			y[i] = cmplx.Conj(y[i])
		}
		return nz, err
	}
	n := len(y)
	az := cmplx.Abs(z)
	if az < 1.0e3*machine.Tiny {
		return 0, ErrOverflow
	}
	zn := complex(-imag(z), real(z))
	left := real(zn) < 0 || (real(zn) == 0 && imag(zn) < 0)
	var nz int
	if fnu > machine.Fnul {
		mr := 0
		if left {
			mr = 1
			if real(zn) == 0 {
				zn = -zn
			}
		}
		nw, err := uniformK(zn, fnu, scaled, mr, y)
		if err != nil {
			return 0, err
		}
		nz = nw
	} else {
		fn := fnu + float64(n-1)
		nuf := 0
		if fn > 2 {
			var err error
			nuf, err = overflowPretest(zn, fnu, scaled, kindK, y)
			if err != nil {
				return 0, err
			}
			if nuf == n {
				return n, nil
			}
		} else if fn > 1 && az <= machine.Tol {
			if -fn*math.Log(0.5*az) > machine.Elim {
				return 0, ErrOverflow
			}
		}
		if left {
			if nuf > 0 {
				return 0, ErrOverflow
			}
			nw, err := continueK(zn, fnu, scaled, y)
			if err != nil {
				return 0, err
			}
			nz = nw
		} else {
			nw, err := kernelK(zn, fnu+float64(nuf), scaled, y[nuf:])
			if err != nil {
				return 0, err
			}
			nz = nuf + nw
		}
	}
	inu := int(fnu)
	inuh := inu / 2
	ir := inu - 2*inuh
	a := (fnu - float64(inu-ir)) * (0.5 * math.Pi)
	csgn := cmplx.Rect(2/math.Pi, a+0.5*math.Pi)
	if inuh%2 == 1 {
		csgn = -csgn
	}
	for i := range y {
		y[i] = machine.SafeMul(y[i], csgn)
		csgn *= complex(0, 1)
	}
	return nz, nil
}
