// SPDX-License-Identifier: MIT

package cbessel

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/zbessel/machine"
)

// besselk fills y with K_{fnu+k}(z) for k = 0..len(y)-1, or exp(z)*K
// when scaled is set. The lower half plane folds onto the upper through
// the conjugate, so the left half plane continuation and the large order
// path only ever rotate in one direction. The count reports members
// flushed to zero by underflow, always a leading block here because K
// grows with order.
func besselk(z complex128, fnu float64, scaled bool, y []complex128) (int, error) {
	if imag(z) < 0 {
		nz, err := besselk(cmplx.Conj(z), fnu, scaled, y)
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
	if fnu > machine.Fnul {
		mr := 0
		if real(z) < 0 {
			mr = 1
		}
		return uniformK(z, fnu, scaled, mr, y)
	}
	fn := fnu + float64(n-1)
	nuf := 0
	if fn > 2 {
		var err error
		nuf, err = overflowPretest(z, fnu, scaled, kindK, y)
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
	if real(z) < 0 {
		if nuf > 0 {
			return 0, ErrOverflow
		}
		return continueK(z, fnu, scaled, y)
	}
	nzk, err := kernelK(z, fnu+float64(nuf), scaled, y[nuf:])
	if err != nil {
		return 0, err
	}
	return nuf + nzk, nil
}
