// SPDX-License-Identifier: MIT

package cbessel

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/zbessel/machine"
)

// wronskianI evaluates I at orders fnu..fnu+len(y)-1 for Re z >= 0 in the
// region where neither the power series nor Miller normalization is
// usable. The ratio chain from ratioI fixes every member up to one
// constant, and that constant comes from the Wronskian
//
//	I_f(z) K_{f+1}(z) + I_{f+1}(z) K_f(z) = 1/z
//
// with the K pair supplied by kernelK, which is stable here.
func wronskianI(z complex128, fnu float64, scaled bool, y []complex128) (int, error) {
	n := len(y)
	r, err := ratioI(z, fnu, n)
	if err != nil {
		return 0, err
	}
	var cw [2]complex128
	nw, err := kernelK(z, fnu, scaled, cw[:])
	if err != nil {
		return 0, err
	}
	if nw != 0 {
		// K already under the floor means I is at the overflow limit
		return 0, ErrOverflow
	}
	cinu := complex(1, 0)
	if scaled {
		cinu = cmplx.Exp(complex(0, imag(z)))
	}
	// lift the K pair out of the denormal range before the linear
	// combination; the power of two cancels in the quotient
	sc := machine.NewRescaler(cmplx.Abs(cw[1]))
	f := complex(sc.Factor(), 0)
	c1 := cw[0] * f
	c2 := cw[1] * f
	ct := z * (c2 + r[0]*c1)
	act := cmplx.Abs(ct)
	if act == 0 || math.IsInf(act, 1) {
		return 0, ErrOverflow
	}
	y[0] = cinu * f / ct
	for m := 1; m < n; m++ {
		y[m] = y[m-1] * r[m-1]
	}
	return 0, nil
}
