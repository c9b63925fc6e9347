// SPDX-License-Identifier: MIT

package cbessel

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/zbessel/machine"
)

// seriesI evaluates I at orders fnu..fnu+len(y)-1 by the ascending power
// series
//
//	I_mu(z) = (z/2)^mu * sum_k (z^2/4)^k / (k! Gamma(mu+k+1)),
//
// valid when |z|^2/4 does not exceed mu+1 so the terms never grow. The top
// one or two orders are summed directly, the rest filled by downward
// recurrence. scaled multiplies by exp(-Re z).
//
// The return value counts trailing members set to zero because their
// leading term underflows the exponent range. A negative return -nz flags
// that nz members were zeroed but the terms were still growing at the top
// order, so nothing can be concluded about the lower orders; the caller
// must reroute the surviving len(y)-nz members.
func seriesI(z complex128, fnu float64, scaled bool, y []complex128) int {
	n := len(y)
	az := cmplx.Abs(z)
	for i := range y {
		y[i] = 0
	}
	if az == 0 {
		if fnu == 0 {
			y[0] = 1
		}
		return 0
	}
	arm := 1.0e3 * machine.Tiny
	if az < arm {
		// the whole argument sits under the floor: (z/2)^mu flushes for
		// every positive order
		nz := n
		if fnu == 0 {
			y[0] = 1
			nz--
		}
		return nz
	}
	hz := 0.5 * z
	var cz complex128
	if az > math.Sqrt(arm) {
		cz = hz * hz
	}
	acz := cmplx.Abs(cz)
	ck := cmplx.Log(hz)
	x := real(z)
	rz := 2 / z
	nz := 0
	nn := n
	var w [2]complex128

outer:
	for nn > 0 {
		dfnu := fnu + float64(nn-1)
		lg, _ := math.Lgamma(dfnu + 1)
		ak1 := complex(dfnu, 0)*ck - complex(lg, 0)
		if scaled {
			ak1 -= complex(x, 0)
		}
		rs1 := real(ak1)
		if rs1 <= -machine.Elim {
			nz++
			if acz > dfnu {
				return -nz
			}
			nn--
			continue
		}
		lifted := rs1 <= -machine.Alim
		ib := nn - 2
		if ib < 0 {
			ib = 0
		}
		for m := nn - 1; m >= ib; m-- {
			mu := fnu + float64(m)
			lgm, _ := math.Lgamma(mu + 1)
			e := complex(mu, 0)*ck - complex(lgm, 0)
			if scaled {
				e -= complex(x, 0)
			}
			if lifted {
				e -= complex(math.Log(machine.Tol), 0)
			}
			coef := cmplx.Exp(e)
			s := complex(1, 0)
			if acz >= machine.Tol*(mu+1) {
				t := complex(1, 0)
				for k := 1; k <= 500; k++ {
					t = t * cz / complex(float64(k)*(mu+float64(k)), 0)
					s += t
					if cmplx.Abs(t) < machine.Tol*cmplx.Abs(s) {
						break
					}
				}
			}
			v := coef * s
			if lifted && machine.UnderflowCheck(v, machine.Ascle) {
				// the lifted value cannot survive the drop back: retire
				// the top order and start over
				nz++
				y[nn-1] = 0
				if acz > mu {
					return -nz
				}
				nn--
				continue outer
			}
			w[nn-1-m] = v
		}
		crsc := complex(1, 0)
		if lifted {
			crsc = complex(machine.Tol, 0)
		}
		y[nn-1] = w[0] * crsc
		if ib < nn-1 {
			y[ib] = w[1] * crsc
		}
		if ib > 0 {
			// downward recurrence in the lifted frame, dropped back on
			// delivery (the scale is a power of two, so this is exact)
			p2, p3 := w[1], w[0]
			for k := ib - 1; k >= 0; k-- {
				p := complex(fnu+float64(k+1), 0)*rz*p2 + p3
				p3 = p2
				p2 = p
				y[k] = p * crsc
			}
		}
		return nz
	}
	return nz
}
