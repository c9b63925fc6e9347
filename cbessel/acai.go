// SPDX-License-Identifier: MIT

package cbessel

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/zbessel/machine"
)

// continueKAiry carries K across the cut for Re z < 0 like continueK,
// but serves the Airy evaluator, where the order is 1/3 or 2/3 and at
// most two members are wanted. The I piece therefore comes straight
// from the power series, the Miller algorithm or the large argument
// expansion instead of the full dispatch, and no recurrence phase is
// needed. Both rotation directions are handled here, with the
// continuation
//
//	K_nu(z) = exp(-s i pi nu) K_nu(zn) - s i pi I_nu(zn),  zn = -z,
//
// taken counterclockwise (s = +1) when upper is set and clockwise
// otherwise. The caller must supply the direction: z arrives as a
// principal power of the original argument, so once that argument
// passes the 2 pi/3 ray the sign of Im z no longer tells which side
// of the cut the continuation came from.
func continueKAiry(z complex128, fnu float64, scaled, upper bool, y []complex128) (nz int, err error) {
	n := len(y)
	zn := -z
	az := cmplx.Abs(zn)
	dfnu := fnu + float64(n-1)
	switch {
	case az <= 2 || 0.25*az*az <= dfnu+1:
		seriesI(zn, fnu, scaled, y)
	case az >= machine.Rl:
		if _, err = asymptoticI(zn, fnu, scaled, y); err != nil {
			return 0, err
		}
	default:
		if _, err = millerI(zn, fnu, scaled, y); err != nil {
			return 0, err
		}
	}
	cy := make([]complex128, n)
	nw, err := kernelK(zn, fnu, scaled, cy)
	if err != nil {
		return 0, err
	}
	if nw != 0 {
		return 0, ErrOverflow
	}

	s := 1.0
	if !upper {
		s = -1
	}
	csgn := complex(0, -s*math.Pi)
	if scaled {
		csgn *= cmplx.Rect(1, -imag(zn))
	}
	inu := int(fnu)
	cspn := cmplx.Rect(1, -s*math.Pi*(fnu-float64(inu)))
	if inu%2 == 1 {
		cspn = -cspn
	}
	for k := 0; k < n; k++ {
		c1 := cy[k]
		c2 := y[k]
		if scaled {
			c1, _ = shiftExp(c1, -2*zn)
			if cmplx.Abs(c1) <= machine.Ascle && cmplx.Abs(c2) <= machine.Ascle {
				c1, c2 = 0, 0
				nz++
			}
		}
		y[k] = cspn*c1 + csgn*c2
		cspn = -cspn
	}
	return nz, nil
}
