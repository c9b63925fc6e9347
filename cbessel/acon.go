// SPDX-License-Identifier: MIT

package cbessel

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/zbessel/machine"
)

// shiftExp returns v exp(w) with the product formed in log space when
// either factor would leave the representable range on its own. The
// second return is false when the product falls below exp(-Alim), where
// it cannot contribute against a companion piece of regular size.
func shiftExp(v, w complex128) (complex128, bool) {
	if v == 0 {
		return 0, false
	}
	mag := math.Log(cmplx.Abs(v)) + real(w)
	if mag < -machine.Alim {
		return 0, false
	}
	if mag <= machine.Alim && math.Abs(real(w)) <= 0.95*machine.Elim {
		return v * cmplx.Exp(w), true
	}
	th := math.Atan2(imag(v), real(v)) + imag(w)
	return cmplx.Rect(math.Exp(mag), th), true
}

// continueK evaluates K at orders fnu..fnu+len(y)-1 for Re z < 0 with
// Im z >= 0, carried over from the right half plane by
//
//	K_nu(z) = exp(-i pi nu) K_nu(zn) - i pi I_nu(zn),  zn = -z,
//
// which continues the principal branch across the cut from above. The I
// values come from rightHalfI for all orders; the K values start from a
// two member kernelK call and recur upward alongside the combination.
// In scaled mode the K piece carries exp(zn) and is folded back by
// exp(-2 zn) per order. After the folded piece has stayed representable
// for three orders it has resurfaced for good, and the recurrence
// switches onto the folded pair so that the carried values cannot
// overflow. Members with both pieces below Ascle are zeroed and counted
// in nz.
func continueK(z complex128, fnu float64, scaled bool, y []complex128) (nz int, err error) {
	n := len(y)
	zn := -z
	if _, err = rightHalfI(zn, fnu, scaled, y); err != nil {
		return 0, err
	}
	nn := 2
	if n < 2 {
		nn = n
	}
	var cy [2]complex128
	nw, err := kernelK(zn, fnu, scaled, cy[:nn])
	if err != nil {
		return 0, err
	}
	if nw != 0 {
		return 0, ErrOverflow
	}

	csgn := complex(0, -math.Pi)
	if scaled {
		csgn *= cmplx.Rect(1, -imag(zn))
	}
	inu := int(fnu)
	cspn := cmplx.Rect(1, -math.Pi*(fnu-float64(inu)))
	if inu%2 == 1 {
		cspn = -cspn
	}

	iuf := 0
	var sc1, sc2 complex128
	for k := 0; k < nn; k++ {
		c1 := cy[k]
		c2 := y[k]
		if scaled {
			var ok bool
			c1, ok = shiftExp(c1, -2*zn)
			sc1, sc2 = sc2, c1
			if ok {
				iuf++
			}
			if cmplx.Abs(c1) <= machine.Ascle && cmplx.Abs(c2) <= machine.Ascle {
				c1, c2 = 0, 0
				nz++
				iuf = 0
			}
		}
		y[k] = cspn*c1 + csgn*c2
		cspn = -cspn
	}
	if n <= 2 {
		return nz, nil
	}

	rz := 2 / zn
	sc := machine.NewRescaler(cmplx.Abs(cy[1]))
	f := complex(sc.Factor(), 0)
	s1, s2 := cy[0]*f, cy[1]*f
	ck := complex(fnu+1, 0) * rz
	for k := 2; k < n; k++ {
		s1, s2 = s2, ck*s2+s1
		ck += rz
		c1 := s2 * complex(sc.Recip(), 0)
		c2 := y[k]
		if scaled && iuf >= 0 {
			var ok bool
			c1, ok = shiftExp(c1, -2*zn)
			sc1, sc2 = sc2, c1
			if ok {
				iuf++
			}
			if cmplx.Abs(c1) <= machine.Ascle && cmplx.Abs(c2) <= machine.Ascle {
				c1, c2 = 0, 0
				nz++
				iuf = 0
			}
			if iuf == 3 {
				iuf = -4
				s1 = sc1 * complex(sc.Factor(), 0)
				s2 = sc2 * complex(sc.Factor(), 0)
			}
		}
		y[k] = cspn*c1 + csgn*c2
		cspn = -cspn
		sc.Adjust(&s1, &s2)
	}
	return nz, nil
}
