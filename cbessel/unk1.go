// SPDX-License-Identifier: MIT

package cbessel

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/zbessel/machine"
)

// uniformK1 evaluates K at orders fnu..fnu+len(y)-1 from the Debye-type
// expansion, for z whose reflection zr into the right half plane lies in
// the sector |Im zr| <= sqrt(3) Re zr. With mr == 0, z = zr and the
// result is K itself. With mr = +1 the argument satisfies Re z < 0 with
// Im z >= 0, and the values are continued across the cut by
//
//	K_nu(z) = exp(-i pi nu) K_nu(zr) - i pi I_nu(zr),  zr = -z,
//
// where the K pieces of phases one and two are carried as exp(zr) K to
// keep them on scale, and the I piece is expanded per order because the
// forward I recurrence is unstable. Leading members whose K exponent is
// under -Elim are zeroed and counted in nz; after continuation nz counts
// members with both pieces under the floor.
func uniformK1(z complex128, fnu float64, scaled bool, mr int, y []complex128) (nz int, err error) {
	n := len(y)
	zr := z
	if real(z) < 0 {
		zr = -z
	}
	internal := scaled || mr != 0
	// zeta2 - zr collapses to fn^2/(zr+zeta2), cancellation free
	expE := func(fn float64, zeta1, zeta2 complex128) complex128 {
		if !internal {
			return zeta1 - zeta2
		}
		return zeta1 - complex(fn*fn, 0)/(zr+zeta2)
	}

	rz := 2 / zr
	var cy [2]complex128
	var sc machine.Rescaler
	kdflg := 0
	ib := n
	for i := 0; i < n; i++ {
		fn := fnu + float64(i)
		phi, zeta1, zeta2, sum := debyeExpansion(zr, fn, kindK, false)
		e := expE(fn, zeta1, zeta2)
		rs1 := real(e)
		if rs1 > machine.Elim {
			return nz, ErrOverflow
		}
		under := rs1 < -machine.Elim
		if !under && math.Abs(rs1) >= machine.Alim {
			r := rs1 + math.Log(cmplx.Abs(phi))
			if r > machine.Elim {
				return nz, ErrOverflow
			}
			under = r < -machine.Elim
		}
		if !under {
			if kdflg == 0 {
				sc = machine.NewRescalerFromLog(rs1)
			}
			s2 := phi * sum * cmplx.Rect(math.Exp(rs1)*sc.Factor(), imag(e))
			if sc.Lifted() && machine.UnderflowCheck(s2, machine.Ascle) {
				under = true
			} else {
				cy[kdflg] = s2
				y[i] = s2 * complex(sc.Recip(), 0)
				kdflg++
				if kdflg == 2 {
					ib = i + 1
					break
				}
			}
		}
		if under {
			y[i] = 0
			nz++
			kdflg = 0
		}
	}
	if kdflg == 2 && ib < n {
		s1, s2 := cy[0], cy[1]
		ck := complex(fnu+float64(ib-1), 0) * rz
		for i := ib; i < n; i++ {
			st := s2
			s2 = ck*s2 + s1
			s1 = st
			ck += rz
			y[i] = s2 * complex(sc.Recip(), 0)
			sc.Adjust(&s1, &s2)
			if machine.MaxAbsComponent(s2) > machine.Huge*machine.Tol {
				return nz, ErrOverflow
			}
		}
	}
	if mr == 0 {
		return nz, nil
	}

	// continuation: y currently holds exp(zr) K_nu(zr); fold each member
	// back and add the I piece
	nz = 0
	csgn := complex(0, -math.Pi)
	wfac := -zr
	if scaled {
		csgn *= cmplx.Rect(1, -imag(zr))
		wfac = -2 * zr
	}
	inu := int(fnu)
	cspn := cmplx.Rect(1, -math.Pi*(fnu-float64(inu)))
	if inu%2 == 1 {
		cspn = -cspn
	}
	for k := 0; k < n; k++ {
		fn := fnu + float64(k)
		phi, zeta1, zeta2, sum := debyeExpansion(zr, fn, kindI, false)
		var ei complex128
		if scaled {
			st := complex(fn*fn, 0) / (zr + zeta2)
			ei = complex(real(st)-real(zeta1), imag(zeta2-zeta1))
		} else {
			ei = zeta2 - zeta1
		}
		rsi := real(ei)
		if rsi > machine.Elim {
			return nz, ErrOverflow
		}
		if math.Abs(rsi) >= machine.Alim {
			r := rsi + math.Log(cmplx.Abs(phi))
			if r > machine.Elim {
				return nz, ErrOverflow
			}
			if r < -machine.Elim {
				rsi = -2 * machine.Elim
			}
		}
		var iPart complex128
		if rsi >= -machine.Elim {
			isc := machine.NewRescalerFromLog(rsi)
			v := phi * sum * cmplx.Rect(math.Exp(rsi)*isc.Factor(), imag(ei))
			if isc.Lifted() && machine.UnderflowCheck(v, machine.Ascle) {
				v = 0
			}
			iPart = v * complex(isc.Recip(), 0)
		}
		kPart, _ := shiftExp(y[k], wfac)
		y[k] = cspn*kPart + csgn*iPart
		if kPart == 0 && iPart == 0 {
			nz++
		}
		cspn = -cspn
	}
	return nz, nil
}
