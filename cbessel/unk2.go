// SPDX-License-Identifier: MIT

package cbessel

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/zbessel/machine"
)

// powers of -i, stepped through by index for large orders where a
// direct cmplx.Rect of the full angle would lose the phase
var cipHalf = [4]complex128{1, complex(0, -1), -1, complex(0, 1)}

// uniformK2 evaluates K at orders fnu..fnu+len(y)-1 from the Airy-type
// expansion, for z whose reflection zr into the right half plane lies in
// the sector |Im zr| > sqrt(3) Re zr around the turning points. The K
// pieces come through the Hankel forms of the rotated argument zn = -iz,
//
//	K_nu(z)  = -(pi i/2) exp(-i pi nu/2) H2_nu(zn),   mr = 0,
//	K_nu(zr) = +(pi i/2) exp(+i pi nu/2) H1_nu(zn),   mr = +1, zr = -z,
//
// where H2 pairs with the Airy rotation exp(-2 pi i/3) and H1 with its
// conjugate. Continuation across the cut, the exp(zr) internal carry and
// the nz bookkeeping follow uniformK1; the I piece of the continuation
// is taken per order from the plain Airy-type J form at zn. The worker
// needs Im z >= 0 so that zn stays in the right half plane; the lower
// half folds through conjugation, with the continuation side flipped so
// the mirrored result is still the counterclockwise one every caller
// wants.
func uniformK2(z complex128, fnu float64, scaled bool, mr int, y []complex128) (int, error) {
	if math.Signbit(imag(z)) {
		nz, err := uniformK2Half(cmplx.Conj(z), fnu, scaled, mr, false, y)
		for i := range y {
			y[i] = cmplx.Conj(y[i])
		}
		return nz, err
	}
	return uniformK2Half(z, fnu, scaled, mr, true, y)
}

func uniformK2Half(z complex128, fnu float64, scaled bool, mr int, upper bool, y []complex128) (nz int, err error) {
	n := len(y)
	zr := z
	sr := 1.0
	if real(z) < 0 {
		zr = -z
		sr = -1.0
	}
	zn := complex(imag(z), -real(z))
	internal := scaled || mr != 0
	expE := func(fn float64, zeta1, zeta2 complex128) complex128 {
		if !internal {
			return zeta1 - zeta2
		}
		return zeta1 - complex(fn*fn, 0)/(zr+zeta2)
	}
	aic := math.Log(2 * math.Sqrt(math.Pi))
	rot := cmplx.Rect(1, -sr*2*math.Pi/3)
	inu := int(fnu)
	frac := fnu - float64(inu)

	rz := 2 / zr
	var cy [2]complex128
	var sc machine.Rescaler
	c2 := complex(0, -sr*math.Pi) * cmplx.Rect(1, sr*(math.Pi/3-0.5*math.Pi*frac))
	if sr > 0 {
		c2 *= cipHalf[inu%4]
	} else {
		c2 *= cmplx.Conj(cipHalf[inu%4])
	}
	kdflg := 0
	ib := n
	for i := 0; i < n; i++ {
		fn := fnu + float64(i)
		phi, arg, zeta1, zeta2, asum, bsum := airyExpansion(zn, fn, false)
		e := expE(fn, zeta1, zeta2)
		rs1 := real(e)
		if rs1 > machine.Elim {
			return nz, ErrOverflow
		}
		under := rs1 < -machine.Elim
		if !under && math.Abs(rs1) >= machine.Alim {
			r := rs1 + math.Log(cmplx.Abs(phi)) - 0.25*math.Log(cmplx.Abs(arg)) - aic
			if r > machine.Elim {
				return nz, ErrOverflow
			}
			under = r < -machine.Elim
		}
		if !under {
			argR := arg * rot
			ai, _, aerr := airyAi(argR, false, true)
			if aerr != nil {
				return nz, aerr
			}
			dai, _, aerr := airyAi(argR, true, true)
			if aerr != nil {
				return nz, aerr
			}
			if kdflg == 0 {
				sc = machine.NewRescalerFromLog(rs1)
			}
			r13 := 1 / math.Cbrt(fn)
			t23 := r13 * r13
			s2 := c2 * phi * (ai*asum + complex(t23*t23, 0)*rot*dai*bsum) * complex(r13, 0)
			s2 *= cmplx.Rect(math.Exp(rs1)*sc.Factor(), imag(e))
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
		c2 *= complex(0, -sr)
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

	// continuation: fold the exp(zr) K pieces back and add the I piece,
	// I_nu(zr) = exp(-i pi nu/2) J_nu(zn)
	nz = 0
	s := 1.0
	if !upper {
		s = -1
	}
	csgn := complex(0, -s*math.Pi)
	wfac := -zr
	if scaled {
		csgn *= cmplx.Rect(1, -imag(zr))
		wfac = -2 * zr
	}
	cspn := cmplx.Rect(1, -s*math.Pi*frac)
	if inu%2 == 1 {
		cspn = -cspn
	}
	cj := cmplx.Rect(1, -0.5*math.Pi*frac) * cipHalf[inu%4]
	for k := 0; k < n; k++ {
		fn := fnu + float64(k)
		phi, arg, zeta1, zeta2, asum, bsum := airyExpansion(zn, fn, false)
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
			r := rsi + math.Log(cmplx.Abs(phi)) - 0.25*math.Log(cmplx.Abs(arg)) - aic
			if r > machine.Elim {
				return nz, ErrOverflow
			}
			if r < -machine.Elim {
				rsi = -2 * machine.Elim
			}
		}
		var iPart complex128
		if rsi >= -machine.Elim {
			ai, _, aerr := airyAi(arg, false, true)
			if aerr != nil {
				return nz, aerr
			}
			dai, _, aerr := airyAi(arg, true, true)
			if aerr != nil {
				return nz, aerr
			}
			isc := machine.NewRescalerFromLog(rsi)
			r13 := 1 / math.Cbrt(fn)
			t23 := r13 * r13
			v := cj * phi * (ai*asum + complex(t23*t23, 0)*dai*bsum) * complex(r13, 0)
			v *= cmplx.Rect(math.Exp(rsi)*isc.Factor(), imag(ei))
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
		cj *= complex(0, -1)
	}
	return nz, nil
}
