// SPDX-License-Identifier: MIT

package cbessel

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/zbessel/machine"
)

// uniformI2 evaluates I at orders fnu..fnu+len(y)-1 from the Airy-type
// expansion, for z in the sector |Im z| > sqrt(3) Re z that contains the
// turning points. The values come through J of the rotated argument,
//
//	I_nu(z) = exp(i pi nu/2) J_nu(-iz)  for Im z >= 0,
//
// with the lower half plane folded in by conjugation. Retirement of
// underflowed top members and the nlast handoff follow uniformI1.
func uniformI2(z complex128, fnu float64, scaled bool, y []complex128) (nz, nlast int, err error) {
	if imag(z) < 0 {
		nz, nlast, err = uniformI2(cmplx.Conj(z), fnu, scaled, y)
		for i := range y {
			y[i] = cmplx.Conj(y[i])
		}
		return nz, nlast, err
	}
	nd := len(y)
	zn := complex(imag(z), -real(z))
	aic := math.Log(2 * math.Sqrt(math.Pi))

	// zeta2 - z collapses to fn^2/(z+zeta2) here as well, because
	// zeta2^2 = fn^2 - zn^2 = fn^2 + z^2
	expS1 := func(fn float64, zeta1, zeta2 complex128) complex128 {
		if !scaled {
			return zeta2 - zeta1
		}
		st := complex(fn*fn, 0) / (z + zeta2)
		return complex(real(st)-real(zeta1), imag(zeta2-zeta1))
	}

	fn := math.Max(fnu, 1)
	_, _, zeta1, zeta2, _, _ := airyExpansion(zn, fn, true)
	rs1 := real(expS1(fn, zeta1, zeta2))
	if math.Abs(rs1) > machine.Elim {
		if rs1 > 0 {
			return 0, 0, ErrOverflow
		}
		for i := range y {
			y[i] = 0
		}
		return nd, 0, nil
	}

	inu := int(fnu)
	cip := [4]complex128{1, complex(0, 1), -1, complex(0, -1)}
	rz := 2 / z
	var cy [2]complex128
	var sc machine.Rescaler
	for {
		retired := false
		c2 := cmplx.Rect(1, 0.5*math.Pi*(fnu-float64(inu))) * cip[(inu+nd-1)%4]
		nn := 2
		if nd < 2 {
			nn = nd
		}
		for i := 1; i <= nn; i++ {
			fn = fnu + float64(nd-i)
			phi, arg, zeta1, zeta2, asum, bsum := airyExpansion(zn, fn, false)
			s1 := expS1(fn, zeta1, zeta2)
			rs1 = real(s1)
			if math.Abs(rs1) > machine.Elim {
				if rs1 > 0 {
					return nz, nlast, ErrOverflow
				}
				retired = true
				break
			}
			if i == 1 {
				sc = machine.NewRescalerFromLog(rs1)
			}
			if math.Abs(rs1) >= machine.Alim {
				rs1 += math.Log(cmplx.Abs(phi)) - 0.25*math.Log(cmplx.Abs(arg)) - aic
				if math.Abs(rs1) > machine.Elim {
					if rs1 > 0 {
						return nz, nlast, ErrOverflow
					}
					retired = true
					break
				}
			}
			ai, _, aerr := airyAi(arg, false, true)
			if aerr != nil {
				return nz, nlast, aerr
			}
			dai, _, aerr := airyAi(arg, true, true)
			if aerr != nil {
				return nz, nlast, aerr
			}
			r13 := 1 / math.Cbrt(fn)
			t23 := r13 * r13
			s2 := phi * (ai*asum + complex(t23*t23, 0)*dai*bsum) * complex(r13, 0) * c2
			s2 *= cmplx.Rect(math.Exp(real(s1))*sc.Factor(), imag(s1))
			if i == 1 && sc.Lifted() && machine.UnderflowCheck(s2, machine.Ascle) {
				retired = true
				break
			}
			cy[i-1] = s2
			y[nd-i] = s2 * complex(sc.Recip(), 0)
			c2 *= complex(0, -1)
		}
		if !retired {
			if nd > 2 {
				s1, s2 := cy[0], cy[1]
				for k := nd - 3; k >= 0; k-- {
					st := s2
					s2 = s1 + complex(fnu+float64(k+1), 0)*rz*s2
					s1 = st
					sc.Adjust(&s1, &s2)
					y[k] = s2 * complex(sc.Recip(), 0)
				}
			}
			return nz, nlast, nil
		}

		y[nd-1] = 0
		nz++
		nd--
		if nd == 0 {
			return nz, nlast, nil
		}
		nuf, uerr := overflowPretest(z, fnu, scaled, kindI, y[:nd])
		if uerr != nil {
			return nz, nlast, uerr
		}
		nd -= nuf
		nz += nuf
		if nd == 0 {
			return nz, nlast, nil
		}
		if fnu+float64(nd-1) < machine.Fnul {
			nlast = nd
			return nz, nlast, nil
		}
	}
}
