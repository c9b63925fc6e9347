// SPDX-License-Identifier: MIT

package cbessel

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/zbessel/machine"
)

// uniformI1 evaluates I at orders fnu..fnu+len(y)-1 from the Debye-type
// expansion, for z inside the sector |Im z| <= sqrt(3) Re z where the
// turning points stay away. The top two members seed a downward
// recurrence. Members whose exponent falls below -Elim are retired from
// the top and counted in nz; if retiring drops the top order under Fnul
// the expansion no longer applies and nlast reports how many low-order
// members remain for the caller to produce by other means.
func uniformI1(z complex128, fnu float64, scaled bool, y []complex128) (nz, nlast int, err error) {
	nd := len(y)

	// in scaled mode zeta2 - z collapses to fn^2/(z+zeta2), which avoids
	// the cancellation between the two large pieces
	expS1 := func(fn float64, zeta1, zeta2 complex128) complex128 {
		if !scaled {
			return zeta2 - zeta1
		}
		st := complex(fn*fn, 0) / (z + zeta2)
		return complex(real(st)-real(zeta1), imag(zeta2-zeta1))
	}

	fn := math.Max(fnu, 1)
	_, zeta1, zeta2, _ := debyeExpansion(z, fn, kindI, true)
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

	rz := 2 / z
	var cy [2]complex128
	var sc machine.Rescaler
	for {
		retired := false
		nn := 2
		if nd < 2 {
			nn = nd
		}
		for i := 1; i <= nn; i++ {
			fn = fnu + float64(nd-i)
			phi, zeta1, zeta2, sum := debyeExpansion(z, fn, kindI, false)
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
				// exponent alone is borderline; the amplitude decides
				rs1 += math.Log(cmplx.Abs(phi))
				if math.Abs(rs1) > machine.Elim {
					if rs1 > 0 {
						return nz, nlast, ErrOverflow
					}
					retired = true
					break
				}
			}
			s2 := phi * sum * cmplx.Rect(math.Exp(real(s1))*sc.Factor(), imag(s1))
			if i == 1 && sc.Lifted() && machine.UnderflowCheck(s2, machine.Ascle) {
				retired = true
				break
			}
			cy[i-1] = s2
			y[nd-i] = s2 * complex(sc.Recip(), 0)
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
