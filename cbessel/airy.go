// SPDX-License-Identifier: MIT

package cbessel

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/zbessel/machine"
)

const (
	aiC1   = 0.35502805388781724 // Ai(0)  = 3^{-2/3}/Gamma(2/3)
	aiC2   = 0.25881940379280680 // -Ai'(0) = 3^{-1/3}/Gamma(1/3)
	aiCoef = 0.18377629847393068 // 1/(pi sqrt(3))
)

// airyAi evaluates Ai(z), or Ai'(z) with deriv set, for any complex z.
// Inside the unit disk the Maclaurin pair
//
//	Ai(z) = c1 f(z) - c2 g(z)
//
// is summed directly. Outside, the value comes through the modified
// Bessel connection Ai(z) = sqrt(z) K_{1/3}(zeta) / (pi sqrt 3) with
// zeta = (2/3) z^{3/2}, evaluated by kernelK when zeta lies in the right
// half plane and by continueKAiry otherwise. scaled multiplies by
// exp(zeta), which keeps the value on scale through the decay sector.
// The int return counts an unscaled result flushed to zero, Amos style.
func airyAi(z complex128, deriv, scaled bool) (complex128, int, error) {
	az := cmplx.Abs(z)
	if az <= 1 {
		s1 := complex(1, 0)
		s2 := complex(1, 0)
		if az*az*az >= machine.Tol {
			fid := 0.0
			if deriv {
				fid = 1
			}
			z3 := z * z * z
			az3 := az * az * az
			trm1 := complex(1, 0)
			trm2 := complex(1, 0)
			atrm := 1.0
			d1 := (2 + fid) * (3 + 2*fid)
			d2 := (3 - 2*fid) * (4 - fid)
			ad := math.Min(d1, d2)
			ak := 24 + 9*fid
			bk := 30 - 9*fid
			for k := 0; k < 25; k++ {
				trm1 *= z3 / complex(d1, 0)
				s1 += trm1
				trm2 *= z3 / complex(d2, 0)
				s2 += trm2
				atrm *= az3 / ad
				d1 += ak
				d2 += bk
				ad = math.Min(d1, d2)
				if atrm < machine.Tol*ad {
					break
				}
				ak += 18
				bk += 18
			}
		}
		var ai complex128
		if deriv {
			ai = complex(0.5*aiC1, 0)*z*z*s1 - complex(aiC2, 0)*s2
		} else {
			ai = complex(aiC1, 0)*s1 - complex(aiC2, 0)*z*s2
		}
		if scaled {
			zta := z * cmplx.Sqrt(z) * complex(2.0/3.0, 0)
			ai *= cmplx.Exp(zta)
		}
		return ai, 0, nil
	}

	fnu := 1.0 / 3.0
	if deriv {
		fnu = 2.0 / 3.0
	}
	zta := z * cmplx.Sqrt(z) * complex(2.0/3.0, 0)
	alaz := math.Log(az)
	aa := real(zta)
	lift := 1.0
	nz := 0
	var cy [1]complex128
	if aa >= 0 && real(z) > 0 {
		if !scaled && aa >= machine.Alim {
			// decay side, close to the floor
			if -aa-0.25*alaz < -machine.Elim {
				return 0, 1, nil
			}
			lift = 1 / machine.Tol
		}
		nw, err := kernelK(zta, fnu, scaled, cy[:])
		if err != nil {
			return 0, 0, err
		}
		nz += nw
	} else {
		if !scaled && aa <= -machine.Alim {
			// growth side, close to the ceiling
			if -aa+0.25*alaz > machine.Elim {
				return 0, 0, ErrOverflow
			}
			lift = machine.Tol
		}
		// the continuation side follows the half plane of z itself:
		// arg zta = (3/2) arg z wraps past pi in the left sector
		nw, err := continueKAiry(zta, fnu, scaled, !math.Signbit(imag(z)), cy[:])
		if err != nil {
			return 0, 0, err
		}
		nz += nw
	}
	s1 := cy[0] * complex(lift, 0)
	var ai complex128
	if deriv {
		ai = -complex(aiCoef, 0) * z * s1
	} else {
		ai = complex(aiCoef, 0) * cmplx.Sqrt(z) * s1
	}
	ai /= complex(lift, 0)
	return ai, nz, nil
}
