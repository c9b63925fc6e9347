// SPDX-License-Identifier: MIT

package cbessel

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/zbessel/machine"
)

const (
	biC1 = 0.6149266274460007 // Bi(0)  = 3^{-1/6}/Gamma(2/3)
	biC2 = 0.4482883573538264 // Bi'(0) = 3^{1/6}/Gamma(1/3)
)

// airyBi evaluates Bi(z), or Bi'(z) with deriv set. Inside the unit disk
// the Maclaurin pair is summed like in airyAi, with both signs positive.
// Outside, the value comes from the rotation identity
//
//	Bi(z) = exp(+i pi/6) Ai(z exp(+2 pi i/3)) + exp(-i pi/6) Ai(z exp(-2 pi i/3)),
//
// with each Ai piece computed in its scaled form and the exponential
// restored through the log space fold, so the two pieces never overflow
// individually. Every sector has a piece growing like exp(|Re zeta|),
// zeta = (2/3) z^{3/2}; scaled divides that factor out, and no underflow
// count is kept because the function has no decay sector.
func airyBi(z complex128, deriv, scaled bool) (complex128, error) {
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
		var bi complex128
		if deriv {
			bi = complex(0.5*biC1, 0)*z*z*s1 + complex(biC2, 0)*s2
		} else {
			bi = complex(biC1, 0)*s1 + complex(biC2, 0)*z*s2
		}
		if scaled {
			zta := z * cmplx.Sqrt(z) * complex(2.0/3.0, 0)
			bi *= complex(math.Exp(-math.Abs(real(zta))), 0)
		}
		return bi, nil
	}

	zta := z * cmplx.Sqrt(z) * complex(2.0/3.0, 0)
	aa := math.Abs(real(zta))
	if !scaled && aa >= machine.Alim {
		if aa-0.25*math.Log(az) > machine.Elim {
			return 0, ErrOverflow
		}
	}
	var bi complex128
	for _, s := range [2]float64{1, -1} {
		u := z * cmplx.Rect(1, s*2*math.Pi/3)
		c := cmplx.Rect(1, s*math.Pi/6)
		if deriv {
			c = cmplx.Rect(1, s*5*math.Pi/6)
		}
		p, _, err := airyAi(u, deriv, true)
		if err != nil {
			return 0, err
		}
		w := -u * cmplx.Sqrt(u) * complex(2.0/3.0, 0)
		if scaled {
			w -= complex(aa, 0)
		}
		piece, _ := shiftExp(c*p, w)
		bi += piece
	}
	return bi, nil
}
