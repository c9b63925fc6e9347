// SPDX-License-Identifier: MIT

package cbessel

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/zbessel/machine"
)

// asymptoticI evaluates I at orders fnu..fnu+len(y)-1 from the large
// argument expansion
//
//	I_mu(z) ~ e^z/sqrt(2 pi z) * sum_k (-1)^k a_k(mu)/z^k
//	        + e^{s(mu+1/2)pi i} e^{-z}/sqrt(2 pi z) * sum_k a_k(mu)/z^k,
//
// s = sign(Im z), a_k(mu) = prod_j (4mu^2-(2j-1)^2) / (k! 8^k). Requires
// |z| >= Rl and Re z >= 0. The top pair of orders is expanded directly,
// the rest filled by downward recurrence.
func asymptoticI(z complex128, fnu float64, scaled bool, y []complex128) (int, error) {
	n := len(y)
	x := real(z)
	il := 2
	if n < 2 {
		il = 1
	}
	cz := z
	if scaled {
		cz = complex(0, imag(z))
	}
	acz := real(cz)
	if math.Abs(acz) > machine.Elim {
		return 0, ErrOverflow
	}
	ak1 := cmplx.Sqrt(complex(1/(2*math.Pi), 0) / z)
	koded := math.Abs(acz) > machine.Alim && n > 2
	if !koded {
		ak1 *= cmplx.Exp(cz)
	}
	// reflection phase e^{s(mu+1/2)pi i} at the lower of the two expanded
	// orders, built modularly so huge orders keep full phase accuracy
	var p1 complex128
	if 2*x < machine.Elim {
		inu := int(fnu)
		arg := (fnu - float64(inu)) * math.Pi
		ak := -math.Sin(arg)
		bk := math.Cos(arg)
		if imag(z) < 0 {
			bk = -bk
		}
		p1 = complex(ak, bk)
		if (inu+n-il)%2 == 1 {
			p1 = -p1
		}
	}
	ez := 8 * z
	jl := int(2*machine.Rl + 2)
	for m := n - il; m <= n-1; m++ {
		mu := fnu + float64(m)
		num := 4 * mu * mu
		sMain := complex(1, 0)
		sRefl := complex(1, 0)
		tM := complex(1, 0)
		tR := complex(1, 0)
		prev := math.Inf(1)
		for k := 1; k <= jl; k++ {
			q := num - float64(2*k-1)*float64(2*k-1)
			r := complex(q, 0) / (complex(float64(k), 0) * ez)
			tM = -tM * r
			tR = tR * r
			sMain += tM
			sRefl += tR
			at := cmplx.Abs(tM)
			if at < machine.Tol || at > prev {
				// converged, or past the smallest term of the divergent tail
				break
			}
			prev = at
		}
		v := sMain
		if p1 != 0 {
			v += p1 * sRefl * cmplx.Exp(-2*z)
		}
		val := ak1 * v
		if koded {
			// near the exponent limits: combine through logs so the
			// intermediate product cannot leave the range
			val = cmplx.Exp(cz + cmplx.Log(val))
		}
		y[m] = val
		p1 = -p1
	}
	if n > 2 {
		rz := 2 / z
		for k := n - 3; k >= 0; k-- {
			y[k] = complex(fnu+float64(k+1), 0)*rz*y[k+1] + y[k+2]
		}
	}
	return 0, nil
}
