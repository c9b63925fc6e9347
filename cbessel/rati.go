// SPDX-License-Identifier: MIT

package cbessel

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/zbessel/machine"
)

// ratioI computes the n consecutive ratios r[k] = I_{fnu+k+1}(z)/I_{fnu+k}(z)
// by backward recurrence of the continued fraction
//
//	r_mu = 1 / (2(mu+1)/z + r_{mu+1}).
//
// A forward scouting pass from order max(|z|, fnu+n-1)+1 measures how deep
// the backward run must start for the ratios to settle to Tol; the ratio
// error shrinks with the square of the dominant growth, hence the square
// roots in the test.
func ratioI(z complex128, fnu float64, n int) ([]complex128, error) {
	az := cmplx.Abs(z)
	inu := int(fnu)
	idnu := inu + n - 1
	magz := int(az)
	fnup := math.Max(float64(magz+1), float64(idnu))
	rz := 2 / z

	t1 := complex(fnup, 0) * rz
	p2 := -t1
	p1 := complex(1, 0)
	t1 += rz
	ap2 := cmplx.Abs(p2)
	test1 := math.Sqrt((ap2 + ap2) / machine.Tol)
	test := test1
	k := 0
	itime := 1
	converged := false
	for i := 0; i < 100000; i++ {
		k++
		pt := p2
		p2 = p1 - t1*pt
		p1 = pt
		t1 += rz
		ap1 := cmplx.Abs(p1)
		if ap1 <= test {
			continue
		}
		if itime == 2 {
			converged = true
			break
		}
		// refine the growth-per-step estimate, then run until the
		// doubled target is met
		ap2 = cmplx.Abs(p2)
		ak := cmplx.Abs(t1) / 2
		flam := ak + math.Sqrt(ak*ak-1)
		rho := math.Min(ap2/ap1, flam)
		test = test1 * math.Sqrt(rho/(rho*rho-1))
		itime = 2
	}
	if !converged {
		return nil, ErrNoConvergence
	}

	// backward run; any seed converges to the ratios of the dominant
	// (downward) solution, which is I itself
	kk := int(fnup) - inu + k + 1
	q2 := complex(0, 0)
	q1 := complex(1, 0)
	r := make([]complex128, n)
	for j := kk; j >= 1; j-- {
		ord := fnu + float64(j)
		qn := complex(ord, 0)*rz*q1 + q2
		q2 = q1
		q1 = qn
		if j-1 < n {
			r[j-1] = q2 / q1
		}
		if a := cmplx.Abs(q1); a > 1/machine.Tol {
			q1 /= complex(a, 0)
			q2 /= complex(a, 0)
		}
	}
	return r, nil
}
