// SPDX-License-Identifier: MIT

package cbessel

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/zbessel/machine"
)

// millerI evaluates I at orders fnu..fnu+len(y)-1 by Miller's backward
// recurrence, normalized with the series
//
//	sum_k chat_k I_{f+k}(z) = e^z (z/2)^f / (2 Gamma(1+f)),
//	chat_k = (f+k) Gamma(k+2f) / (k! Gamma(2f+1)),  f = frac(fnu),
//
// so no second solution is needed. Two forward scouting passes size the
// starting depth: one above the turning point order ~|z| and, when the
// requested orders reach higher, one above fnu+n-1.
func millerI(z complex128, fnu float64, scaled bool, y []complex128) (int, error) {
	n := len(y)
	az := cmplx.Abs(z)
	x := real(z)
	iaz := int(az)
	ifnu := int(fnu)
	inu := ifnu + n - 1
	ff := fnu - float64(ifnu)
	rz := 2 / z

	// scout A: depth beyond order |z|+1 at which the dominant solution
	// has outgrown the minimal one by the accuracy target
	at := float64(iaz) + 1
	ck := complex(at, 0) * rz
	p1 := complex(0, 0)
	p2 := complex(1, 0)
	ack := (at + 1) / az
	rho := ack + math.Sqrt(ack*ack-1)
	rho2 := rho * rho
	tst := (rho2 + rho2) / ((rho2 - 1) * (rho2 - 1)) / machine.Tol
	top := 0.0
	converged := false
	for i := 1; i <= 80; i++ {
		pt := p2
		p2 = p1 - ck*p2
		p1 = pt
		ck += rz
		if math.Abs(real(p2))+math.Abs(imag(p2)) > tst {
			top = at + float64(i)
			converged = true
			break
		}
	}
	if !converged {
		return 0, ErrNoConvergence
	}

	// scout B: same measurement from just above the highest requested order
	if inu > iaz {
		at2 := float64(inu) + 1
		p1, p2 = 0, 1
		ck = complex(at2, 0) * rz
		ack = at2 / az
		rho = ack + math.Sqrt(ack*ack-1)
		rho2 = rho * rho
		tst = (rho2 + rho2) / ((rho2 - 1) * (rho2 - 1)) / machine.Tol
		converged = false
		for i := 1; i <= 80; i++ {
			pt := p2
			p2 = p1 - ck*p2
			p1 = pt
			ck += rz
			if math.Abs(real(p2))+math.Abs(imag(p2)) > tst {
				if at2+float64(i) > top {
					top = at2 + float64(i)
				}
				converged = true
				break
			}
		}
		if !converged {
			return 0, ErrNoConvergence
		}
	}

	// backward pass from order ff+kk, accumulating the normalization sum
	kk := int(top-ff) + 3
	if kk < inu-ifnu+2 {
		kk = inu - ifnu + 2
	}
	scle := machine.Tiny / machine.Tol
	p1 = 0
	p2 = complex(scle, 0)
	fkk := float64(kk)
	l1, _ := math.Lgamma(fkk + 2*ff)
	l2, _ := math.Lgamma(fkk + 1)
	l3, _ := math.Lgamma(2*ff + 1)
	chat := (ff + fkk) * math.Exp(l1-l2-l3)
	s := complex(chat, 0) * p2
	for j := kk; j >= 1; j-- {
		ord := ff + float64(j)
		pn := complex(ord, 0)*rz*p2 + p1
		p1 = p2
		p2 = pn
		jm := j - 1
		if jm == 0 {
			chat = 0.5
		} else {
			chat = chat * (ff + float64(jm)) * float64(j) /
				((ff + float64(j)) * (float64(jm) + 2*ff))
		}
		s += complex(chat, 0) * p2
		if jm >= ifnu && jm-ifnu < n {
			y[jm-ifnu] = p2
		}
	}

	// normalize: computed p = C*I with C = s / (e^z (z/2)^f / (2 Gamma(1+f)))
	lgf, _ := math.Lgamma(1 + ff)
	e := complex(ff, 0)*cmplx.Log(0.5*z) - complex(lgf+math.Ln2, 0) + z
	if scaled {
		e -= complex(x, 0)
	}
	e -= cmplx.Log(s)
	cn := cmplx.Exp(e)
	for m := range y {
		y[m] *= cn
	}
	return 0, nil
}
