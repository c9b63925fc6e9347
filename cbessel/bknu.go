// SPDX-License-Identifier: MIT

package cbessel

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/zbessel/machine"
)

// eulerGamma is derived at start-up from the slope of lgamma at 1, where
// lgamma(1+h) = -gamma*h + O(h^2); the central difference with a power of
// two step keeps every digit.
var eulerGamma = func() float64 {
	h := math.Ldexp(1, -26)
	a, _ := math.Lgamma(1 + h)
	b, _ := math.Lgamma(1 - h)
	return (b - a) / (2 * h)
}()

// kernelK evaluates K at orders fnu..fnu+len(y)-1 for Re z >= 0, z != 0.
// The pair K_f, K_{f+1} at the fractional base order f in [-1/2, 1/2] is
// seeded by Temme's series for |z| <= 2 and by a continued fraction
// beyond, then carried up to fnu by the forward recurrence
//
//	K_{mu+1} = (2 mu / z) K_mu + K_{mu-1},
//
// which is stable because K grows with order. scaled returns e^z K. In
// unscaled mode with Re z > Alim the whole run is handed to shiftedK,
// which resolves each member through a deferred exponent.
//
// The return count is the number of leading members set to zero on
// underflow (only possible on the shifted route).
func kernelK(z complex128, fnu float64, scaled bool, y []complex128) (int, error) {
	n := len(y)
	caz := cmplx.Abs(z)
	x := real(z)
	inu := int(fnu + 0.5)
	dnu := fnu - float64(inu)
	rz := 2 / z
	var s1, s2 complex128
	iflag := false

	if caz <= 2 {
		// Temme's series about the origin: K_f = sum c_k f_k and
		// K_{f+1} = (2/z) sum c_k h_k with c_k = (z^2/4)^k / k!
		fc := 1.0
		if dnu != 0 {
			fc = dnu * math.Pi / math.Sin(dnu*math.Pi)
		}
		smu := cmplx.Log(rz)
		fmu := smu * complex(dnu, 0)
		csh := cmplx.Sinh(fmu)
		cch := cmplx.Cosh(fmu)
		gp := math.Gamma(1 + dnu)

		// sinc(pi f)-1 by its Taylor tail so G1 can go through expm1
		// without cancellation
		pf := math.Pi * dnu
		sincm1 := 0.0
		t := 1.0
		for k := 1; k <= 12; k++ {
			t *= -pf * pf / float64(2*k*(2*k+1))
			sincm1 += t
			if math.Abs(t) < machine.Tol {
				break
			}
		}
		var g1 float64
		if dnu != 0 {
			lgp, _ := math.Lgamma(1 + dnu)
			g1 = math.Expm1(math.Log1p(sincm1)+2*lgp) / (2 * dnu * gp)
		} else {
			g1 = -eulerGamma
		}
		g2 := 0.5 * ((1+sincm1)*gp + 1/gp)
		tsin := smu
		if dnu != 0 {
			tsin = csh / complex(dnu, 0)
		}
		f := complex(fc, 0) * (complex(g1, 0)*cch + complex(g2, 0)*tsin)
		p := 0.5 * complex(gp, 0) * (cch + csh)
		q := 0.5 * complex(fc/gp, 0) * (cch - csh)
		s1 = f
		s2 = p
		ck := complex(1, 0)
		cz2 := 0.25 * z * z
		if caz >= math.Sqrt(machine.Tiny) {
			for k := 1; k <= 200; k++ {
				fk := float64(k)
				f = (complex(fk, 0)*f + p + q) / complex(fk*fk-dnu*dnu, 0)
				p /= complex(fk-dnu, 0)
				q /= complex(fk+dnu, 0)
				ck = ck * cz2 / complex(fk, 0)
				s1 += ck * f
				h := p - complex(fk, 0)*f
				s2 += ck * h
				if cmplx.Abs(ck*f) < machine.Tol*cmplx.Abs(s1) &&
					cmplx.Abs(ck*h) < machine.Tol*cmplx.Abs(s2) {
					break
				}
			}
		}
		s2 *= rz
		if scaled {
			ce := cmplx.Exp(z)
			s1 *= ce
			s2 *= ce
		}
	} else {
		// continued fraction for the second Kummer solution (Thompson and
		// Barnett's steed form); converges for |arg z| < pi
		if !scaled {
			if x < -machine.Elim {
				return 0, ErrOverflow
			}
			if x > machine.Alim {
				iflag = true
			}
		}
		coef := complex(math.Sqrt(math.Pi/2), 0) / cmplx.Sqrt(z)
		a1 := 0.25 - dnu*dnu
		b := 2 * (z + 1)
		d := 1 / b
		h := d
		delh := d
		q1 := complex(0, 0)
		q2 := complex(1, 0)
		a := -a1
		c := a1
		qs := complex(a1, 0)
		s := 1 + complex(a1, 0)*delh
		converged := false
		for i := 2; i <= 35000; i++ {
			a -= 2 * float64(i-1)
			c = -a * c / float64(i)
			qn := (q1 - b*q2) / complex(a, 0)
			q1 = q2
			q2 = qn
			qs += complex(c, 0) * qn
			b += 2
			d = 1 / (b + complex(a, 0)*d)
			delh = (b*d - 1) * delh
			h += delh
			dels := qs * delh
			s += dels
			if cmplx.Abs(dels) < machine.Tol*cmplx.Abs(s) {
				converged = true
				break
			}
		}
		if !converged {
			return 0, ErrNoConvergence
		}
		h = complex(a1, 0) * h
		s1 = coef / s
		s2 = s1 * (complex(dnu+0.5, 0) + z - h) / z
		if !scaled && !iflag {
			ce := cmplx.Exp(-z)
			s1 *= ce
			s2 *= ce
		}
	}

	if iflag {
		return shiftedK(z, dnu, inu, s1, s2, rz, y)
	}

	// carry the pair up to fnu, then fill the window
	r := machine.NewRescaler(cmplx.Abs(s2))
	f := complex(r.Factor(), 0)
	s1 *= f
	s2 *= f
	ck := complex(dnu+1, 0) * rz
	for i := 0; i < inu; i++ {
		st := s2
		s2 = ck*s2 + s1
		s1 = st
		ck += rz
		r.Adjust(&s1, &s2)
		if machine.MaxAbsComponent(s2) > machine.Huge*machine.Tol {
			return 0, ErrOverflow
		}
	}
	y[0] = s1 * complex(r.Recip(), 0)
	if n >= 2 {
		y[1] = s2 * complex(r.Recip(), 0)
	}
	for k := 2; k < n; k++ {
		st := s2
		s2 = ck*s2 + s1
		s1 = st
		ck += rz
		r.Adjust(&s1, &s2)
		if machine.MaxAbsComponent(s2) > machine.Huge*machine.Tol {
			return 0, ErrOverflow
		}
		y[k] = s2 * complex(r.Recip(), 0)
	}
	return 0, nil
}
