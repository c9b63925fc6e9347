// SPDX-License-Identifier: MIT

package cbessel

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/zbessel/machine"
)

// overflowPretest screens a planned run of I (kindI) or K (kindK) values
// at orders fnu..fnu+len(y)-1 using only the exponent and amplitude
// pieces of the large-order expansions, before any kernel spends work on
// it. Overflow of the largest member is an error. Underflow is resolved
// per kind: I shrinks with order here, so an underflowing first member
// zeros the whole run, while K grows with order, so underflowing leading
// members are zeroed and counted in nuf and the caller starts the kernel
// at fnu+nuf. Borderline exponents are settled by assembling the leading
// value in lifted form and checking its components against the floor.
func overflowPretest(z complex128, fnu float64, scaled bool, kind expKind, y []complex128) (nuf int, err error) {
	n := len(y)
	zb := complex(math.Abs(real(z)), math.Abs(imag(z)))
	iform := 1
	if imag(zb) > real(zb)*1.7321 {
		iform = 2
	}
	aic := math.Log(2 * math.Sqrt(math.Pi))

	eval := func(gnu float64) (czc, phi, carg complex128) {
		gnu = math.Max(gnu, 1)
		if iform == 1 {
			p, zeta1, zeta2, _ := debyeExpansion(zb, gnu, kind, true)
			phi = p
			czc = zeta2 - zeta1
		} else {
			zn := complex(imag(zb), -real(zb))
			p, a, zeta1, zeta2, _, _ := airyExpansion(zn, gnu, true)
			phi = p
			carg = a
			czc = zeta2 - zeta1
		}
		if scaled {
			czc -= complex(real(zb), 0)
		}
		if kind == kindK {
			czc = -czc
		}
		return
	}

	gnuTop := fnu
	if kind == kindK && n > 1 {
		gnuTop = fnu + float64(n-1)
	}
	czc, phi, carg := eval(gnuTop)
	cz := real(czc)
	if cz > machine.Elim {
		return 0, ErrOverflow
	}
	if cz > machine.Alim {
		cz += math.Log(cmplx.Abs(phi))
		if iform == 2 {
			cz -= 0.25*math.Log(cmplx.Abs(carg)) + aic
		}
		if cz > machine.Elim {
			return 0, ErrOverflow
		}
	}

	under := func(gnu float64) bool {
		czc, phi, carg := eval(gnu)
		cz := real(czc)
		if cz < -machine.Elim {
			return true
		}
		if cz > -machine.Alim {
			return false
		}
		ref := cz + math.Log(cmplx.Abs(phi))
		if iform == 2 {
			ref -= 0.25*math.Log(cmplx.Abs(carg)) + aic
		}
		if ref < -machine.Elim {
			return true
		}
		s := cmplx.Exp(czc-complex(math.Log(machine.Tol), 0)) * phi
		if iform == 2 {
			s /= cmplx.Sqrt(cmplx.Sqrt(carg)) * complex(2*math.Sqrt(math.Pi), 0)
		}
		return machine.UnderflowCheck(s, machine.Ascle)
	}

	if kind == kindI {
		if under(fnu) {
			for i := range y {
				y[i] = 0
			}
			return n, nil
		}
		return 0, nil
	}
	for nuf < n && under(fnu+float64(nuf)) {
		y[nuf] = 0
		nuf++
	}
	return nuf, nil
}
