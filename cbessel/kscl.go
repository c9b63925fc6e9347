// SPDX-License-Identifier: MIT

package cbessel

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/zbessel/machine"
)

// shiftedK finishes an unscaled K run whose seed pair was left in
// e^z-lifted form because Re z exceeds Alim. The recurrence runs on the
// lifted pair, shedding powers of e^{-Elim} into an ExpShifter whenever
// the stored values grow large, and every output member is resolved
// individually: by one multiply with exp(-D) while that factor is
// representable, through the shifter's log-space path otherwise. Members
// that land under the floor come back as zero and are counted.
func shiftedK(z complex128, dnu float64, inu int, s1, s2, rz complex128, y []complex128) (int, error) {
	n := len(y)
	arm := 1.0e3 * machine.Tiny
	sh := machine.ExpShifter{D: z}
	var ce complex128
	ceOK := false
	refresh := func() {
		ceOK = math.Abs(real(sh.D)) < 0.95*machine.Elim
		if ceOK {
			ce = cmplx.Exp(-sh.D)
		}
	}
	refresh()

	nz := 0
	overflow := false
	step := func(ck complex128) {
		st := s2
		s2 = ck*s2 + s1
		s1 = st
		if machine.MaxAbsComponent(s2) > 1/machine.Ascle {
			if sh.Due(s2) > machine.Elim {
				overflow = true
				return
			}
			sh.Shed(&s1, &s2)
			refresh()
		}
	}
	deliver := func(s complex128) complex128 {
		if ceOK {
			v := s * ce
			if machine.MaxAbsComponent(v) > machine.Huge {
				overflow = true
				return 0
			}
			if v != 0 && !machine.UnderflowCheck(v, arm) {
				return v
			}
			nz++
			return 0
		}
		v, ok := sh.Deliver(s)
		if !ok {
			nz++
		}
		return v
	}

	ck := complex(dnu+1, 0) * rz
	for i := 0; i < inu; i++ {
		step(ck)
		if overflow {
			return nz, ErrOverflow
		}
		ck += rz
	}
	y[0] = deliver(s1)
	if n >= 2 {
		y[1] = deliver(s2)
	}
	if overflow {
		return nz, ErrOverflow
	}
	for k := 2; k < n; k++ {
		step(ck)
		if overflow {
			return nz, ErrOverflow
		}
		ck += rz
		y[k] = deliver(s2)
		if overflow {
			return nz, ErrOverflow
		}
	}
	return nz, nil
}
