// SPDX-License-Identifier: MIT

package machine

import (
	"math"
	"math/cmplx"
)

// MaxAbsComponent returns max(|Re z|, |Im z|), the cheap magnitude proxy
// used by the band tests.
func MaxAbsComponent(z complex128) float64 {
	return math.Max(math.Abs(real(z)), math.Abs(imag(z)))
}

// UnderflowCheck reports whether a sequence member computed in scaled
// arithmetic must be treated as an underflow zero: its smaller component
// sits at or below ascle while the larger one is too small to vouch for it
// within a factor 1/Tol. Such a member has lost its small component to the
// denormal range and would poison any phase rotation applied to it.
func UnderflowCheck(y complex128, ascle float64) bool {
	wr := math.Abs(real(y))
	wi := math.Abs(imag(y))
	st := math.Min(wr, wi)
	if st > ascle {
		return false
	}
	ss := math.Max(wr, wi)
	return ss < st/Tol
}

// SafeMul multiplies a possibly floor-adjacent member by a unit-modulus
// phase without flushing its small component: members at or below Ascle are
// lifted by 1/Tol for the product and dropped back after.
func SafeMul(y, phase complex128) complex128 {
	if MaxAbsComponent(y) > Ascle {
		return y * phase
	}
	y *= complex(1/Tol, 0)
	y *= phase
	return y * complex(Tol, 0)
}

// Rescaler keeps a growing two-term recurrence representable. Pairs that
// start near the underflow floor are carried lifted by 1/Tol; pairs heading
// for the ceiling are damped by Tol; the transitions happen as the true
// magnitude crosses Ascle and 1/Ascle.
type Rescaler struct {
	level int // 0: lifted by 1/Tol, 1: natural, 2: damped by Tol
}

// NewRescaler classifies a pair by the true magnitude of its seed.
func NewRescaler(mag float64) Rescaler {
	switch {
	case mag < Ascle:
		return Rescaler{level: 0}
	case mag < 1/Ascle:
		return Rescaler{level: 1}
	}
	return Rescaler{level: 2}
}

// NewRescalerFromLog classifies by the natural log of the seed magnitude,
// for callers that only hold the exponent.
func NewRescalerFromLog(ln float64) Rescaler {
	switch {
	case ln < -Alim:
		return Rescaler{level: 0}
	case ln < Alim:
		return Rescaler{level: 1}
	}
	return Rescaler{level: 2}
}

// Factor is the multiplier from true to stored values at the current level.
func (r Rescaler) Factor() float64 {
	return [3]float64{1 / Tol, 1, Tol}[r.level]
}

// Recip is the multiplier from stored back to true values.
func (r Rescaler) Recip() float64 {
	return [3]float64{Tol, 1, 1 / Tol}[r.level]
}

// Lifted reports whether the pair is still carried in lifted form, i.e.
// members recovered from it need an underflow confirmation.
func (r Rescaler) Lifted() bool { return r.level == 0 }

// Adjust sheds one scaling level when the stored pair has outgrown its
// band, rescaling both members in place. Returns true when a shed happened.
func (r *Rescaler) Adjust(s1, s2 *complex128) bool {
	if r.level >= 2 {
		return false
	}
	top := Ascle
	if r.level == 1 {
		top = 1 / Ascle
	}
	if MaxAbsComponent(*s2)*r.Recip() <= top {
		return false
	}
	*s1 *= complex(Tol, 0)
	*s2 *= complex(Tol, 0)
	r.level++
	return true
}

// ExpShifter tracks the deferred exponent d of a recurrence pair held in
// e^(d)-lifted form: true = stored * e^(-d). Shed peels one Elim chunk off
// the residual whenever the stored pair threatens the ceiling; Deliver
// applies whatever residual remains to a single member, turning members
// whose true magnitude falls under the floor into counted zeros.
type ExpShifter struct {
	D complex128 // residual exponent still to be removed
}

// Shed damps the stored pair by e^(-Elim) and lowers the residual to match.
func (e *ExpShifter) Shed(s1, s2 *complex128) {
	*s1 *= complex(Elm, 0)
	*s2 *= complex(Elm, 0)
	e.D = complex(real(e.D)-Elim, imag(e.D))
}

// Due reports the natural log of the true magnitude of a stored member.
func (e ExpShifter) Due(s complex128) float64 {
	return math.Log(cmplx.Abs(s)) - real(e.D)
}

// Deliver resolves a stored member to its true value. ok=false means the
// member underflowed the exponent budget (or lost its small component on
// the way out) and must be recorded as an exact zero.
func (e ExpShifter) Deliver(s complex128) (complex128, bool) {
	as := cmplx.Abs(s)
	if as == 0 {
		return 0, true
	}
	mag := math.Log(as) - real(e.D)
	if mag < -Elim {
		return 0, false
	}
	theta := math.Atan2(imag(s), real(s)) - imag(e.D)
	v := cmplx.Exp(complex(mag, theta))
	if mag < -Alim && UnderflowCheck(v, Ascle) {
		return 0, false
	}
	return v, true
}
