// SPDX-License-Identifier: MIT

package machine

import "math"

// Binary float64 model, spelled out so every derived bound below traces back
// to the mantissa and exponent budget rather than to magic decimals.
const (
	mantDigits = 53    // significand bits, implicit bit included
	minExp     = -1021 // smallest exponent of a normalized value
	maxExp     = 1024  // largest exponent
)

// Derived regime. Initialized once in init; read-only afterwards.
var (
	Tol  float64 // relative accuracy target: max(ulp(1), 1e-18)
	Dig  float64 // base-10 digits carried by the significand
	Elim float64 // exponent wall: beyond it e^±x is out of range by a 10^3 margin
	Alim float64 // start of the graduated-scaling band under Elim
	Rl   float64 // |z| boundary: power series below, |z| asymptotics above
	Fnul float64 // order boundary: recurrence below, uniform asymptotics above

	Tiny  float64 // smallest normalized positive value
	Huge  float64 // largest finite value
	Ascle float64 // smallest magnitude trusted without band scaling: 10^3*Tiny/Tol
	Elm   float64 // e^(-Elim), the chunk shed by deferred-exponent deliveries

	// Argument guards. Asymptotic phases lose roughly log10(|z|) digits, so
	// past WarnArg more than half the significand is gone and past MaxArg
	// nothing survives. Orders are held to the same pair of bounds.
	MaxArg  float64
	WarnArg float64
)

func init() {
	ulp := math.Nextafter(1, 2) - 1
	Tol = math.Max(ulp, 1.0e-18)

	r1m5 := math.Log10(2)
	k := -minExp
	if maxExp < k {
		k = maxExp
	}
	Elim = 2.303 * (float64(k)*r1m5 - 3.0)

	aa := r1m5 * float64(mantDigits-1)
	Dig = math.Min(aa, 18.0)
	Alim = Elim + math.Max(-aa*2.303, -41.45)
	Rl = 1.2*Dig + 3.0
	Fnul = 10.0 + 6.0*(Dig-3.0)

	Tiny = math.Ldexp(1, minExp-1)
	Huge = math.MaxFloat64
	Ascle = 1.0e3 * Tiny / Tol
	Elm = math.Exp(-Elim)

	MaxArg = math.Min(0.5/Tol, 0.5*float64(math.MaxInt32))
	WarnArg = math.Sqrt(MaxArg)
}
