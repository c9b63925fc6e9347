// SPDX-License-Identifier: MIT

// Package machine derives the float64 working regime shared by every kernel
// in zbessel: the precision target, the exponent budget, the region
// boundaries that depend on both, and the small amount of tooling that keeps
// long recurrences representable near the edges of that budget.
//
// What:
//
//   - Tol, Dig: relative accuracy target and the base-10 digit budget.
//   - Elim, Alim: the exponent wall for e^±x and the start of the graduated
//     band below it where magnitudes are carried in lifted form.
//   - Rl, Fnul: |z| boundary between power series and asymptotics, and the
//     order boundary between recurrence and uniform asymptotics.
//   - UnderflowCheck: decides when a near-floor member must become an exact
//     zero instead of a denormal-polluted value.
//   - SafeMul: phase rotation that does not flush a tiny component.
//   - Rescaler: three-band scaling (1/Tol, 1, Tol) for growing recurrences.
//   - ExpShifter: deferred e^(-d) delivery for exponent-shifted pairs.
//
// Why:
//
//	The Bessel kernels routinely hold intermediate values whose true
//	magnitude sits within a few hundred binary orders of the underflow
//	floor or the overflow ceiling. Tracking the magnitude separately from a
//	bounded mantissa - rather than trusting raw float64 arithmetic - is
//	what makes the scaled evaluation modes exact and the underflow counts
//	deterministic.
//
// Everything here is computed in init() from the binary float model (no
// transcribed decimal constants) and is read-only afterwards, so the package
// is safe for unsynchronized concurrent use.
package machine
